package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/vpath"
	"github.com/gogpu/vpath/script"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <path-data>",
	Short: "Parse path data and print it in absolute M/L/Q/C/Z form",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <path-data>",
	Short: "Reverse the drawing direction of a subpath",
	Args:  cobra.ExactArgs(1),
	RunE:  runReverse,
}

var shiftCmd = &cobra.Command{
	Use:   "shift <path-data>",
	Short: "Rotate the start point of a closed subpath",
	Args:  cobra.ExactArgs(1),
	RunE:  runShift,
}

var splitCmd = &cobra.Command{
	Use:   "split <path-data>",
	Short: "Split a command at the given parameters (in half by default)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Apply a YAML edit script",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

var (
	subPathFlag int
	commandFlag int
	countFlag   int
	splitTs     []float64
	scriptPath  string
	pathFlag    string
)

func addEditCommands() {
	for _, c := range []*cobra.Command{reverseCmd, shiftCmd, splitCmd} {
		c.Flags().IntVar(&subPathFlag, "subpath", 0, "Subpath index")
	}
	shiftCmd.Flags().IntVar(&countFlag, "count", 1, "Commands to shift by; negative shifts back")
	splitCmd.Flags().IntVar(&commandFlag, "command", 1, "Command index within the subpath")
	splitCmd.Flags().Float64SliceVar(&splitTs, "t", nil, "Split parameters in (0, 1)")
	editCmd.Flags().StringVar(&scriptPath, "script", "", "Path to the YAML edit script")
	editCmd.Flags().StringVar(&pathFlag, "path", "", "Path data to edit instead of the script's own path")
	_ = editCmd.MarkFlagRequired("script")

	rootCmd.AddCommand(normalizeCmd, reverseCmd, shiftCmd, splitCmd, editCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	p, err := vpath.Parse(args[0])
	if err != nil {
		return err
	}
	printPath(cmd, p)
	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	return mutateAndPrint(cmd, args[0], func(m *vpath.Mutator) {
		m.ReverseSubPath(subPathFlag)
	})
}

func runShift(cmd *cobra.Command, args []string) error {
	return mutateAndPrint(cmd, args[0], func(m *vpath.Mutator) {
		if countFlag < 0 {
			m.ShiftSubPathBack(subPathFlag, -countFlag)
		} else {
			m.ShiftSubPathForward(subPathFlag, countFlag)
		}
	})
}

func runSplit(cmd *cobra.Command, args []string) error {
	return mutateAndPrint(cmd, args[0], func(m *vpath.Mutator) {
		if len(splitTs) == 0 {
			m.SplitCommandInHalf(subPathFlag, commandFlag)
		} else {
			m.SplitCommand(subPathFlag, commandFlag, splitTs...)
		}
	})
}

func mutateAndPrint(cmd *cobra.Command, data string, edit func(*vpath.Mutator)) error {
	p, err := vpath.Parse(data)
	if err != nil {
		return err
	}
	m := p.Mutate()
	edit(m)
	out, err := m.Build()
	if err != nil {
		return err
	}
	printPath(cmd, out)
	return nil
}

func runEdit(cmd *cobra.Command, _ []string) error {
	s, err := script.Load(scriptPath)
	if err != nil {
		return err
	}
	var out *vpath.Path
	if pathFlag != "" {
		p, err := vpath.Parse(pathFlag)
		if err != nil {
			return err
		}
		out, err = s.Apply(p)
		if err != nil {
			return err
		}
	} else if out, err = s.Run(); err != nil {
		return err
	}
	printPath(cmd, out)
	return nil
}

// parsePair parses the two path arguments of the morph commands.
func parsePair(args []string) (*vpath.Path, *vpath.Path, error) {
	from, err := vpath.Parse(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("from: %w", err)
	}
	to, err := vpath.Parse(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("to: %w", err)
	}
	return from, to, nil
}
