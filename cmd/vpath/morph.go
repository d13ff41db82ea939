package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/vpath"
)

var alignCmd = &cobra.Command{
	Use:   "align <from> <to>",
	Short: "Make two paths morphable and print both",
	Args:  cobra.ExactArgs(2),
	RunE:  runAlign,
}

var interpolateCmd = &cobra.Command{
	Use:   "interpolate <from> <to>",
	Short: "Align two paths and print the path at --fraction between them",
	Args:  cobra.ExactArgs(2),
	RunE:  runInterpolate,
}

var (
	fractionFlag float64
	stepsFlag    int
)

func addMorphCommands() {
	interpolateCmd.Flags().Float64Var(&fractionFlag, "fraction", 0.5, "Interpolation fraction in [0, 1]")
	interpolateCmd.Flags().IntVar(&stepsFlag, "steps", 0, "Print this many evenly spaced frames instead of one")

	rootCmd.AddCommand(alignCmd, interpolateCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	from, to, err := parsePair(args)
	if err != nil {
		return err
	}
	from, to, err = vpath.AutoFixAll(from, to)
	if err != nil {
		return err
	}
	printPath(cmd, from)
	printPath(cmd, to)
	return nil
}

func runInterpolate(cmd *cobra.Command, args []string) error {
	from, to, err := parsePair(args)
	if err != nil {
		return err
	}
	if !from.IsMorphableWith(to) {
		if from, to, err = vpath.AutoFixAll(from, to); err != nil {
			return err
		}
	}
	if !from.IsMorphableWith(to) {
		return fmt.Errorf("paths cannot be made morphable")
	}

	if stepsFlag <= 0 {
		printPath(cmd, from.Interpolate(from, to, fractionFlag))
		return nil
	}
	// The same receiver keeps IDs stable across frames.
	for i := 0; i <= stepsFlag; i++ {
		f := float64(i) / float64(stepsFlag)
		printPath(cmd, from.Interpolate(from, to, f))
	}
	return nil
}
