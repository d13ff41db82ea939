// Package main provides the vpath CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/vpath"
	"github.com/gogpu/vpath/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vpath",
	Short: "Edit, align and morph SVG path data",
	Long: `vpath reads SVG path data, applies edits such as splitting, reversing and
shifting subpaths, aligns two paths for morphing and renders previews.`,
	Version:           vpath.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	precision  int
	verbose    bool

	cfg config.Config
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a TOML configuration file")
	pf.IntVar(&precision, "precision", -1, "Fractional digits in output (default from config)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	addEditCommands()
	addQueryCommands()
	addMorphCommands()
}

// setup loads the configuration and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("precision") {
		c.Precision = precision
		if err := c.Validate(); err != nil {
			return err
		}
	}
	cfg = c

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	vpath.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printPath writes p with the configured precision.
func printPath(cmd *cobra.Command, p *vpath.Path) {
	fmt.Fprintln(cmd.OutOrStdout(), p.Format(cfg.Precision))
}
