package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/vpath"
	"github.com/gogpu/vpath/preview"
)

var projectCmd = &cobra.Command{
	Use:   "project <path-data>",
	Short: "Print the point on the path nearest to --x, --y",
	Args:  cobra.ExactArgs(1),
	RunE:  runProject,
}

var hitCmd = &cobra.Command{
	Use:   "hit <path-data>",
	Short: "Hit test a point against the path",
	Args:  cobra.ExactArgs(1),
	RunE:  runHit,
}

var previewCmd = &cobra.Command{
	Use:   "preview <path-data>",
	Short: "Render the path to a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var (
	pointX, pointY float64
	fillFlag       bool
	radiusFlag     float64
	outputFlag     string
	widthFlag      int
	heightFlag     int
)

func addQueryCommands() {
	for _, c := range []*cobra.Command{projectCmd, hitCmd} {
		c.Flags().Float64Var(&pointX, "x", 0, "X coordinate of the query point")
		c.Flags().Float64Var(&pointY, "y", 0, "Y coordinate of the query point")
	}
	hitCmd.Flags().BoolVar(&fillFlag, "fill", false, "Also test the filled area")
	hitCmd.Flags().Float64Var(&radiusFlag, "radius", -1, "Hit radius (default from config)")
	previewCmd.Flags().StringVarP(&outputFlag, "output", "o", "preview.png", "Output PNG file")
	previewCmd.Flags().IntVar(&widthFlag, "width", 0, "Image width (default from config)")
	previewCmd.Flags().IntVar(&heightFlag, "height", 0, "Image height (default from config)")

	rootCmd.AddCommand(projectCmd, hitCmd, previewCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	p, err := vpath.Parse(args[0])
	if err != nil {
		return err
	}
	proj, ok := p.Project(vpath.Pt(pointX, pointY))
	if !ok {
		return fmt.Errorf("path has nothing to project onto")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "subpath=%d command=%d x=%s y=%s t=%s d=%s\n",
		proj.SubIdx, proj.CmdIdx, num(proj.X), num(proj.Y), num(proj.T), num(proj.D))
	return nil
}

func runHit(cmd *cobra.Command, args []string) error {
	p, err := vpath.Parse(args[0])
	if err != nil {
		return err
	}
	r := cfg.HitRadius
	if radiusFlag >= 0 {
		r = radiusFlag
	}
	opts := []vpath.HitOption{
		vpath.WithPointHit(vpath.WithinRadius(r)),
		vpath.WithSegmentHit(vpath.WithinRadius(r)),
	}
	if fillFlag {
		opts = append(opts, vpath.WithFillHit())
	}
	res := p.HitTest(vpath.Pt(pointX, pointY), opts...)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "hit=%t\n", res.IsHit())
	if res.IsEndPointHit {
		c, _ := p.Command(res.EndPoint.SubIdx, res.EndPoint.CmdIdx)
		fmt.Fprintf(w, "endpoint subpath=%d command=%d id=%s\n", res.EndPoint.SubIdx, res.EndPoint.CmdIdx, c.ID())
	}
	if res.IsSegmentHit {
		fmt.Fprintf(w, "segment subpath=%d command=%d t=%s d=%s\n",
			res.Segment.SubIdx, res.Segment.CmdIdx, num(res.Segment.T), num(res.Segment.D))
	}
	if res.IsFillHit {
		fmt.Fprintf(w, "fill subpath=%d\n", res.FillSubIdx)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	p, err := vpath.Parse(args[0])
	if err != nil {
		return err
	}
	o := preview.Options{
		Width:      cfg.Preview.Width,
		Height:     cfg.Preview.Height,
		Padding:    cfg.Preview.Padding,
		MarkerSize: cfg.Preview.MarkerSize,
	}
	if widthFlag > 0 {
		o.Width = widthFlag
	}
	if heightFlag > 0 {
		o.Height = heightFlag
	}

	f, err := os.Create(outputFlag)
	if err != nil {
		return err
	}
	if err := preview.WritePNG(f, p, o); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", outputFlag, o.Width, o.Height)
	return nil
}

// num formats a coordinate with the configured precision.
func num(v float64) string {
	return vpath.FormatNumber(v, cfg.Precision)
}
