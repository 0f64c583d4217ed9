package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seamcarve/carver"
)

// newResizeCmd shrinks IN to the requested size and writes OUT.
func newResizeCmd(a *app) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "resize IN OUT",
		Short: "Carve an image down to a smaller width and/or height",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(args[0])
			if err != nil {
				return err
			}
			w, h := c.Width(), c.Height()
			if cmd.Flags().Changed("width") {
				w = width
			}
			if cmd.Flags().Changed("height") {
				h = height
			}
			if err := c.Resize(w, h); err != nil {
				return err
			}
			if err := saveImage(args[1], c.Picture(), a.cfg); err != nil {
				return err
			}
			a.log.Info("resized", "in", args[0], "out", args[1], "width", c.Width(), "height", c.Height())

			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "target width (default: keep)")
	cmd.Flags().IntVar(&height, "height", 0, "target height (default: keep)")

	return cmd
}

// newEnergyCmd writes the grayscale energy map of IN to OUT.
func newEnergyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "energy IN OUT",
		Short: "Write the dual-gradient energy map of an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.open(args[0])
			if err != nil {
				return err
			}

			return saveImage(args[1], c.EnergyImage(), a.cfg)
		},
	}
}

// newSeamCmd prints the minimum seam of IN, optionally saving an overlay.
func newSeamCmd(a *app) *cobra.Command {
	var (
		horizontal bool
		overlay    string
	)
	cmd := &cobra.Command{
		Use:   "seam IN",
		Short: "Print the minimum-energy seam of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(args[0])
			if err != nil {
				return err
			}
			dir := carver.Vertical
			s := c.FindVerticalSeam()
			if horizontal {
				dir = carver.Horizontal
				s = c.FindHorizontalSeam()
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			if overlay == "" {
				return nil
			}

			return saveImage(overlay, c.SeamImage(dir), a.cfg)
		},
	}
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "find a left-to-right seam instead")
	cmd.Flags().StringVar(&overlay, "overlay", "", "write the image with the seam painted red")

	return cmd
}
