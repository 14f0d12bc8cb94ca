package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akmonengine/csg/scene"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <scene.yaml>",
	Short: "Build a scene's result solid and write it as VTK",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		solid, err := doc.Build()
		if err != nil {
			return fmt.Errorf("building scene: %w", err)
		}
		out := renderOutput
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".vtk"
		}
		title := doc.Title
		if title == "" {
			title = "csg output"
		}
		if err := solid.SaveVTK(out, title); err != nil {
			return err
		}
		min, max := solid.Bounds()
		fmt.Printf("wrote %s: %d polygons, bounds [%.4g %.4g %.4g] .. [%.4g %.4g %.4g]\n",
			out, len(solid.Polygons()),
			min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output .vtk path (default: scene path with .vtk extension)")
	rootCmd.AddCommand(renderCmd)
}
