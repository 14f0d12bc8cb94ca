package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/akmonengine/csg"
)

var demoDir string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write a set of demo meshes exercising union, subtraction, intersection and refinement",
	RunE: func(cmd *cobra.Command, args []string) error {
		cube, err := csg.CubeR(mgl64.Vec3{}, 1)
		if err != nil {
			return err
		}
		sphere, err := csg.Sphere(mgl64.Vec3{}, 1.3, csg.DefaultSlices, csg.DefaultStacks)
		if err != nil {
			return err
		}
		pipe, err := csg.Cylinder(mgl64.Vec3{0, -2, 0}, mgl64.Vec3{0, 2, 0}, 0.5, 24)
		if err != nil {
			return err
		}
		shifted := cube.Clone()
		shifted.Translate(mgl64.Vec3{0.5, 0.5, 0})

		demos := []struct {
			name  string
			solid *csg.Solid
		}{
			{"cube_minus_sphere", cube.Subtract(sphere)},
			{"cube_union_cube", cube.Union(shifted)},
			{"cube_intersect_cube", cube.Intersect(shifted)},
			{"cube_minus_pipe", cube.Subtract(pipe)},
			{"sphere_refined", sphere.Refine()},
		}
		for _, d := range demos {
			path := filepath.Join(demoDir, d.name+".vtk")
			if err := d.solid.SaveVTK(path, d.name); err != nil {
				return err
			}
			fmt.Printf("wrote %s: %d polygons\n", path, len(d.solid.Polygons()))
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVarP(&demoDir, "dir", "d", ".", "directory to write demo .vtk files into")
	rootCmd.AddCommand(demoCmd)
}
