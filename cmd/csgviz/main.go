// Command csgviz builds CSG scenes and writes the resulting meshes as
// ASCII VTK files for inspection in ParaView or similar viewers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csgviz",
	Short: "Build CSG solids and export them as VTK meshes",
	Long: `csgviz combines solid primitives (cube, sphere, cylinder, cone) with
Boolean operations described in a YAML scene file, or from a built-in demo
set, and writes the resulting boundary meshes as ASCII VTK POLYDATA files.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
