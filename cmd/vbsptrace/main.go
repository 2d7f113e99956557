// Command vbsptrace loads a Source-engine BSP map and runs line-of-sight
// traces against it from the command line. It is glue over the vbsp
// facade: the loader and ray-caster do the real work.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelyuan/vbsp"
)

var (
	mapDir  string
	mapName string

	facade vbsp.Facade
)

var rootCmd = &cobra.Command{
	Use:   "vbsptrace",
	Short: "vbsptrace loads a BSP map and runs visibility/ray traces against it.",
	Long:  `vbsptrace is a small inspection tool over the vbsp loader and ray-caster.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !facade.LoadMap(mapDir, mapName) {
			return fmt.Errorf("loading map %q from %q: %w", mapName, mapDir, facade.LastError())
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&mapDir, "dir", ".", "directory containing the .bsp file")
	rootCmd.PersistentFlags().StringVar(&mapName, "map", "", "map name (with or without .bsp suffix)")
	rootCmd.MarkPersistentFlagRequired("map")

	rootCmd.AddCommand(traceCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
