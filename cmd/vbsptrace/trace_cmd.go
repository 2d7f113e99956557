package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelyuan/vbsp/bsp"
	"github.com/samuelyuan/vbsp/trace"
)

var (
	fromStr string
	toStr   string
	mask    int32
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace a segment between two points and print the first hit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseVec3(fromStr)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		to, err := parseVec3(toStr)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}

		effectiveMask := mask
		if effectiveMask == 0 {
			effectiveMask = bsp.ContentsSolid
		}

		var tr trace.Trace
		facade.TraceRay(from, to, effectiveMask, &tr)

		if tr.Fraction == 1 {
			fmt.Printf("visible: no obstruction between %v and %v\n", from, to)
			return nil
		}

		fmt.Printf("hit at fraction %.4f, position %v, plane normal %v, contents 0x%x\n",
			tr.Fraction, tr.EndPos, tr.Plane.Normal, tr.Contents)
		if tr.StartSolid {
			fmt.Println("start point is inside solid geometry")
		}
		if tr.AllSolid {
			fmt.Println("entire segment is inside solid geometry")
		}
		return nil
	},
}

func init() {
	traceCmd.Flags().StringVar(&fromStr, "from", "", "segment start, \"x,y,z\"")
	traceCmd.Flags().StringVar(&toStr, "to", "", "segment end, \"x,y,z\"")
	traceCmd.Flags().Int32Var(&mask, "mask", 0, "contents mask (default CONTENTS_SOLID)")
	traceCmd.MarkFlagRequired("from")
	traceCmd.MarkFlagRequired("to")
}

func parseVec3(s string) (trace.Vec3, error) {
	var x, y, z float32
	n, err := fmt.Sscanf(s, "%f,%f,%f", &x, &y, &z)
	if err != nil || n != 3 {
		return trace.Vec3{}, fmt.Errorf("expected \"x,y,z\", got %q", s)
	}
	return trace.Vec3{x, y, z}, nil
}
