package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vasalvit/gauge/svg"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "List the drawing instructions of gauge markup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := svg.ParseSvgFromReader(f, args[0], 0)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s viewBox=%q, %d elements\n", color.CyanString(args[0]), doc.ViewBox, len(doc.Elements))
		for _, di := range doc.DrawingInstructions() {
			fmt.Fprintln(out, describe(di))
		}
		return nil
	},
}

func describe(di *svg.DrawingInstruction) string {
	kind := color.YellowString("%-6s", di.Kind)
	switch di.Kind {
	case svg.ArcInstruction:
		return fmt.Sprintf("%s to %.2f,%.2f r=%.2f large=%t sweep=%t", kind, di.M[0], di.M[1], di.Radius[0], di.LargeArc, di.Sweep)
	case svg.CircleInstruction:
		return fmt.Sprintf("%s at %.2f,%.2f r=%.2f", kind, di.M[0], di.M[1], di.Radius[0])
	case svg.TextInstruction:
		return fmt.Sprintf("%s at %.2f,%.2f %q", kind, di.M[0], di.M[1], di.Text)
	case svg.PaintInstruction:
		return fmt.Sprintf("%s stroke=%s width=%.2f fill=%s", kind, *di.Stroke, *di.StrokeWidth, *di.Fill)
	case svg.CloseInstruction:
		return kind
	}
	return fmt.Sprintf("%s to %.2f,%.2f", kind, di.M[0], di.M[1])
}

func init() {
	AddCommand(inspectCmd)
}
