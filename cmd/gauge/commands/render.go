package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	renderValue  float64
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the gauge for one value",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGauge()
		if err != nil {
			return err
		}
		value := g.Config().Value
		if cmd.Flags().Changed("value") {
			value = renderValue
		}
		svg := g.Render(g.Clamp(value))

		if renderOutput == "" || renderOutput == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
			return err
		}
		if err := os.WriteFile(renderOutput, []byte(svg), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("wrote"), renderOutput)
		return nil
	},
}

func init() {
	renderCmd.Flags().Float64Var(&renderValue, "value", 0, "Value to show (defaults to the config value)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file, stdout when empty")
	AddCommand(renderCmd)
}
