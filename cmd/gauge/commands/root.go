package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vasalvit/gauge"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gauge",
	Short: "gauge renders and animates SVG dials",
	Long: `gauge renders a circular dial for a value as SVG, animates it
between two values frame by frame and reads gauge markup back.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML gauge config (defaults apply when empty)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

func loadGauge() (*gauge.Gauge, error) {
	cfg := gauge.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = gauge.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	return gauge.New(cfg)
}
