package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vasalvit/gauge/stream"
)

var (
	animateFrom     float64
	animateTo       float64
	animateFPS      float64
	animateDir      string
	animateMQTTURL  string
	animateTopic    string
	animateUser     string
	animatePassword string
	animateQoS      int
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Animate the gauge between two values",
	Long: `animate renders every frame of the transition between --from and
--to. Frames are written to --dir as fast as possible, or published to an
MQTT topic in real time when --mqtt-url is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGauge()
		if err != nil {
			return err
		}
		if (animateDir == "") == (animateMQTTURL == "") {
			return fmt.Errorf("exactly one of --dir and --mqtt-url is required")
		}
		if !(animateFPS > 0) {
			return fmt.Errorf("--fps must be positive")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		start := time.Now()
		var n int
		if animateDir != "" {
			sink, err := stream.NewDirSink(animateDir)
			if err != nil {
				return err
			}
			r := &stream.Recorder{Gauge: g, FPS: animateFPS}
			n, err = r.Record(ctx, animateFrom, animateTo, sink)
			if err != nil {
				return err
			}
		} else {
			client, err := stream.Connect(animateMQTTURL, "gauge", animateUser, animatePassword)
			if err != nil {
				return err
			}
			defer client.Disconnect(250)
			log.Println("Connected to", animateMQTTURL)

			sink := stream.NewMQTTSink(client, animateTopic).WithQoS(byte(animateQoS))
			n, err = stream.Play(ctx, g, animateFrom, animateTo, time.Duration(float64(time.Second)/animateFPS), sink)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%s %d frames in %v\n", color.GreenString("rendered"), n, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	animateCmd.Flags().Float64Var(&animateFrom, "from", 0, "Start value")
	animateCmd.Flags().Float64Var(&animateTo, "to", 100, "Target value, clamped to the gauge range")
	animateCmd.Flags().Float64Var(&animateFPS, "fps", 60, "Frames per second")
	animateCmd.Flags().StringVar(&animateDir, "dir", "", "Directory to write frame-NNNN.svg files to")
	animateCmd.Flags().StringVar(&animateMQTTURL, "mqtt-url", "", "MQTT broker, e.g. tcp://localhost:1883")
	animateCmd.Flags().StringVar(&animateTopic, "topic", "gauge/frames", "MQTT topic for frames")
	animateCmd.Flags().StringVar(&animateUser, "username", "", "MQTT username")
	animateCmd.Flags().StringVar(&animatePassword, "password", "", "MQTT password")
	animateCmd.Flags().IntVar(&animateQoS, "qos", 0, "MQTT quality of service (0, 1 or 2)")
	AddCommand(animateCmd)
}
