package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/paragourmet/app/observability/metrics"
	"github.com/FACorreiaa/paragourmet/internal/api/scene"
	"github.com/FACorreiaa/paragourmet/internal/container"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

var promptFlags struct {
	lat, lon     float64
	city         string
	district     string
	temperatureC float64
	sky          string
	humidity     string
	radius       int
	at           string
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Build and print the suggestion prompt for one scene",
	Example: `  paragourmet prompt --lat 37.5445 --lon 127.056 --city Seoul --district Seongsu-dong \
    --temp 30 --sky sunny --humidity 70`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("lat", strconv.FormatFloat(promptFlags.lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(promptFlags.lon, 'f', -1, 64))
		q.Set("city", promptFlags.city)
		q.Set("district", promptFlags.district)
		q.Set("temp_c", strconv.FormatFloat(promptFlags.temperatureC, 'f', -1, 64))
		q.Set("sky", promptFlags.sky)
		q.Set("humidity", promptFlags.humidity)
		if cmd.Flags().Changed("radius") {
			q.Set("radius", strconv.Itoa(promptFlags.radius))
		}

		radius := cfg.Scene.DefaultRadius
		if radius <= 0 {
			radius = types.DefaultSearchRadiusM
		}
		in, err := scene.ParseQuery(q, radius)
		if err != nil {
			return err
		}
		if promptFlags.at != "" {
			in.LocalTime, err = time.Parse(time.RFC3339, promptFlags.at)
			if err != nil {
				return fmt.Errorf("%w: --at must be RFC3339: %v", types.ErrInvalidParam, err)
			}
		}

		deps, err := container.NewPromptDeps(&cfg, logger, metrics.NewNoop())
		if err != nil {
			return err
		}

		text := deps.PromptService.GeneratePrompt(cmd.Context(), deps.Resolver.NewScene(in))
		_, err = fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	f := promptCmd.Flags()
	f.Float64Var(&promptFlags.lat, "lat", 0, "Latitude")
	f.Float64Var(&promptFlags.lon, "lon", 0, "Longitude")
	f.StringVar(&promptFlags.city, "city", "", "City name")
	f.StringVar(&promptFlags.district, "district", "", "District or neighbourhood")
	f.Float64Var(&promptFlags.temperatureC, "temp", 0, "Temperature in Celsius")
	f.StringVar(&promptFlags.sky, "sky", "", "Sky condition, e.g. sunny, cloudy")
	f.StringVar(&promptFlags.humidity, "humidity", "", "Relative humidity in percent")
	f.IntVar(&promptFlags.radius, "radius", types.DefaultSearchRadiusM, "POI search radius in metres")
	f.StringVar(&promptFlags.at, "at", "", "Local time as RFC3339; resolved from the coordinate when empty")
	for _, name := range []string{"lat", "lon", "city", "district", "temp", "sky"} {
		_ = promptCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(promptCmd)
}
