package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appLogger "github.com/FACorreiaa/paragourmet/app/logger"
	"github.com/FACorreiaa/paragourmet/config"
)

var (
	configPath string
	cfg        config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paragourmet",
	Short: "Suggest one food or drink item for a place, its weather and its surroundings",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: .env file not found or error loading:", err)
		}

		var err error
		cfg, err = config.InitConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger = appLogger.New(cfg.Mode, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file (defaults to ./config.yml or the embedded config)")
}

func Execute() error {
	return rootCmd.Execute()
}
