package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName = "raygeom"
	version = "v0.3.0"
)

var (
	cfgFile string
	verbose bool
	logger  zerolog.Logger
)

// geoLogger adapts zerolog to the one-method Logger the geometry
// packages report invariant violations through
type geoLogger struct {
	log zerolog.Logger
}

func (g geoLogger) Printf(format string, args ...interface{}) {
	g.log.Warn().Msgf(format, args...)
}

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "Ray/primitive intersection engine with BVH acceleration",
	Long:    "raygeom assembles demo primitive scenes, builds the bounding volume hierarchy over them, and renders geometry-only previews (normal or depth shaded).",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return initConfig()
	},
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("raygeom")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("RAYGEOM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; flags and defaults suffice
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config")
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./raygeom.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
