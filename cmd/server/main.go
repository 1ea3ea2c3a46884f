package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fahmi-a-r/typo-corrector/pkg/di"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dictionaryPaths []string
	metricConfig    string
	address         string
	port            int
)

var rootCmd = &cobra.Command{
	Use:           "corrector",
	Short:         "A web server that corrects typos",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&dictionaryPaths, "dictionary_path", "d", nil, "Path to dictionary file")
	rootCmd.Flags().StringVarP(&metricConfig, "metric_config", "m", "", "Path to metric description file")
	rootCmd.Flags().StringVarP(&address, "address", "a", "0.0.0.0", "Host to serve app")
	rootCmd.Flags().IntVarP(&port, "port", "p", 9000, "Port to serve app")
	_ = rootCmd.MarkFlagRequired("dictionary_path")
}

func run(cmd *cobra.Command, _ []string) error {
	if port < 1 || port > 65536 {
		return fmt.Errorf("port must be in range 1..65536, got %d", port)
	}

	// the flag is repeatable, the last occurrence wins
	viper.Set("DICTIONARY_PATH", dictionaryPaths[len(dictionaryPaths)-1])
	if metricConfig != "" {
		viper.Set("METRIC_CONFIG", metricConfig)
	}
	viper.Set("API_ADDRESS", address)
	viper.Set("API_PORT", port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, cleanup, err := di.InitializeCorrectorServer()
	if err != nil {
		return err
	}
	defer cleanup()

	server.Log.Info("server started")
	if err := server.Use(ctx); err != nil {
		return err
	}
	server.Log.Info("shutting down...")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
