package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"bay-sanitation/internal/config"
	"bay-sanitation/internal/methods"
	"bay-sanitation/internal/sanitation"
	"bay-sanitation/internal/status"
	"bay-sanitation/internal/storage"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	cfg      *config.Config
	provider storage.Provider
)

var rootCmd = &cobra.Command{
	Use:   "bay-sanitation",
	Short: "Bay sanitation tracking system",
	Long:  `A tool for tracking disinfection events and their scheduling for numbered bays in a facility.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize configuration
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadConfig(cfgFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		config.Cfg = cfg

		// Initialize storage provider
		provider = storage.NewProvider(&cfg.Storage)
		if provider == nil {
			slog.Error("Failed to initialize storage provider")
			os.Exit(1)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Cleanup
		if provider != nil {
			provider.Close()
		}
	},
}

// newService wires the sanitation engine from the initialized globals.
func newService() *sanitation.Service {
	catalog, err := methods.Load(cfg.MethodsFile)
	if err != nil {
		slog.Error("Failed to load methods catalog", "error", err, "file", cfg.MethodsFile)
		os.Exit(1)
	}

	thresholds := status.Thresholds{
		NearDueDays: cfg.Report.NearDueDays,
		OverdueDays: cfg.Report.OverdueDays,
	}
	return sanitation.NewService(provider, thresholds, catalog)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./instance/config.yaml)")
}
