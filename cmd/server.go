package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	app "bay-sanitation/internal"
	"bay-sanitation/internal/auth"
	"bay-sanitation/internal/config"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the bay sanitation server",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Starting bay sanitation server...")
		initLogger(cfg)
		ServerMain()
	},
}

// Initialize logger
func initLogger(cfg *config.Config) *slog.Logger {
	// Determine level from config and set it on the handler options.
	var level slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		println("Invalid log level in config, defaulting to INFO")
	}
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	slog.Debug("Logger initialized", "level", level.String())
	return logger
}

func ServerMain() {
	if config.Cfg == nil {
		panic("Config not initialized.")
	}

	service := newService()
	authenticator := auth.NewPasswordAuthenticator(cfg.Auth.AdminUser, cfg.Auth.AdminPasswordHash)

	server := app.HTTPServer(cfg, service, authenticator)
	server.Run()
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
