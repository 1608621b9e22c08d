package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kwicl/Skyara-App/internal/config"
	"github.com/kwicl/Skyara-App/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfg       = &config.Config{}
		logLevel  string
		logFormat string
		envFile   string
	)

	root := &cobra.Command{
		Use:          "skyara",
		Short:        "Cost and revenue estimator for small residential buildings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var envPaths []string
			if envFile != "" {
				envPaths = append(envPaths, envFile)
			}
			loaded, err := config.Load(envPaths...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				loaded.LogFormat = logFormat
			}
			*cfg = *loaded
			return setupLogging(cfg.LogLevel, cfg.LogFormat)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format (json, console)")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file (default ./.env when present)")

	root.AddCommand(validateCmd(cfg))
	root.AddCommand(estimateCmd(cfg))
	root.AddCommand(reportCmd(cfg))
	root.AddCommand(referenceCmd(cfg))
	root.AddCommand(serveCmd(cfg))
	return root
}

func setupLogging(level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return nil
}

func validateCmd(cfg *config.Config) *cobra.Command {
	var referencePath string
	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Check a project file and report feasibility advisories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0], pick(referencePath, cfg.Reference))
		},
	}
	cmd.Flags().StringVar(&referencePath, "reference", "", "reference cost table (detailed mode)")
	return cmd
}

func estimateCmd(cfg *config.Config) *cobra.Command {
	var (
		format        string
		referencePath string
	)
	cmd := &cobra.Command{
		Use:   "estimate [project-path]",
		Short: "Compute per-level costs and project totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.OutOrStdout(), args[0], pick(referencePath, cfg.Reference), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, markdown)")
	cmd.Flags().StringVar(&referencePath, "reference", "", "reference cost table (detailed mode)")
	return cmd
}

func reportCmd(cfg *config.Config) *cobra.Command {
	var (
		pdfPath       string
		xlsxPath      string
		referencePath string
	)
	cmd := &cobra.Command{
		Use:   "report [project-path]",
		Short: "Write the estimate as a PDF and/or XLSX report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), args[0], pick(referencePath, cfg.Reference), pdfPath, xlsxPath)
		},
	}
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF output path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "XLSX output path")
	cmd.Flags().StringVar(&referencePath, "reference", "", "reference cost table (detailed mode)")
	return cmd
}

func referenceCmd(cfg *config.Config) *cobra.Command {
	var referencePath string
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Print the active detailed-mode reference cost table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReference(cmd.OutOrStdout(), pick(referencePath, cfg.Reference))
		},
	}
	cmd.Flags().StringVar(&referencePath, "reference", "", "reference cost table to print instead of the built-in one")
	return cmd
}

func serveCmd(cfg *config.Config) *cobra.Command {
	var (
		port          int
		referencePath string
	)
	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the HTTP API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := cfg.Project
			if len(args) == 1 {
				projectPath = args[0]
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.Port
			}
			ref, err := loadReferenceOverride(pick(referencePath, cfg.Reference))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Options{
				ProjectPath: projectPath,
				Port:        port,
				Reference:   ref,
				CORSOrigins: cfg.CORSOrigins,
			})
			return srv.Start(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	cmd.Flags().StringVar(&referencePath, "reference", "", "reference cost table (detailed mode)")
	return cmd
}

// pick returns the flag value when set, else the configured fallback.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
