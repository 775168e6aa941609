// Package main provides the CLI entry point for phasor-go.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/phasor-go/pkg/phasor"
	"github.com/ukaji3/phasor-go/pkg/phasor/config"
	"github.com/ukaji3/phasor-go/pkg/phasor/diagram"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
	"github.com/ukaji3/phasor-go/pkg/phasor/output"
	"github.com/ukaji3/phasor-go/pkg/phasor/render"
	"github.com/ukaji3/phasor-go/pkg/phasor/server"
)

var (
	outputPath string
	jsonPath   string
	diagPath   string
	xlsxPath   string
	pretty     bool
	degrade    bool
	quiet      bool
	configPath string
	logLevel   string
	addr       string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phasor [input.html]",
		Short: "Draw phasor diagrams from HTML power-quality reports",
		Long: `phasor-go reads the voltage and current phase angles of phases A, B and C
from a table in an HTML report and draws the phasor diagram as SVG.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", `SVG output path, "-" for stdout (default: <input>.svg)`)
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Write the report as JSON to this path")
	rootCmd.Flags().StringVar(&diagPath, "diagram-json", "", "Write only the diagram description as JSON to this path")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write angles and arcs as an Excel workbook to this path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&degrade, "degrade", false, "Skip phases with invalid angles instead of failing")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the table preview")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an upload page that draws phasor diagrams",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: config server.addr or PHASOR_ADDR)")
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger(cmd.ErrOrStderr(), logLevel, false)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if degrade {
		opts.Policy = diagram.PolicyDegrade
	}
	if quiet {
		opts.PreviewRows = -1
	}
	opts.Logger = logger

	svgPath := outputPath
	if svgPath == "" {
		svgPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".svg"
	}
	info := cmd.OutOrStdout()
	if svgPath == "-" {
		info = cmd.ErrOrStderr()
	}

	report, err := phasor.ExtractFile(inputPath, opts)
	if report == nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := writeReport(info, report); err != nil {
		return err
	}

	// The JSON report is written for failed extractions too.
	if jsonPath != "" {
		jsonData, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
	}

	if report.Failed() {
		return fmt.Errorf("%s", report.Message())
	}

	svg := render.SVG(*report.Diagram, cfg.Style)
	if svgPath == "-" {
		if _, err := cmd.OutOrStdout().Write(svg); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(svgPath, svg, 0644); err != nil {
			return fmt.Errorf("failed to write diagram: %w", err)
		}
		fmt.Fprintf(info, "Diagram written to %s\n", svgPath)
	}

	if diagPath != "" {
		diagData, err := output.DiagramToJSON(report.Diagram, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(diagPath, diagData, 0644); err != nil {
			return fmt.Errorf("failed to write diagram JSON: %w", err)
		}
	}

	if xlsxPath != "" {
		if err := output.SaveXLSX(xlsxPath, report); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	return nil
}

// writeReport prints the table summary and preview.
func writeReport(w io.Writer, report *models.Report) error {
	if _, err := fmt.Fprintf(w, "%d tables found in the HTML.\n", report.TableCount); err != nil {
		return err
	}
	if report.TableIndex >= 0 {
		fmt.Fprintf(w, "Relevant table found (table %d).\n", report.TableIndex+1)
	}
	if report.Preview != "" {
		fmt.Fprintf(w, "\nTable preview:\n%s\n\n", report.Preview)
	}
	if report.Diagram != nil {
		for _, warning := range report.Diagram.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warning)
		}
	}
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	level := logLevel
	if !cmd.Flags().Changed("log-level") {
		if env := os.Getenv("PHASOR_LOG_LEVEL"); env != "" {
			level = env
		} else {
			level = "info"
		}
	}
	logger := newLogger(os.Stdout, level, true)
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	switch {
	case addr != "":
		cfg.Server.Addr = addr
	case os.Getenv("PHASOR_ADDR") != "":
		cfg.Server.Addr = os.Getenv("PHASOR_ADDR")
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return srv.ListenAndServe(ctx)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string, jsonFormat bool) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
