package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phonereport/internal/config"
	"phonereport/internal/directory"
	"phonereport/internal/render"
	"phonereport/internal/report"
)

var (
	reportFormat string
	reportOutput string
	baseURL      string
	token        string

	includeUsers            bool
	includeRooms            bool
	includeResourceAccounts bool
)

// reportCmd builds and writes the assignment report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the phone-number assignment report",
	Long: `Fetches users, meeting rooms and resource accounts from the directory
service, merges them into one collection (more specific classifications
supersede plain user entries) and writes the sorted report.

With --format "" the raw records are written to stdout as a JSON array for
piping into further processing.`,
	RunE: runReport,
}

// formatsCmd lists the available output adapters
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available report formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range render.Formats() {
			fmt.Println(name)
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{reportCmd, rootCmd} {
		fl := cmd.Flags()
		fl.StringVarP(&reportFormat, "format", "f", "", "output format (default from config; empty on the report subcommand means raw JSON)")
		fl.StringVarP(&reportOutput, "output", "o", "", "output file (default stdout)")
		fl.StringVar(&baseURL, "base-url", "", "directory service base URL")
		fl.StringVar(&token, "token", "", "directory bearer token")
		fl.BoolVar(&includeUsers, "users", true, "include user assignments")
		fl.BoolVar(&includeRooms, "rooms", true, "include meeting-room assignments")
		fl.BoolVar(&includeResourceAccounts, "resource-accounts", true, "include resource-account assignments")
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	if cfg.Directory.Token == "" {
		return fmt.Errorf("no directory token configured (set PHONEREPORT_TOKEN or --token)")
	}

	client := directory.New(cfg.Directory.BaseURL, cfg.Directory.Token, logger)
	opts := report.Options{
		Users:            cfg.Report.Users,
		MeetingRooms:     cfg.Report.MeetingRooms,
		ResourceAccounts: cfg.Report.ResourceAccounts,
	}

	records := report.Build(cmd.Context(), client, opts, logger)
	logger.Debug("report built", zap.Int("records", len(records)))

	// No adapter selected: emit the raw sorted collection for piping.
	if cfg.Report.Format == "" {
		if records == nil {
			records = []report.AssignmentRecord{}
		}
		return json.NewEncoder(os.Stdout).Encode(records)
	}

	renderer, err := render.ForFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	out := os.Stdout
	if cfg.Report.Output != "" {
		f, err := os.Create(cfg.Report.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := renderer.Render(out, records); err != nil {
		return err
	}

	if cfg.Report.Output != "" {
		logger.Info("report written",
			zap.String("format", cfg.Report.Format),
			zap.String("output", cfg.Report.Output),
			zap.Int("records", len(records)))
	}
	return nil
}

// applyFlagOverrides layers explicitly-set flags on top of the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Report.Format = reportFormat
	}
	if fl.Changed("output") {
		cfg.Report.Output = reportOutput
	}
	if fl.Changed("base-url") {
		cfg.Directory.BaseURL = baseURL
	}
	if fl.Changed("token") {
		cfg.Directory.Token = token
	}
	if fl.Changed("users") {
		cfg.Report.Users = includeUsers
	}
	if fl.Changed("rooms") {
		cfg.Report.MeetingRooms = includeRooms
	}
	if fl.Changed("resource-accounts") {
		cfg.Report.ResourceAccounts = includeResourceAccounts
	}
}
