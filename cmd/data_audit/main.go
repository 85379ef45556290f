package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"class-finder/internal/config"
	"class-finder/internal/repository"
	"class-finder/internal/service"
)

var (
	dataDir string
	source  string
	format  string
	strict  bool
)

var rootCmd = &cobra.Command{
	Use:   "data_audit",
	Short: "Audit the class and archetype data set",
	Long: `Loads every data entry without schema checks and reports the total
number of entries, entries missing required keys, and keys that are not
part of the data schema.

Examples:
  data_audit
  data_audit --data-dir ./data --strict
  data_audit --format json`,
	SilenceUsage: true,
	RunE:         runAudit,
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding classes/**/*.json (overrides DATA_DIR)")
	rootCmd.Flags().StringVar(&source, "source", "", "Entity source: json or postgres (overrides ENTITY_SOURCE)")
	rootCmd.Flags().StringVar(&format, "format", "human", "Output format (human, json)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the audit has findings")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAudit(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfigWith(func(c *config.Config) {
		if cmd.Flags().Changed("data-dir") {
			c.DataDir = dataDir
		}
		if cmd.Flags().Changed("source") {
			c.EntitySource = source
		}
	})
	if err != nil {
		return err
	}

	store, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := service.NewAuditService(nil, store).Audit(ctx)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if strict {
		if findings := report.Err(); findings != nil {
			return fmt.Errorf("audit found %d problems", len(multierr.Errors(findings)))
		}
	}
	return nil
}

func printReport(report service.AuditReport) {
	pterm.DefaultHeader.WithFullWidth().Printf("Audit")
	pterm.Println()
	pterm.Info.Printfln("Total entries: %d", report.Total)

	if len(report.Incomplete) > 0 {
		pterm.Warning.Printfln("Entries that are missing required keys:")
		for _, name := range report.Incomplete {
			pterm.Printfln("  %s %s", pterm.Gray("→"), pterm.Yellow(name))
		}
	}
	if len(report.Unexpected) > 0 {
		pterm.Warning.Printfln("Unexpected keys:")
		for _, kc := range report.Unexpected {
			pterm.Printfln("  %s %s (%d)", pterm.Gray("→"), pterm.LightMagenta(kc.Key), kc.Count)
		}
	}
	if len(report.Incomplete) == 0 && len(report.Unexpected) == 0 {
		pterm.Success.Println("No problems found")
	}
}
