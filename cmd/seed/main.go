package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"class-finder/internal/config"
	"class-finder/internal/db"
	"class-finder/internal/repository"
)

var (
	dataDir string
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the JSON data set into Postgres",
	Long: `Reads and validates every document under DATA_DIR and upserts it into
the entities table of DATABASE_URL, creating the table when missing.

Examples:
  seed
  seed --data-dir ./data --dry-run`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding classes/**/*.json (overrides DATA_DIR)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the data set without writing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfigWith(func(c *config.Config) {
		if cmd.Flags().Changed("data-dir") {
			c.DataDir = dataDir
		}
		// El seed siempre lee de JSON; la URL solo se exige al escribir.
		c.EntitySource = config.SourceJSON
	})
	if err != nil {
		return err
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	sources, err := repository.NewJSONEntityRepository(cfg.DataDir).Sources(ctx)
	if err != nil {
		pterm.Error.Printfln("Invalid data set: %v", err)
		return err
	}
	pterm.Info.Printfln("%d documents validated from %s", len(sources), cfg.DataDir)
	if dryRun {
		pterm.Warning.Println("DRY RUN MODE: nothing written")
		return nil
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL is required to seed", config.ErrInvalidConfig)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db pool: %w", err)
	}
	defer pool.Close()

	repo := repository.NewPgEntityRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Upserting entities...")
	for _, source := range sources {
		if err := repo.Upsert(ctx, source); err != nil {
			spinner.Fail(fmt.Sprintf("upsert %q failed", source.Name))
			return fmt.Errorf("upsert %q: %w", source.Name, err)
		}
		logger.Debug("entity upserted", zap.String("name", source.Name))
	}
	spinner.Success(fmt.Sprintf("%d entities seeded", len(sources)))
	return nil
}
