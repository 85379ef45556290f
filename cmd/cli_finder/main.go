package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"class-finder/internal/config"
	"class-finder/internal/domain"
	"class-finder/internal/prompt"
	"class-finder/internal/repository"
	"class-finder/internal/service"
)

var (
	dataDir    string
	source     string
	maxAnswers int
	verbose    bool
	once       bool
	show       string
)

var rootCmd = &cobra.Command{
	Use:   "cli_finder",
	Short: "Find a class or archetype by answering questions",
	Long: `Asks a short series of multiple-choice questions about the mechanics
you want and narrows the data set down to a single class or archetype.

Examples:
  cli_finder
  cli_finder --data-dir ./data
  cli_finder --source postgres --verbose
  cli_finder --show Wizard`,
	SilenceUsage: true,
	RunE:         runFinder,
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding classes/**/*.json (overrides DATA_DIR)")
	rootCmd.Flags().StringVar(&source, "source", "", "Entity source: json or postgres (overrides ENTITY_SOURCE)")
	rootCmd.Flags().IntVar(&maxAnswers, "max-answers", 0, "Preferred maximum options per question (overrides MAX_ANSWERS)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log question selection details")
	rootCmd.Flags().BoolVar(&once, "once", false, "Exit after the first result")
	rootCmd.Flags().StringVar(&show, "show", "", "Print the traits of one class or archetype and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFinder(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// Ctrl+C dentro de un prompt de pterm no llega a NotifyContext.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	_ = godotenv.Load()

	cfg, err := config.LoadConfigWith(func(c *config.Config) {
		if cmd.Flags().Changed("data-dir") {
			c.DataDir = dataDir
		}
		if cmd.Flags().Changed("source") {
			c.EntitySource = source
		}
		if cmd.Flags().Changed("max-answers") {
			c.MaxAnswers = maxAnswers
		}
	})
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	store, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cmd.Flags().Changed("show") {
		entity, err := store.FindByName(ctx, show)
		if errors.Is(err, repository.ErrEntityNotFound) {
			pterm.Warning.Printfln("No class or archetype named %q", show)
			return err
		}
		if err != nil {
			return err
		}
		prompt.PrintEntity(*entity)
		return nil
	}

	entities, err := store.List(ctx)
	if err != nil {
		pterm.Error.Printfln("Could not load entities: %v", err)
		return err
	}
	logger.Info("entities loaded", zap.Int("count", len(entities)), zap.String("source", cfg.EntitySource))

	narrowing := service.NewNarrowingService(logger, nil, cfg.MaxAnswers)
	terminal := prompt.NewTerminal(cancel)

	pterm.DefaultHeader.WithFullWidth().Printf("Class Finder")
	pterm.Println()
	pterm.Info.Printfln("%d classes and archetypes loaded", len(entities))

	for {
		if err := findOne(ctx, narrowing, terminal, entities); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if once {
			return nil
		}
		again, err := terminal.Confirm(ctx, "Run again?")
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func findOne(ctx context.Context, narrowing *service.NarrowingService, terminal *prompt.Terminal, entities []domain.Character) error {
	session := service.NewSession(uuid.NewString(), entities)
	result, err := narrowing.Run(ctx, session, terminal)
	if err != nil {
		return fmt.Errorf("session %s: %w", session.ID, err)
	}
	prompt.PrintResult(result, len(session.Asked))
	return nil
}
