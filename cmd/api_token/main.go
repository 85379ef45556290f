package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"class-finder/internal/config"
	"class-finder/internal/service"
)

var client string

var rootCmd = &cobra.Command{
	Use:   "api_token",
	Short: "Issue a bearer token for the session API",
	Long: `Signs a token with API_JWT_SECRET that the session API accepts in the
Authorization header.

Examples:
  api_token --client web-ui`,
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: loading .env: %v", err)
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		jwtSvc := service.NewJWTService(cfg.APIJWTSecret, cfg.APIJWTTTL())
		if !jwtSvc.Enabled() {
			return fmt.Errorf("%w: API_JWT_SECRET is not set", config.ErrInvalidConfig)
		}
		token, err := jwtSvc.Issue(client)
		if err != nil {
			return err
		}
		fmt.Println(token)
		// La expiracion va a stderr para poder capturar el token con $(...).
		fmt.Fprintf(os.Stderr, "client %q, expires %s\n", client, time.Now().Add(jwtSvc.TTL()).UTC().Format(time.RFC3339))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&client, "client", "cli", "Client name stored in the token subject")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
