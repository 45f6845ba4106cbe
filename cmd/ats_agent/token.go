package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/server"
)

var tokenClientID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a service token for the REST API",
	Long:  "Generate a bearer token signed with JWT_SECRET for a client of the scoring API. Only needed when the server runs with authentication enabled.",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client UUID to embed in the token (default: random)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	clientID := uuid.New()
	if tokenClientID != "" {
		clientID, err = uuid.Parse(tokenClientID)
		if err != nil {
			return fmt.Errorf("invalid --client-id: %w", err)
		}
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(clientID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Client ID: %s\n", clientID)
	fmt.Fprintf(os.Stdout, "Token:     %s\n", token)
	return nil
}
