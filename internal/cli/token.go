package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/carbonfootprint-backend/internal/auth"
	"github.com/heartmarshall/carbonfootprint-backend/internal/config"
)

type tokenOutput struct {
	Token     string    `json:"token"     yaml:"token"`
	UserID    string    `json:"userId"    yaml:"userId"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expiresAt"`
}

func newTokenCmd() *cobra.Command {
	var (
		userID string
		label  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token",
		Long:  "Signs an access token with auth.jwt_secret (AUTH_JWT_SECRET). Records created with it are attributed to --user-id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user-id: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled() {
				return errors.New("auth.jwt_secret (AUTH_JWT_SECRET) is not configured")
			}
			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}

			issuedAt := time.Now()
			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(id, label)
			if err != nil {
				return err
			}

			return writeOutput(cmd, tokenOutput{
				Token:     token,
				UserID:    id.String(),
				ExpiresAt: issuedAt.Add(ttl).UTC().Truncate(time.Second),
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "owner UUID (required)")
	cmd.Flags().StringVar(&label, "label", "", "optional display label stored in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default auth.access_token_ttl)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
