package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"localdir/internal/platform/authtoken"
	"localdir/internal/platform/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a back-office token for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if cfg.IsProduction() {
			return errors.New("token minting is disabled in production")
		}

		subject, _ := cmd.Flags().GetString("subject")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		if role == "" {
			role = cfg.Auth.AdminRole
		}

		tok, err := authtoken.New(cfg.Auth.SigningKey, cfg.Auth.Issuer).Issue(subject, role, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("subject", "dev-admin", "actor id placed in the sub claim")
	tokenCmd.Flags().String("role", "", "role claim (defaults to ADMIN_ROLE)")
	tokenCmd.Flags().Duration("ttl", 8*time.Hour, "token lifetime")
}
