package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/usecases/authenticating"
)

var tokenFlags struct {
	role string
	ttl  time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token <operador>",
	Short: "Emite um token para a API de operação (assinado com AUTH_SECRET)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		token, err := authenticating.NewService(cfg.Auth).GenerateToken(args[0], tokenFlags.role, tokenFlags.ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenFlags.role, "role", domain.RoleOperator, "perfil do token: operator ou viewer")
	tokenCmd.Flags().DurationVar(&tokenFlags.ttl, "ttl", 24*time.Hour, "validade do token")

	rootCmd.AddCommand(tokenCmd)
}
