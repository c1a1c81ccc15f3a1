package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/instagram-insights-etl/internal/api"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/scheduler"
	"github.com/vfg2006/instagram-insights-etl/internal/usecases/authenticating"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe o agendador interno e a API de operação",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		applyLogLevel(cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		runner, loader, err := buildRunner(ctx, cfg, false)
		if err != nil {
			return err
		}
		defer loader.Close()

		syncService := scheduler.NewPipelineSyncService(runner, cfg)
		if err := syncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline")
		}

		authenticator := authenticating.NewService(cfg.Auth)

		server, err := api.New(cfg, syncService, authenticator)
		if err != nil {
			return err
		}

		return server.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
