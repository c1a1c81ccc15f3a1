package cmd

import (
	"context"

	"github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/warehouse"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/pipeline"
	"github.com/vfg2006/instagram-insights-etl/internal/usecases/collecting"
)

// buildRunner monta o pipeline completo. O loader devolvido deve ser fechado pelo chamador.
func buildRunner(ctx context.Context, cfg *config.Config, dryRun bool) (*pipeline.Runner, warehouse.Loader, error) {
	metaClient := metaclient.NewClient(cfg)
	resolver := meta.NewTokenResolver(cfg, metaClient)

	collector, err := collecting.NewService(cfg, metaClient)
	if err != nil {
		return nil, nil, err
	}

	var loader warehouse.Loader = warehouse.NewDiscardLoader()
	if !dryRun {
		loader, err = warehouse.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	return pipeline.NewRunner(cfg, resolver, collector, loader), loader, nil
}
