package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/warehouse"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/usecases/collecting"
	"github.com/vfg2006/instagram-insights-etl/pkg/log"
	"github.com/vfg2006/instagram-insights-etl/pkg/utils"
)

// ErrEmptyResult indica que um coletor obrigatório não devolveu nenhuma linha
var ErrEmptyResult = errors.New("coleta obrigatória retornou tabela vazia")

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

type PageTokenResolver interface {
	ResolvePageToken(ctx context.Context) (string, error)
}

type emptyPolicy int

const (
	// failOnEmpty aborta a execução: tabela vazia indica configuração errada na origem
	failOnEmpty emptyPolicy = iota
	// skipOnEmpty apenas pula a carga: dia sem eventos ou sem gasto é um resultado válido
	skipOnEmpty
)

type step struct {
	name    string
	table   string
	policy  emptyPolicy
	collect func(ctx context.Context, pageToken string, extractedAt time.Time) (domain.Tabular, error)
}

type Runner struct {
	cfg       *config.Config
	resolver  PageTokenResolver
	collector collecting.Collector
	loader    warehouse.Loader
	now       func() time.Time
}

func NewRunner(
	cfg *config.Config,
	resolver PageTokenResolver,
	collector collecting.Collector,
	loader warehouse.Loader,
) *Runner {
	return &Runner{
		cfg:       cfg,
		resolver:  resolver,
		collector: collector,
		loader:    loader,
		now:       time.Now,
	}
}

// Run executa uma extração completa: token → timestamp da execução → coleta, validação, prévia e carga
// de cada tabela, em sequência. Não existe transação entre tabelas: uma falha no meio deixa as
// tabelas anteriores já carregadas.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da execução")
	}

	report := &RunReport{
		RunID:     runID,
		StartedAt: r.now().UTC(),
		Tables:    make([]TableReport, 0),
	}

	ctx = log.WithRunID(ctx, report.RunID)
	logger := log.ForContext(ctx)

	logger.Info("Iniciando execução do pipeline")

	pageToken, err := r.resolver.ResolvePageToken(ctx)
	if err != nil {
		return report.finish(r.now(), err)
	}

	extractedAt := r.now().UTC()
	report.ExtractedAt = extractedAt

	for _, s := range r.steps() {
		stepLogger := logger.WithField("table", s.table)

		data, err := s.collect(ctx, pageToken, extractedAt)
		if err != nil {
			return report.finish(r.now(), errors.Wrapf(err, "erro na etapa %s", s.name))
		}

		tableReport := TableReport{Step: s.name, Table: s.table, Rows: data.Len()}

		if data.Len() == 0 {
			if s.policy == failOnEmpty {
				report.Tables = append(report.Tables, tableReport)
				stepLogger.Error("Coleta obrigatória vazia, abortando execução")
				return report.finish(r.now(), errors.Wrapf(ErrEmptyResult, "etapa %s", s.name))
			}

			tableReport.Skipped = true
			report.Tables = append(report.Tables, tableReport)
			stepLogger.Warn("Nenhuma linha coletada, carga ignorada")
			continue
		}

		stepLogger.WithField("rows", data.Len()).Info("Prévia das linhas coletadas:\n" + RenderPreview(data, r.cfg.Pipeline.PreviewRows))

		if err := r.loader.Load(ctx, s.table, data); err != nil {
			report.Tables = append(report.Tables, tableReport)
			return report.finish(r.now(), errors.Wrapf(err, "erro ao carregar %s", s.table))
		}

		tableReport.Loaded = true
		report.Tables = append(report.Tables, tableReport)
		stepLogger.WithField("rows", data.Len()).Info("Tabela carregada")
	}

	logger.WithField("rows", report.TotalRows()).Info("Execução do pipeline concluída")

	return report.finish(r.now(), nil)
}

func (r *Runner) steps() []step {
	p := r.cfg.Pipeline
	t := r.cfg.Tables

	steps := []step{
		{
			name:   "demographics",
			table:  t.Demographics,
			policy: failOnEmpty,
			collect: func(ctx context.Context, pageToken string, extractedAt time.Time) (domain.Tabular, error) {
				return r.collector.CollectDemographics(ctx, pageToken, p.DemographicsMetrics, p.Timeframes, p.Dimensions, extractedAt)
			},
		},
		{
			name:   "media_product",
			table:  t.MediaProduct,
			policy: failOnEmpty,
			collect: func(ctx context.Context, pageToken string, extractedAt time.Time) (domain.Tabular, error) {
				return r.collector.CollectDayMediaProduct(ctx, pageToken, nil, p.MediaProductMetrics, extractedAt)
			},
		},
		{
			name:   "follows_unfollows",
			table:  t.FollowsUnfollows,
			policy: skipOnEmpty,
			collect: func(ctx context.Context, pageToken string, extractedAt time.Time) (domain.Tabular, error) {
				return r.collector.CollectFollowsUnfollowsYesterday(ctx, pageToken, extractedAt)
			},
		},
		{
			name:   "followers_snapshot",
			table:  t.FollowersSnapshot,
			policy: failOnEmpty,
			collect: func(ctx context.Context, _ string, extractedAt time.Time) (domain.Tabular, error) {
				return r.collector.CollectFollowersSnapshotDaily(ctx, extractedAt)
			},
		},
		{
			name:   "ads_daily",
			table:  t.AdsDaily,
			policy: skipOnEmpty,
			collect: func(ctx context.Context, _ string, extractedAt time.Time) (domain.Tabular, error) {
				return r.collector.CollectAdsSpendYesterday(ctx, extractedAt)
			},
		},
	}

	if p.TimeSeriesEnabled {
		steps = append(steps, step{
			name:   "time_series",
			table:  t.TimeSeries,
			policy: skipOnEmpty,
			collect: func(ctx context.Context, pageToken string, extractedAt time.Time) (domain.Tabular, error) {
				return r.collector.CollectTimeSeriesLastNDays(ctx, pageToken, p.TimeSeriesDays, p.TimeSeriesMetrics, extractedAt)
			},
		})
	}

	return steps
}
