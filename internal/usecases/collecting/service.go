package collecting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
)

// DefaultMediaProductMetrics é o pacote padrão de métricas diárias por media_product_type
var DefaultMediaProductMetrics = []string{
	"reach",
	"likes",
	"shares",
	"comments",
	"saves",
	"views",
	"total_interactions",
}

// DefaultTimeSeriesMetrics lista as métricas disponíveis como time_series
var DefaultTimeSeriesMetrics = []string{
	"reach",
}

var _ Collector = (*Service)(nil)

type Service struct {
	cfg         *config.Config
	client      metaclient.Client
	analyticsTZ *time.Location
	adsTZ       *time.Location
	now         func() time.Time
}

func NewService(cfg *config.Config, client metaclient.Client) (*Service, error) {
	analyticsTZ, err := time.LoadLocation(cfg.Pipeline.AnalyticsTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "fuso inválido: %s", cfg.Pipeline.AnalyticsTimezone)
	}

	adsTZ, err := time.LoadLocation(cfg.Pipeline.AdsTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "fuso inválido: %s", cfg.Pipeline.AdsTimezone)
	}

	return &Service{
		cfg:         cfg,
		client:      client,
		analyticsTZ: analyticsTZ,
		adsTZ:       adsTZ,
		now:         time.Now,
	}, nil
}

// WithClock troca o relógio usado para calcular "hoje" e "ontem"
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) extractedAtOrNow(extractedAt time.Time) time.Time {
	if extractedAt.IsZero() {
		return s.now().UTC()
	}
	return extractedAt
}
