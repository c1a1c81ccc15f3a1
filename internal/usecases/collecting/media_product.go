package collecting

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// CollectDayMediaProduct coleta métricas diárias (period=day) agregadas por media_product_type.
// metric_date é o dia de window.Since no fuso da conta; sem window a API usa as últimas 24h e
// metric_date fica como ontem. Sem metrics usa DefaultMediaProductMetrics.
func (s *Service) CollectDayMediaProduct(ctx context.Context, pageToken string, window *domain.Window, metrics []string, extractedAt time.Time) (domain.Table[domain.MediaProductRow], error) {
	extractedAt = s.extractedAtOrNow(extractedAt)

	if len(metrics) == 0 {
		metrics = DefaultMediaProductMetrics
	}

	metricDate := domain.Yesterday(s.now(), s.analyticsTZ)
	since, until := bigquery.NullInt64{}, bigquery.NullInt64{}
	if window != nil {
		metricDate = domain.DateOfUnix(window.Since, s.analyticsTZ)
		since = bigquery.NullInt64{Int64: window.Since, Valid: true}
		until = bigquery.NullInt64{Int64: window.Until, Valid: true}
	}

	rows := make([]domain.MediaProductRow, 0)
	for _, metric := range metrics {
		data, err := s.client.GetDayTotalsByMediaProduct(ctx, pageToken, metric, window)
		if err != nil {
			return domain.Table[domain.MediaProductRow]{}, errors.Wrapf(err, "erro ao coletar media product %s", metric)
		}

		for _, r := range data {
			rows = append(rows, domain.MediaProductRow{
				MetricDate:     metricDate,
				Metric:         metric,
				Period:         domain.PeriodDay,
				MetricType:     domain.MetricTypeTotalValue,
				Breakdown:      domain.BreakdownMediaProduct,
				DimensionValue: nullString(r.DimensionValue),
				Value:          r.Value,
				Since:          since,
				Until:          until,
				ExtractedAt:    extractedAt,
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"metric_date": metricDate.String(),
		"metrics":     len(metrics),
		"rows":        len(rows),
	}).Info("Media product coletado")

	return domain.NewTable(rows), nil
}
