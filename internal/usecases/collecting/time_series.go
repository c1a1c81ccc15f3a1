package collecting

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// endTimeLayout é o formato de end_time devolvido pela Graph API
const endTimeLayout = "2006-01-02T15:04:05-0700"

// CollectTimeSeriesLastNDays coleta a série diária dos últimos days dias completos,
// uma linha por (metric, end_time), ordenada por métrica e data.
func (s *Service) CollectTimeSeriesLastNDays(ctx context.Context, pageToken string, days int, metrics []string, extractedAt time.Time) (domain.Table[domain.TimeSeriesRow], error) {
	extractedAt = s.extractedAtOrNow(extractedAt)

	if len(metrics) == 0 {
		metrics = DefaultTimeSeriesMetrics
	}

	window := domain.LastNDays(s.now(), days, s.analyticsTZ)

	data, err := s.client.GetTimeSeries(ctx, pageToken, metrics, window)
	if err != nil {
		return domain.Table[domain.TimeSeriesRow]{}, errors.Wrap(err, "erro ao coletar séries temporais")
	}

	rows := make([]domain.TimeSeriesRow, 0, len(data))
	for _, point := range data {
		metricDate, err := parseEndTimeDate(point.EndTime)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"metric":   point.Metric,
				"end_time": point.EndTime,
			}).Warn("end_time inválido, ponto ignorado")
			continue
		}

		rows = append(rows, domain.TimeSeriesRow{
			Metric:      point.Metric,
			MetricDate:  metricDate,
			EndTime:     point.EndTime,
			Value:       point.Value,
			Since:       window.Since,
			Until:       window.Until,
			ExtractedAt: extractedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Metric != rows[j].Metric {
			return rows[i].Metric < rows[j].Metric
		}
		return rows[i].MetricDate.Before(rows[j].MetricDate)
	})

	return domain.NewTable(rows), nil
}

// parseEndTimeDate usa a data UTC de end_time
func parseEndTimeDate(endTime string) (civil.Date, error) {
	t, err := time.Parse(endTimeLayout, endTime)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, endTime); err != nil {
			return civil.Date{}, errors.Wrapf(err, "end_time inválido: %q", endTime)
		}
	}
	return civil.DateOf(t.UTC()), nil
}
