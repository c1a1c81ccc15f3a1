package collecting

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// CollectDemographics busca cada combinação (métrica, timeframe, dimensão) e concatena as linhas.
// Breakdowns possíveis: city, country, age, gender.
// Timeframes possíveis: last_14_days, last_30_days, last_90_days, prev_month, this_month, this_week.
func (s *Service) CollectDemographics(ctx context.Context, pageToken string, metrics, timeframes, dimensions []string, extractedAt time.Time) (domain.Table[domain.DemographicRow], error) {
	extractedAt = s.extractedAtOrNow(extractedAt)
	rows := make([]domain.DemographicRow, 0)

	for _, metric := range metrics {
		for _, timeframe := range timeframes {
			for _, dimension := range dimensions {
				data, err := s.client.GetDemographics(ctx, pageToken, metric, timeframe, dimension)
				if err != nil {
					return domain.Table[domain.DemographicRow]{}, errors.Wrapf(err, "erro ao coletar demografia %s/%s/%s", metric, timeframe, dimension)
				}

				for _, r := range data {
					rows = append(rows, domain.DemographicRow{
						Metric:         metric,
						Timeframe:      timeframe,
						Dimension:      dimension,
						DimensionValue: nullString(r.DimensionValue),
						Value:          r.Value,
						ExtractedAt:    extractedAt,
					})
				}
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"combinations": len(metrics) * len(timeframes) * len(dimensions),
		"rows":         len(rows),
	}).Info("Demografia coletada")

	return domain.NewTable(rows), nil
}

func nullString(v *string) bigquery.NullString {
	if v == nil {
		return bigquery.NullString{}
	}
	return bigquery.NullString{StringVal: *v, Valid: true}
}
