package collecting

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// CollectFollowsUnfollowsYesterday coleta follows_and_unfollows por follow_type apenas para ontem.
// Se a API não devolver eventos, gera FOLLOWER=0 e NON_FOLLOWER=0 para a série não ter buracos.
func (s *Service) CollectFollowsUnfollowsYesterday(ctx context.Context, pageToken string, extractedAt time.Time) (domain.Table[domain.FollowsRow], error) {
	extractedAt = s.extractedAtOrNow(extractedAt)

	window := domain.NewDayWindow(domain.Yesterday(s.now(), s.analyticsTZ), s.analyticsTZ)

	data, err := s.client.GetFollowsAndUnfollows(ctx, pageToken, window.Window)
	if err != nil {
		return domain.Table[domain.FollowsRow]{}, errors.Wrap(err, "erro ao coletar follows e unfollows")
	}

	newRow := func(followType bigquery.NullString, value int64) domain.FollowsRow {
		return domain.FollowsRow{
			MetricDate:  window.Date,
			Metric:      domain.MetricFollows,
			FollowType:  followType,
			Value:       value,
			Since:       window.Since,
			Until:       window.Until,
			ExtractedAt: extractedAt,
		}
	}

	rows := make([]domain.FollowsRow, 0, len(data))
	for _, r := range data {
		rows = append(rows, newRow(nullString(r.DimensionValue), r.Value))
	}

	if len(rows) == 0 {
		logrus.WithField("metric_date", window.Date.String()).Info("Follows/unfollows sem eventos para ontem, preenchendo com zero")
		rows = append(rows,
			newRow(bigquery.NullString{StringVal: domain.FollowTypeFollower, Valid: true}, 0),
			newRow(bigquery.NullString{StringVal: domain.FollowTypeNonFollower, Valid: true}, 0),
		)
	}

	return domain.NewTable(rows), nil
}
