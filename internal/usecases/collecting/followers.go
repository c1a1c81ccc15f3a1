package collecting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// CollectFollowersSnapshotDaily grava o followers_count atual com a data de hoje no fuso da conta.
// Sempre devolve exatamente uma linha.
func (s *Service) CollectFollowersSnapshotDaily(ctx context.Context, extractedAt time.Time) (domain.Table[domain.FollowersSnapshotRow], error) {
	extractedAt = s.extractedAtOrNow(extractedAt)
	snapshotDate := domain.Today(s.now(), s.analyticsTZ)

	count, err := s.client.GetFollowersCount(ctx)
	if err != nil {
		return domain.Table[domain.FollowersSnapshotRow]{}, errors.Wrap(err, "erro ao coletar followers_count")
	}

	logrus.WithFields(logrus.Fields{
		"metric_date":     snapshotDate.String(),
		"followers_count": count,
	}).Info("Snapshot de seguidores coletado")

	return domain.NewTable([]domain.FollowersSnapshotRow{
		{
			MetricDate:     snapshotDate,
			AccountID:      s.cfg.Meta.IGUserID,
			FollowersCount: count,
			ExtractedAt:    extractedAt,
		},
	}), nil
}
