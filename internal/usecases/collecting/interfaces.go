package collecting

import (
	"context"
	"time"

	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_collector.go -package=mocks

// Collector define um método por pergunta de negócio. Cada um devolve uma tabela com schema fixo.
// Um extractedAt zero faz o coletor usar o horário atual em UTC (conveniência para uso isolado).
type Collector interface {
	CollectDemographics(ctx context.Context, pageToken string, metrics, timeframes, dimensions []string, extractedAt time.Time) (domain.Table[domain.DemographicRow], error)
	CollectDayMediaProduct(ctx context.Context, pageToken string, window *domain.Window, metrics []string, extractedAt time.Time) (domain.Table[domain.MediaProductRow], error)
	CollectFollowsUnfollowsYesterday(ctx context.Context, pageToken string, extractedAt time.Time) (domain.Table[domain.FollowsRow], error)
	CollectFollowersSnapshotDaily(ctx context.Context, extractedAt time.Time) (domain.Table[domain.FollowersSnapshotRow], error)
	CollectAdsSpendYesterday(ctx context.Context, extractedAt time.Time) (domain.Table[domain.AdsDailyRow], error)
	CollectTimeSeriesLastNDays(ctx context.Context, pageToken string, days int, metrics []string, extractedAt time.Time) (domain.Table[domain.TimeSeriesRow], error)
}
