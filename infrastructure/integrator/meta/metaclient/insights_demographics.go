package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// GetDemographics busca uma métrica demográfica (lifetime) para um timeframe e um breakdown
func (c *MetaClient) GetDemographics(ctx context.Context, pageToken, metric, timeframe, breakdown string) ([]metadomain.BreakdownValue, error) {
	params := url.Values{}
	params.Add("metric", metric)
	params.Add("metric_type", domain.MetricTypeTotalValue)
	params.Add("period", domain.PeriodLifetime)
	params.Add("timeframe", timeframe)
	params.Add("breakdown", breakdown)

	var response metadomain.InsightsResponse
	if err := c.get(ctx, c.insightsPath(), pageToken, params, &response); err != nil {
		return nil, err
	}

	rows := FlattenBreakdowns(response)

	logrus.WithFields(logrus.Fields{
		"metric":    metric,
		"timeframe": timeframe,
		"breakdown": breakdown,
		"rows":      len(rows),
	}).Debug("insights: demografia obtida")

	return rows, nil
}

func (c *MetaClient) insightsPath() string {
	return fmt.Sprintf("/%s/insights", c.Cfg.Meta.IGUserID)
}
