package metaclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// GetDayTotalsByMediaProduct busca o total diário de uma métrica por media_product_type (POST, REEL, STORY, AD...).
// Sem window a API devolve as últimas 24h.
func (c *MetaClient) GetDayTotalsByMediaProduct(ctx context.Context, pageToken, metric string, window *domain.Window) ([]metadomain.BreakdownValue, error) {
	params := url.Values{}
	params.Add("metric", metric)
	params.Add("metric_type", domain.MetricTypeTotalValue)
	params.Add("period", domain.PeriodDay)
	params.Add("breakdown", domain.BreakdownMediaProduct)

	if window != nil {
		params.Add("since", strconv.FormatInt(window.Since, 10))
		params.Add("until", strconv.FormatInt(window.Until, 10))
	}

	var response metadomain.InsightsResponse
	if err := c.get(ctx, c.insightsPath(), pageToken, params, &response); err != nil {
		return nil, err
	}

	rows := FlattenBreakdowns(response)

	logrus.WithFields(logrus.Fields{
		"metric": metric,
		"rows":   len(rows),
	}).Debug("insights: totais diários por media product obtidos")

	return rows, nil
}
