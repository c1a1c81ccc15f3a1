package metaclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// GetTimeSeries busca métricas como time_series diária no intervalo [since, until)
func (c *MetaClient) GetTimeSeries(ctx context.Context, pageToken string, metrics []string, window domain.Window) ([]metadomain.TimeSeriesPoint, error) {
	params := url.Values{}
	params.Add("metric", strings.Join(metrics, ","))
	params.Add("metric_type", domain.MetricTypeTimeSeries)
	params.Add("period", domain.PeriodDay)
	params.Add("since", strconv.FormatInt(window.Since, 10))
	params.Add("until", strconv.FormatInt(window.Until, 10))

	var response metadomain.InsightsResponse
	if err := c.get(ctx, c.insightsPath(), pageToken, params, &response); err != nil {
		return nil, err
	}

	return FlattenTimeSeries(response), nil
}
