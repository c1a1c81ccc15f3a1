package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// GetFollowsAndUnfollows busca follows_and_unfollows por follow_type (FOLLOWER, NON_FOLLOWER, UNKNOWN) na janela informada
func (c *MetaClient) GetFollowsAndUnfollows(ctx context.Context, pageToken string, window domain.Window) ([]metadomain.BreakdownValue, error) {
	params := url.Values{}
	params.Add("metric", domain.MetricFollows)
	params.Add("metric_type", domain.MetricTypeTotalValue)
	params.Add("period", domain.PeriodDay)
	params.Add("breakdown", domain.BreakdownFollowType)
	params.Add("since", strconv.FormatInt(window.Since, 10))
	params.Add("until", strconv.FormatInt(window.Until, 10))

	var response metadomain.InsightsResponse
	if err := c.get(ctx, c.insightsPath(), pageToken, params, &response); err != nil {
		return nil, err
	}

	return FlattenBreakdowns(response), nil
}
