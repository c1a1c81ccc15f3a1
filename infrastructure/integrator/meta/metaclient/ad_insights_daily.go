package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

var DefaultAdInsightsFields = []string{"date_start", "date_stop", "spend", "impressions", "clicks"}

// AdInsightsFilters define o intervalo fechado [Since, Until] em datas do fuso da conta de anúncios
type AdInsightsFilters struct {
	Since  civil.Date
	Until  civil.Date
	Level  string
	Fields []string
}

// GetAdInsightsDaily busca insights diários (time_increment=1) da conta de anúncios.
// Dias sem entrega não aparecem; a lista pode vir vazia.
func (c *MetaClient) GetAdInsightsDaily(ctx context.Context, adAccountID string, filters AdInsightsFilters) ([]metadomain.AdInsightDaily, error) {
	if adAccountID == "" {
		return nil, ErrMissingAdAccountID
	}

	level := filters.Level
	if level == "" {
		level = domain.AdsLevelAccount
	}

	fields := filters.Fields
	if len(fields) == 0 {
		fields = DefaultAdInsightsFields
	}

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.Since.String(), filters.Until.String())

	params := url.Values{}
	params.Add("fields", strings.Join(fields, ","))
	params.Add("level", level)
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)

	var response metadomain.AdInsightsResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/insights", adAccountID), c.Cfg.Meta.AccessToken, params, &response); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": adAccountID,
		"since":         filters.Since.String(),
		"until":         filters.Until.String(),
		"rows":          len(response.Data),
	}).Debug("insights: insights diários de anúncios obtidos")

	if response.Data == nil {
		return []metadomain.AdInsightDaily{}, nil
	}

	return response.Data, nil
}
