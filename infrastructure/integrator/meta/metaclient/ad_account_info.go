package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
)

// ErrMissingAdAccountID indica que a conta de anúncios não foi configurada
var ErrMissingAdAccountID = errors.New("faltou META_AD_ACCOUNT_ID (ex: act_180987220455255)")

// GetAdAccountInfo busca moeda e fuso da conta de anúncios
func (c *MetaClient) GetAdAccountInfo(ctx context.Context, adAccountID string) (*metadomain.AdAccountInfo, error) {
	if adAccountID == "" {
		return nil, ErrMissingAdAccountID
	}

	params := url.Values{}
	params.Add("fields", "id,name,account_status,currency,timezone_name")

	var response metadomain.AdAccountInfo
	if err := c.get(ctx, fmt.Sprintf("/%s", adAccountID), c.Cfg.Meta.AccessToken, params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
