package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
)

// GetPages lista as páginas do usuário dono do token de longa duração
func (c *MetaClient) GetPages(ctx context.Context) ([]metadomain.Page, error) {
	params := url.Values{}
	params.Add("fields", "id,name,access_token,instagram_business_account")

	var response metadomain.PagesResponse
	if err := c.get(ctx, "/me/accounts", c.Cfg.Meta.AccessToken, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
