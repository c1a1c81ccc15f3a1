package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/pkg/utils"
)

// ErrMissingField indica que um campo esperado não veio na resposta
var ErrMissingField = errors.New("campo esperado ausente na resposta")

// GetFollowersCount retorna o followers_count atual da conta do Instagram (snapshot).
// Usa o token de usuário de longa duração, não o token da página.
func (c *MetaClient) GetFollowersCount(ctx context.Context) (int64, error) {
	params := url.Values{}
	params.Add("fields", "followers_count")

	var response metadomain.FollowersCountResponse
	if err := c.get(ctx, fmt.Sprintf("/%s", c.Cfg.Meta.IGUserID), c.Cfg.Meta.AccessToken, params, &response); err != nil {
		return 0, err
	}

	if response.FollowersCount == nil {
		return 0, errors.Wrapf(ErrMissingField, "followers_count não veio na resposta: %s", utils.PrettyJson(response))
	}

	return *response.FollowersCount, nil
}
