package meta

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
)

// ErrPageNotFound indica que nenhuma página do usuário está vinculada à conta do Instagram configurada
var ErrPageNotFound = errors.New("não encontrei Page Access Token para esse IG_USER_ID")

// TokenResolver troca o token de longa duração pelo token da página vinculada à conta do Instagram
type TokenResolver struct {
	cfg    *config.Config
	Client metaclient.Client
}

func NewTokenResolver(cfg *config.Config, client metaclient.Client) *TokenResolver {
	return &TokenResolver{
		cfg:    cfg,
		Client: client,
	}
}

// ResolvePageToken lista as páginas do usuário e devolve o token da página cuja
// instagram_business_account corresponde a IG_USER_ID. Qualquer falha é fatal para a execução.
func (r *TokenResolver) ResolvePageToken(ctx context.Context) (string, error) {
	pages, err := r.Client.GetPages(ctx)
	if err != nil {
		return "", errors.Wrap(err, "erro ao listar páginas do usuário")
	}

	token, err := FindPageToken(pages, r.cfg.Meta.IGUserID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ig_user_id": r.cfg.Meta.IGUserID,
			"pages":      len(pages),
		}).Error("Nenhuma página vinculada à conta do Instagram")
		return "", err
	}

	logrus.WithField("ig_user_id", r.cfg.Meta.IGUserID).Info("Token da página obtido com sucesso")

	return token, nil
}

// FindPageToken procura a página vinculada a igUserID
func FindPageToken(pages []metadomain.Page, igUserID string) (string, error) {
	for _, page := range pages {
		ig := page.InstagramBusinessAccount
		if ig != nil && ig.ID == igUserID && page.AccessToken != "" {
			return page.AccessToken, nil
		}
	}
	return "", ErrPageNotFound
}
