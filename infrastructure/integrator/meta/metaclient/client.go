package metaclient

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

// Client reúne as consultas feitas à Graph API (Instagram) e à Marketing API (Ads).
// Cada método faz um único GET síncrono, sem retry.
type Client interface {
	GetPages(ctx context.Context) ([]metadomain.Page, error)
	GetDemographics(ctx context.Context, pageToken, metric, timeframe, breakdown string) ([]metadomain.BreakdownValue, error)
	GetDayTotalsByMediaProduct(ctx context.Context, pageToken, metric string, window *domain.Window) ([]metadomain.BreakdownValue, error)
	GetTimeSeries(ctx context.Context, pageToken string, metrics []string, window domain.Window) ([]metadomain.TimeSeriesPoint, error)
	GetFollowsAndUnfollows(ctx context.Context, pageToken string, window domain.Window) ([]metadomain.BreakdownValue, error)
	GetFollowersCount(ctx context.Context) (int64, error)
	GetAdAccountInfo(ctx context.Context, adAccountID string) (*metadomain.AdAccountInfo, error)
	GetAdInsightsDaily(ctx context.Context, adAccountID string, filters AdInsightsFilters) ([]metadomain.AdInsightDaily, error)
}

type MetaClient struct {
	Cfg  *config.Config
	http *resty.Client
}

func NewClient(cfg *config.Config) Client {
	httpClient := resty.New().
		SetBaseURL(cfg.Meta.URL).
		SetTimeout(cfg.Meta.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &MetaClient{
		Cfg:  cfg,
		http: httpClient,
	}
}

// get executa um GET em path e decodifica o corpo em out.
// O token vai no header Authorization, nunca na URL: erros de transporte citam a URL inteira.
// Qualquer status fora de 2xx vira *metadomain.APIError.
func (c *MetaClient) get(ctx context.Context, path, token string, params url.Values, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParamsFromValues(params).
		Get(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao fazer a requisição")
		return errors.Wrapf(err, "erro ao consultar %s", path)
	}

	body, err := HandleResponse(path, resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao decodificar JSON")
		return errors.Wrapf(err, "erro ao decodificar resposta de %s", path)
	}

	return nil
}
