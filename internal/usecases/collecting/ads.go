package collecting

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
	"github.com/vfg2006/instagram-insights-etl/pkg/utils"
)

// CollectAdsSpendYesterday coleta gasto, impressões e cliques de ontem no fuso da conta de anúncios.
// Dia sem entrega devolve tabela vazia (com schema completo), não erro.
func (s *Service) CollectAdsSpendYesterday(ctx context.Context, extractedAt time.Time) (domain.Table[domain.AdsDailyRow], error) {
	extractedAt = s.extractedAtOrNow(extractedAt)

	adAccountID := s.cfg.Meta.AdAccountID
	if adAccountID == "" {
		return domain.Table[domain.AdsDailyRow]{}, metaclient.ErrMissingAdAccountID
	}

	yesterday := domain.Yesterday(s.now(), s.adsTZ)

	info, err := s.client.GetAdAccountInfo(ctx, adAccountID)
	if err != nil {
		return domain.Table[domain.AdsDailyRow]{}, errors.Wrap(err, "erro ao buscar dados da conta de anúncios")
	}

	insights, err := s.client.GetAdInsightsDaily(ctx, adAccountID, metaclient.AdInsightsFilters{
		Since: yesterday,
		Until: yesterday,
		Level: domain.AdsLevelAccount,
	})
	if err != nil {
		return domain.Table[domain.AdsDailyRow]{}, errors.Wrap(err, "erro ao buscar insights diários de anúncios")
	}

	rows := make([]domain.AdsDailyRow, 0, len(insights))
	for _, insight := range insights {
		metricDate, err := civil.ParseDate(insight.DateStart)
		if err != nil {
			return domain.Table[domain.AdsDailyRow]{}, errors.Wrapf(err, "date_start inválido: %q", insight.DateStart)
		}

		spend, err := utils.ParseFloat(insight.Spend)
		if err != nil {
			return domain.Table[domain.AdsDailyRow]{}, errors.Wrapf(err, "spend inválido: %q", insight.Spend)
		}

		impressions, err := utils.ParseInt(insight.Impressions)
		if err != nil {
			return domain.Table[domain.AdsDailyRow]{}, errors.Wrapf(err, "impressions inválido: %q", insight.Impressions)
		}

		clicks, err := utils.ParseInt(insight.Clicks)
		if err != nil {
			return domain.Table[domain.AdsDailyRow]{}, errors.Wrapf(err, "clicks inválido: %q", insight.Clicks)
		}

		rows = append(rows, domain.AdsDailyRow{
			MetricDate:   metricDate,
			AdAccountID:  adAccountID,
			Level:        domain.AdsLevelAccount,
			Currency:     info.Currency,
			TimezoneName: info.TimezoneName,
			Spend:        spend,
			Impressions:  impressions,
			Clicks:       clicks,
			ExtractedAt:  extractedAt,
		})
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": adAccountID,
		"metric_date":   yesterday.String(),
		"rows":          len(rows),
	}).Info("Gasto de anúncios coletado")

	return domain.NewTable(rows), nil
}
