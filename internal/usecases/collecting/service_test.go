package collecting

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
	"go.uber.org/mock/gomock"
)

// 2025-03-10 15:00 UTC = 12:00 em São Paulo e 08:00 em Los Angeles (já em horário de verão)
var fixedNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

var extractedAt = time.Date(2025, 3, 10, 15, 0, 1, 0, time.UTC)

func newTestService(t *testing.T, client metaclient.Client) *Service {
	t.Helper()

	cfg := &config.Config{
		Meta: config.Meta{
			IGUserID:    "17841400000000000",
			AdAccountID: "act_123",
		},
		Pipeline: config.Pipeline{
			AnalyticsTimezone: "America/Sao_Paulo",
			AdsTimezone:       "America/Los_Angeles",
		},
	}

	svc, err := NewService(cfg, client)
	require.NoError(t, err)

	return svc.WithClock(func() time.Time { return fixedNow })
}

func str(s string) *string { return &s }

func nullStr(s string) bigquery.NullString {
	return bigquery.NullString{StringVal: s, Valid: true}
}

func TestNewService_InvalidTimezone(t *testing.T) {
	cfg := &config.Config{Pipeline: config.Pipeline{AnalyticsTimezone: "Mars/Olympus", AdsTimezone: "UTC"}}

	_, err := NewService(cfg, nil)
	assert.Error(t, err)
}

func TestCollectDemographics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	svc := newTestService(t, client)

	metrics := []string{"follower_demographics", "engaged_audience_demographics"}
	timeframes := []string{"this_week", "this_month"}
	dimensions := []string{"city", "age", "gender"}

	// 12 combinações, cada uma devolvendo 2 linhas
	client.EXPECT().
		GetDemographics(gomock.Any(), "page-token", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]metadomain.BreakdownValue{
			{DimensionValue: str("F"), Value: 10},
			{DimensionValue: str("M"), Value: 7},
		}, nil).
		Times(12)

	table, err := svc.CollectDemographics(context.Background(), "page-token", metrics, timeframes, dimensions, extractedAt)
	require.NoError(t, err)
	assert.Equal(t, 24, table.Len())

	first := table.Rows[0]
	assert.Equal(t, domain.DemographicRow{
		Metric:         "follower_demographics",
		Timeframe:      "this_week",
		Dimension:      "city",
		DimensionValue: nullStr("F"),
		Value:          10,
		ExtractedAt:    extractedAt,
	}, first)

	for _, row := range table.Rows {
		assert.Equal(t, extractedAt, row.ExtractedAt)
	}
}

func TestCollectDemographics_NullDimensionAndError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Dimensão ausente vira nulo", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().
			GetDemographics(gomock.Any(), "tk", "follower_demographics", "this_week", "age").
			Return([]metadomain.BreakdownValue{{Value: 3}}, nil)

		table, err := svc.CollectDemographics(context.Background(), "tk", []string{"follower_demographics"}, []string{"this_week"}, []string{"age"}, extractedAt)
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		assert.False(t, table.Rows[0].DimensionValue.Valid)
	})

	t.Run("Erro da API interrompe a coleta", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().
			GetDemographics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &metadomain.APIError{StatusCode: 400, Path: "/x/insights"})

		_, err := svc.CollectDemographics(context.Background(), "tk", []string{"a", "b"}, []string{"this_week"}, []string{"age"}, extractedAt)
		var apiErr *metadomain.APIError
		assert.True(t, errors.As(err, &apiErr))
	})

	t.Run("Sem combinações devolve tabela vazia", func(t *testing.T) {
		svc := newTestService(t, mocks.NewMockClient(ctrl))

		table, err := svc.CollectDemographics(context.Background(), "tk", nil, nil, nil, extractedAt)
		require.NoError(t, err)
		assert.True(t, table.Empty())
		assert.Contains(t, table.Columns(), "dimension_value")
	})
}

func TestCollectDayMediaProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Com janela explícita", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		loc, _ := time.LoadLocation("America/Sao_Paulo")
		window := domain.NewDayWindow(civil.Date{Year: 2025, Month: 3, Day: 9}, loc).Window

		client.EXPECT().
			GetDayTotalsByMediaProduct(gomock.Any(), "tk", "reach", &window).
			Return([]metadomain.BreakdownValue{
				{DimensionValue: str("REEL"), Value: 100},
				{DimensionValue: str("POST"), Value: 40},
			}, nil)

		table, err := svc.CollectDayMediaProduct(context.Background(), "tk", &window, []string{"reach"}, extractedAt)
		require.NoError(t, err)

		want := []domain.MediaProductRow{
			{
				MetricDate:     civil.Date{Year: 2025, Month: 3, Day: 9},
				Metric:         "reach",
				Period:         domain.PeriodDay,
				MetricType:     domain.MetricTypeTotalValue,
				Breakdown:      domain.BreakdownMediaProduct,
				DimensionValue: nullStr("REEL"),
				Value:          100,
				Since:          bigquery.NullInt64{Int64: window.Since, Valid: true},
				Until:          bigquery.NullInt64{Int64: window.Until, Valid: true},
				ExtractedAt:    extractedAt,
			},
			{
				MetricDate:     civil.Date{Year: 2025, Month: 3, Day: 9},
				Metric:         "reach",
				Period:         domain.PeriodDay,
				MetricType:     domain.MetricTypeTotalValue,
				Breakdown:      domain.BreakdownMediaProduct,
				DimensionValue: nullStr("POST"),
				Value:          40,
				Since:          bigquery.NullInt64{Int64: window.Since, Valid: true},
				Until:          bigquery.NullInt64{Int64: window.Until, Valid: true},
				ExtractedAt:    extractedAt,
			},
		}

		if diff := cmp.Diff(want, table.Rows); diff != "" {
			t.Errorf("linhas diferentes (-want +got):\n%s", diff)
		}
	})

	t.Run("Sem janela usa ontem e métricas padrão", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().
			GetDayTotalsByMediaProduct(gomock.Any(), "tk", gomock.Any(), (*domain.Window)(nil)).
			Return([]metadomain.BreakdownValue{{DimensionValue: str("REEL"), Value: 1}}, nil).
			Times(len(DefaultMediaProductMetrics))

		table, err := svc.CollectDayMediaProduct(context.Background(), "tk", nil, nil, extractedAt)
		require.NoError(t, err)
		assert.Equal(t, len(DefaultMediaProductMetrics), table.Len())

		for _, row := range table.Rows {
			assert.Equal(t, civil.Date{Year: 2025, Month: 3, Day: 9}, row.MetricDate)
			assert.False(t, row.Since.Valid)
			assert.False(t, row.Until.Valid)
		}
	})
}

func TestCollectFollowsUnfollowsYesterday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc, _ := time.LoadLocation("America/Sao_Paulo")
	yesterday := domain.NewDayWindow(civil.Date{Year: 2025, Month: 3, Day: 9}, loc)

	t.Run("Eventos devolvidos pela API", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().
			GetFollowsAndUnfollows(gomock.Any(), "tk", yesterday.Window).
			Return([]metadomain.BreakdownValue{
				{DimensionValue: str("FOLLOWER"), Value: 5},
				{DimensionValue: str("NON_FOLLOWER"), Value: 2},
			}, nil)

		table, err := svc.CollectFollowsUnfollowsYesterday(context.Background(), "tk", extractedAt)
		require.NoError(t, err)
		require.Equal(t, 2, table.Len())

		assert.Equal(t, domain.FollowsRow{
			MetricDate:  yesterday.Date,
			Metric:      domain.MetricFollows,
			FollowType:  nullStr("FOLLOWER"),
			Value:       5,
			Since:       yesterday.Since,
			Until:       yesterday.Until,
			ExtractedAt: extractedAt,
		}, table.Rows[0])
	})

	t.Run("Sem eventos preenche com zero", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().
			GetFollowsAndUnfollows(gomock.Any(), "tk", yesterday.Window).
			Return([]metadomain.BreakdownValue{}, nil)

		table, err := svc.CollectFollowsUnfollowsYesterday(context.Background(), "tk", extractedAt)
		require.NoError(t, err)
		require.Equal(t, 2, table.Len())

		assert.Equal(t, nullStr(domain.FollowTypeFollower), table.Rows[0].FollowType)
		assert.Equal(t, nullStr(domain.FollowTypeNonFollower), table.Rows[1].FollowType)
		for _, row := range table.Rows {
			assert.Zero(t, row.Value)
			assert.Equal(t, yesterday.Date, row.MetricDate)
		}
	})
}

func TestCollectFollowersSnapshotDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	svc := newTestService(t, client)

	client.EXPECT().GetFollowersCount(gomock.Any()).Return(int64(1523), nil)

	table, err := svc.CollectFollowersSnapshotDaily(context.Background(), extractedAt)
	require.NoError(t, err)

	assert.Equal(t, []domain.FollowersSnapshotRow{{
		MetricDate:     civil.Date{Year: 2025, Month: 3, Day: 10},
		AccountID:      "17841400000000000",
		FollowersCount: 1523,
		ExtractedAt:    extractedAt,
	}}, table.Rows)

	t.Run("Erro ao buscar followers_count", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().GetFollowersCount(gomock.Any()).Return(int64(0), metaclient.ErrMissingField)

		_, err := svc.CollectFollowersSnapshotDaily(context.Background(), extractedAt)
		assert.ErrorIs(t, err, metaclient.ErrMissingField)
	})
}

func TestCollectAdsSpendYesterday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Em Los Angeles "ontem" é 2025-03-09, dia da entrada no horário de verão
	yesterday := civil.Date{Year: 2025, Month: 3, Day: 9}
	info := &metadomain.AdAccountInfo{ID: "act_123", Currency: "BRL", TimezoneName: "America/Los_Angeles"}

	t.Run("Uma linha por dia com o gasto informado pela API", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().GetAdAccountInfo(gomock.Any(), "act_123").Return(info, nil)
		client.EXPECT().
			GetAdInsightsDaily(gomock.Any(), "act_123", metaclient.AdInsightsFilters{Since: yesterday, Until: yesterday, Level: domain.AdsLevelAccount}).
			Return([]metadomain.AdInsightDaily{{DateStart: "2025-03-09", DateStop: "2025-03-09", Spend: "12.346", Impressions: "1000", Clicks: "37"}}, nil)

		table, err := svc.CollectAdsSpendYesterday(context.Background(), extractedAt)
		require.NoError(t, err)

		assert.Equal(t, []domain.AdsDailyRow{{
			MetricDate:   yesterday,
			AdAccountID:  "act_123",
			Level:        domain.AdsLevelAccount,
			Currency:     "BRL",
			TimezoneName: "America/Los_Angeles",
			Spend:        12.346,
			Impressions:  1000,
			Clicks:       37,
			ExtractedAt:  extractedAt,
		}}, table.Rows)
	})

	t.Run("Dia sem entrega devolve tabela vazia com schema", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().GetAdAccountInfo(gomock.Any(), "act_123").Return(info, nil)
		client.EXPECT().GetAdInsightsDaily(gomock.Any(), "act_123", gomock.Any()).Return([]metadomain.AdInsightDaily{}, nil)

		table, err := svc.CollectAdsSpendYesterday(context.Background(), extractedAt)
		require.NoError(t, err)
		assert.True(t, table.Empty())
		assert.Equal(t, []string{
			"metric_date", "ad_account_id", "level", "currency", "timezone_name",
			"spend", "impressions", "clicks", "extracted_at",
		}, table.Columns())
	})

	t.Run("Sem conta de anúncios configurada", func(t *testing.T) {
		svc := newTestService(t, mocks.NewMockClient(ctrl))
		svc.cfg.Meta.AdAccountID = ""

		_, err := svc.CollectAdsSpendYesterday(context.Background(), extractedAt)
		assert.ErrorIs(t, err, metaclient.ErrMissingAdAccountID)
	})

	t.Run("Número inválido", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		svc := newTestService(t, client)

		client.EXPECT().GetAdAccountInfo(gomock.Any(), "act_123").Return(info, nil)
		client.EXPECT().GetAdInsightsDaily(gomock.Any(), "act_123", gomock.Any()).
			Return([]metadomain.AdInsightDaily{{DateStart: "2025-03-09", Spend: "abc"}}, nil)

		_, err := svc.CollectAdsSpendYesterday(context.Background(), extractedAt)
		assert.Error(t, err)
	})
}

func TestCollectTimeSeriesLastNDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	svc := newTestService(t, client)

	loc, _ := time.LoadLocation("America/Sao_Paulo")
	window := domain.LastNDays(fixedNow, 2, loc)

	client.EXPECT().
		GetTimeSeries(gomock.Any(), "tk", []string{"reach"}, window).
		Return([]metadomain.TimeSeriesPoint{
			{Metric: "reach", EndTime: "2025-03-10T07:00:00+0000", Value: 30},
			{Metric: "reach", EndTime: "2025-03-09T07:00:00+0000", Value: 20},
			{Metric: "reach", EndTime: "ontem", Value: 99},
		}, nil)

	table, err := svc.CollectTimeSeriesLastNDays(context.Background(), "tk", 2, nil, extractedAt)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, civil.Date{Year: 2025, Month: 3, Day: 9}, table.Rows[0].MetricDate)
	assert.Equal(t, int64(20), table.Rows[0].Value)
	assert.Equal(t, civil.Date{Year: 2025, Month: 3, Day: 10}, table.Rows[1].MetricDate)
	assert.Equal(t, window.Since, table.Rows[1].Since)
	assert.Equal(t, window.Until, table.Rows[1].Until)
}

func TestExtractedAtDefaultsToNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	svc := newTestService(t, client)

	client.EXPECT().GetFollowersCount(gomock.Any()).Return(int64(1), nil)

	table, err := svc.CollectFollowersSnapshotDaily(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, table.Rows[0].ExtractedAt)
}
