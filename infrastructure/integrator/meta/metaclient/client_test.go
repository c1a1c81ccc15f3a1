package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

const (
	testIGUserID    = "17841400000000000"
	testUserToken   = "long-lived-token"
	testPageToken   = "page-token"
	testAdAccountID = "act_180987220455255"
)

type capturedRequest struct {
	path          string
	query         url.Values
	authorization string
}

// newTestClient sobe um servidor que responde status/body e registra a última requisição
func newTestClient(t *testing.T, status int, body string) (*MetaClient, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.query = r.URL.Query()
		captured.authorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Meta: config.Meta{
			URL:            srv.URL + "/v24.0",
			AccessToken:    testUserToken,
			IGUserID:       testIGUserID,
			AdAccountID:    testAdAccountID,
			RequestTimeout: 5 * time.Second,
		},
	}

	return NewClient(cfg).(*MetaClient), captured
}

func TestMetaClient_GetPages(t *testing.T) {
	client, req := newTestClient(t, http.StatusOK, `{"data":[{"id":"1","name":"Cannele","access_token":"page-token","instagram_business_account":{"id":"17841400000000000"}}]}`)

	pages, err := client.GetPages(context.Background())
	require.NoError(t, err)

	require.Len(t, pages, 1)
	assert.Equal(t, "page-token", pages[0].AccessToken)
	require.NotNil(t, pages[0].InstagramBusinessAccount)
	assert.Equal(t, testIGUserID, pages[0].InstagramBusinessAccount.ID)

	assert.Equal(t, "/v24.0/me/accounts", req.path)
	assert.Equal(t, "id,name,access_token,instagram_business_account", req.query.Get("fields"))
	assert.Equal(t, "Bearer "+testUserToken, req.authorization)
	assert.Empty(t, req.query.Get("access_token"))
}

func TestMetaClient_GetDemographics(t *testing.T) {
	client, req := newTestClient(t, http.StatusOK, demographicsFixture)

	rows, err := client.GetDemographics(context.Background(), testPageToken, "follower_demographics", "this_week", "city")
	require.NoError(t, err)

	assert.Len(t, rows, 3)
	assert.Equal(t, "/v24.0/"+testIGUserID+"/insights", req.path)
	assert.Equal(t, "follower_demographics", req.query.Get("metric"))
	assert.Equal(t, "total_value", req.query.Get("metric_type"))
	assert.Equal(t, "lifetime", req.query.Get("period"))
	assert.Equal(t, "this_week", req.query.Get("timeframe"))
	assert.Equal(t, "city", req.query.Get("breakdown"))
	assert.Equal(t, "Bearer "+testPageToken, req.authorization)
	assert.Empty(t, req.query.Get("access_token"))
}

func TestMetaClient_GetDayTotalsByMediaProduct(t *testing.T) {
	t.Run("Sem janela usa as últimas 24h da API", func(t *testing.T) {
		client, req := newTestClient(t, http.StatusOK, mediaProductFixture)

		rows, err := client.GetDayTotalsByMediaProduct(context.Background(), testPageToken, "reach", nil)
		require.NoError(t, err)

		assert.Len(t, rows, 3)
		assert.Equal(t, "day", req.query.Get("period"))
		assert.Equal(t, "media_product_type", req.query.Get("breakdown"))
		assert.False(t, req.query.Has("since"))
		assert.False(t, req.query.Has("until"))
	})

	t.Run("Com janela explícita", func(t *testing.T) {
		client, req := newTestClient(t, http.StatusOK, mediaProductFixture)

		_, err := client.GetDayTotalsByMediaProduct(context.Background(), testPageToken, "likes", &domain.Window{Since: 1705287600, Until: 1705374000})
		require.NoError(t, err)

		assert.Equal(t, "likes", req.query.Get("metric"))
		assert.Equal(t, "1705287600", req.query.Get("since"))
		assert.Equal(t, "1705374000", req.query.Get("until"))
	})
}

func TestMetaClient_GetTimeSeries(t *testing.T) {
	client, req := newTestClient(t, http.StatusOK, timeSeriesFixture)

	rows, err := client.GetTimeSeries(context.Background(), testPageToken, []string{"reach", "follower_count"}, domain.Window{Since: 100, Until: 200})
	require.NoError(t, err)

	assert.Len(t, rows, 2)
	assert.Equal(t, "reach,follower_count", req.query.Get("metric"))
	assert.Equal(t, "time_series", req.query.Get("metric_type"))
	assert.Equal(t, "100", req.query.Get("since"))
	assert.Equal(t, "200", req.query.Get("until"))
}

func TestMetaClient_GetFollowsAndUnfollows(t *testing.T) {
	body := `{"data":[{"name":"follows_and_unfollows","period":"day","total_value":{"breakdowns":[{"dimension_keys":["follow_type"],"results":[{"dimension_values":["FOLLOWER"],"value":10},{"dimension_values":["NON_FOLLOWER"],"value":2}]}]}}]}`
	client, req := newTestClient(t, http.StatusOK, body)

	rows, err := client.GetFollowsAndUnfollows(context.Background(), testPageToken, domain.Window{Since: 100, Until: 200})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "FOLLOWER", *rows[0].DimensionValue)
	assert.Equal(t, int64(2), rows[1].Value)
	assert.Equal(t, "follows_and_unfollows", req.query.Get("metric"))
	assert.Equal(t, "follow_type", req.query.Get("breakdown"))
	assert.Equal(t, "100", req.query.Get("since"))
}

func TestMetaClient_GetFollowersCount(t *testing.T) {
	t.Run("Campo presente", func(t *testing.T) {
		client, req := newTestClient(t, http.StatusOK, `{"followers_count": 5321, "id": "17841400000000000"}`)

		count, err := client.GetFollowersCount(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(5321), count)
		assert.Equal(t, "/v24.0/"+testIGUserID, req.path)
		assert.Equal(t, "Bearer "+testUserToken, req.authorization)
		assert.Empty(t, req.query.Get("access_token"))
	})

	t.Run("Campo zero não é ausência", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"followers_count": 0, "id": "17841400000000000"}`)

		count, err := client.GetFollowersCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Campo ausente é erro de formato", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"id": "17841400000000000"}`)

		_, err := client.GetFollowersCount(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingField))
	})
}

func TestMetaClient_GetAdAccountInfo(t *testing.T) {
	client, req := newTestClient(t, http.StatusOK, `{"id":"act_180987220455255","name":"Cannele","account_status":1,"currency":"BRL","timezone_name":"America/Los_Angeles"}`)

	info, err := client.GetAdAccountInfo(context.Background(), testAdAccountID)
	require.NoError(t, err)

	assert.Equal(t, "BRL", info.Currency)
	assert.Equal(t, "America/Los_Angeles", info.TimezoneName)
	assert.Equal(t, "/v24.0/"+testAdAccountID, req.path)

	_, err = client.GetAdAccountInfo(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingAdAccountID)
}

func TestMetaClient_GetAdInsightsDaily(t *testing.T) {
	since := civil.Date{Year: 2024, Month: time.January, Day: 15}

	t.Run("Dia com entrega", func(t *testing.T) {
		client, req := newTestClient(t, http.StatusOK, `{"data":[{"date_start":"2024-01-15","date_stop":"2024-01-15","spend":"42.17","impressions":"1200","clicks":"35"}],"paging":{"cursors":{"before":"a","after":"b"}}}`)

		rows, err := client.GetAdInsightsDaily(context.Background(), testAdAccountID, AdInsightsFilters{Since: since, Until: since})
		require.NoError(t, err)

		require.Len(t, rows, 1)
		assert.Equal(t, "42.17", rows[0].Spend)
		assert.Equal(t, "/v24.0/"+testAdAccountID+"/insights", req.path)
		assert.Equal(t, "1", req.query.Get("time_increment"))
		assert.Equal(t, "account", req.query.Get("level"))
		assert.Equal(t, "date_start,date_stop,spend,impressions,clicks", req.query.Get("fields"))
		assert.Equal(t, `{"since":"2024-01-15","until":"2024-01-15"}`, req.query.Get("time_range"))
	})

	t.Run("Dia sem entrega", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"data":[]}`)

		rows, err := client.GetAdInsightsDaily(context.Background(), testAdAccountID, AdInsightsFilters{Since: since, Until: since})
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("Resposta sem data", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{}`)

		rows, err := client.GetAdInsightsDaily(context.Background(), testAdAccountID, AdInsightsFilters{Since: since, Until: since})
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestMetaClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantExpired bool
		wantMessage string
	}{
		{
			name:        "Token expirado",
			status:      http.StatusBadRequest,
			body:        `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"A1"}}`,
			wantExpired: true,
			wantMessage: "Error validating access token",
		},
		{
			name:        "Permissão ausente",
			status:      http.StatusForbidden,
			body:        `{"error":{"message":"(#10) Application does not have permission","type":"OAuthException","code":10,"fbtrace_id":"B2"}}`,
			wantMessage: "does not have permission",
		},
		{
			name:        "Erro sem envelope JSON",
			status:      http.StatusBadGateway,
			body:        `upstream unavailable`,
			wantMessage: "upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, tt.body)

			_, err := client.GetDemographics(context.Background(), testPageToken, "follower_demographics", "this_week", "city")
			require.Error(t, err)

			var apiErr *metadomain.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantExpired, apiErr.IsTokenExpired())
			assert.Contains(t, apiErr.Error(), tt.wantMessage)
		})
	}
}

func TestMetaClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(&config.Config{Meta: config.Meta{URL: srv.URL, IGUserID: testIGUserID, RequestTimeout: 20 * time.Millisecond}})

	_, err := client.GetDemographics(context.Background(), testPageToken, "follower_demographics", "this_week", "city")
	assert.Error(t, err)
}

func TestMetaClient_TransportErrorDoesNotExposeToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Meta: config.Meta{
			URL:            srv.URL,
			AccessToken:    "SEGREDO-USUARIO",
			IGUserID:       "1",
			RequestTimeout: 20 * time.Millisecond,
		},
	}
	client := NewClient(cfg)

	_, err := client.GetPages(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SEGREDO-USUARIO")

	_, err = client.GetDemographics(context.Background(), "SEGREDO-PAGINA", "follower_demographics", "this_week", "city")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SEGREDO-PAGINA")
}
