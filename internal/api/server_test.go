package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/instagram-insights-etl/internal/api/handler/mocks"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
	"github.com/vfg2006/instagram-insights-etl/internal/usecases/authenticating"
	"go.uber.org/mock/gomock"
)

func TestNewHandler_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authenticating.NewService(config.Auth{Secret: "segredo"})
	operatorToken, err := auth.GenerateToken("op", domain.RoleOperator, time.Hour)
	require.NoError(t, err)
	viewerToken, err := auth.GenerateToken("leitor", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	service := mocks.NewMockPipelineService(ctrl)
	service.EXPECT().GetStatus().Return(map[string]any{"sync_running": false})
	service.EXPECT().TriggerManualSync(gomock.Any()).Return(nil)

	h := NewHandler(service, auth)

	do := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/healthcheck", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/v1/pipeline/status", "").Code)
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/v1/pipeline/status", viewerToken).Code)
	assert.Equal(t, http.StatusForbidden, do(http.MethodPost, "/v1/pipeline/run", viewerToken).Code)
	assert.Equal(t, http.StatusAccepted, do(http.MethodPost, "/v1/pipeline/run", operatorToken).Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodGet, "/v1/nao-existe", operatorToken).Code)
}
