package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-insights-etl/internal/pipeline"
	"github.com/vfg2006/instagram-insights-etl/internal/scheduler"
	"github.com/vfg2006/instagram-insights-etl/pkg/apiErrors"
	"github.com/vfg2006/instagram-insights-etl/pkg/log"
	"github.com/vfg2006/instagram-insights-etl/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks

// PipelineService é a parte do agendador exposta pela API
type PipelineService interface {
	TriggerManualSync(ctx context.Context) error
	RunNow(ctx context.Context) (*pipeline.RunReport, error)
	GetStatus() map[string]any
}

// RunPipeline dispara uma execução manual. Com ?wait=true responde só ao final, com o relatório.
func RunPipeline(service PipelineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("operator", claims.Operator)
		}
		logger.Info("INIT - RunPipeline")

		if r.URL.Query().Get("wait") == "true" {
			// a execução segue até o fim mesmo se o cliente desconectar
			report, err := service.RunNow(context.WithoutCancel(r.Context()))
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrPipelineRunning, err.Error(), nil)
				return
			}
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrPipelineFailed, err.Error(), report)
				return
			}

			writeJSON(w, http.StatusOK, report)
			return
		}

		if err := service.TriggerManualSync(r.Context()); err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrPipelineRunning, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Execução do pipeline iniciada",
		})
	}
}

// GetPipelineStatus retorna o status do agendador e o relatório da última execução
func GetPipelineStatus(service PipelineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
