package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-insights-etl/internal/config"
	"github.com/vfg2006/instagram-insights-etl/internal/pipeline"
)

// ErrSyncRunning indica que já existe uma execução do pipeline em andamento
var ErrSyncRunning = errors.New("execução do pipeline já em andamento")

//go:generate mockgen -source=pipeline_sync.go -destination=mocks/mock_pipeline_sync.go -package=mocks

type PipelineRunner interface {
	Run(ctx context.Context) (*pipeline.RunReport, error)
}

// PipelineSyncConfig representa a configuração do agendador do pipeline
type PipelineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Location     *time.Location
}

// PipelineSyncService agenda as execuções diárias do pipeline e impede execuções sobrepostas
type PipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              PipelineSyncConfig
	runner              PipelineRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *pipeline.RunReport
}

func NewPipelineSyncService(runner PipelineRunner, appConfig *config.Config) *PipelineSyncService {
	// O cron segue o fuso da conta do Instagram; Validate já garantiu que ele existe
	location, err := time.LoadLocation(appConfig.Pipeline.AnalyticsTimezone)
	if err != nil {
		location = time.Local
	}

	syncConfig := PipelineSyncConfig{
		CronSchedule: appConfig.PipelineSync.CronSchedule,
		SyncEnabled:  appConfig.PipelineSync.Enabled,
		Location:     location,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"location":      location.String(),
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler: gocron.NewScheduler(location),
		config:    syncConfig,
		runner:    runner,
	}
}

// Start inicia o agendador
func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Execução agendada do pipeline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.runPipeline(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Execução agendada do pipeline falhou")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar execução do pipeline")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// runPipeline executa o pipeline uma vez, recusando a execução se outra estiver em andamento
func (s *PipelineSyncService) runPipeline(ctx context.Context) (*pipeline.RunReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	report, err := s.runner.Run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if report != nil {
		s.lastReport = report
	}
	s.syncMutex.Unlock()

	return report, err
}

// TriggerManualSync inicia manualmente uma execução em segundo plano.
// Retorna ErrSyncRunning quando já existe uma execução em andamento.
func (s *PipelineSyncService) TriggerManualSync(ctx context.Context) error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Execução do pipeline já em andamento, ignorando solicitação manual")
		return ErrSyncRunning
	}

	logrus.Info("Iniciando execução manual do pipeline")
	go func() {
		if _, err := s.runPipeline(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Execução manual do pipeline falhou")
		}
	}()

	return nil
}

// RunNow executa o pipeline de forma síncrona, com a mesma proteção contra sobreposição
func (s *PipelineSyncService) RunNow(ctx context.Context) (*pipeline.RunReport, error) {
	return s.runPipeline(ctx)
}

// IsRunning informa se há uma execução em andamento
func (s *PipelineSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *PipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report":            s.lastReport,
	}
}
