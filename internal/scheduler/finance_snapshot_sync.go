package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecomistry/backoffice-api/internal/config"
	"github.com/ecomistry/backoffice-api/internal/usecases/finance"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// FinanceSnapshotSyncConfig representa a configuração do agendador de
// fechamento financeiro mensal
type FinanceSnapshotSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookback int
}

// FinanceSnapshotSyncService gerencia o agendamento e execução do fechamento
// financeiro mensal por marca
type FinanceSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              FinanceSnapshotSyncConfig
	financeService      finance.FinanceService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewFinanceSnapshotSyncService cria uma nova instância do serviço de
// fechamento financeiro mensal
func NewFinanceSnapshotSyncService(
	financeService finance.FinanceService,
	appConfig *config.Config,
) *FinanceSnapshotSyncService {
	syncConfig := FinanceSnapshotSyncConfig{
		CronSchedule:  appConfig.FinanceSnapshotSync.CronSchedule,
		SyncEnabled:   appConfig.FinanceSnapshotSync.Enabled,
		MonthLookback: appConfig.FinanceSnapshotSync.MonthLookback,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"month_lookback": syncConfig.MonthLookback,
	}).Info("Configuração do agendador de fechamento financeiro carregada")

	return &FinanceSnapshotSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		financeService: financeService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *FinanceSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento financeiro mensal desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento financeiro mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncFinanceSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento financeiro mensal: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento financeiro mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// syncFinanceSnapshots recalcula os fechamentos dos últimos meses
func (s *FinanceSnapshotSyncService) syncFinanceSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento financeiro já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando fechamento financeiro mensal por marca")

	totalSaved := 0
	for i := 1; i <= s.config.MonthLookback; i++ {
		month := time.Now().AddDate(0, -i, 0).Format("01-2006")

		saved, err := s.financeService.SyncMonth(month)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"month": month,
				"error": err,
			}).Error("Erro ao gravar fechamento financeiro do mês")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"month":     month,
			"snapshots": saved,
		}).Info("Fechamento financeiro do mês gravado")

		totalSaved += saved
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"snapshots": totalSaved,
	}).Info("Fechamento financeiro mensal concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um fechamento financeiro
func (s *FinanceSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento financeiro já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento financeiro manual")
	go s.syncFinanceSnapshots()
}

// GetStatus retorna o status atual do fechamento
func (s *FinanceSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookback,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
