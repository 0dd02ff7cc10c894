package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/tradelite-api/internal/config"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/log"
)

const kpiSnapshotJob = "kpi_snapshot_sync"

// KPIRefresher recalcula os indicadores do painel do mentor e grava o snapshot no cache
type KPIRefresher interface {
	RefreshDashboardKPIs(ctx context.Context) (*domain.DashboardKPIs, error)
}

// KPISnapshotSyncConfig representa a configuração do agendador de snapshots de KPIs
type KPISnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// KPISnapshotSyncService mantém o snapshot dos KPIs do painel do mentor aquecido no cache
type KPISnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              KPISnapshotSyncConfig
	refresher           KPIRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	done                chan struct{}
}

func NewKPISnapshotSyncService(refresher KPIRefresher, appConfig *config.Config) *KPISnapshotSyncService {
	syncConfig := KPISnapshotSyncConfig{
		CronSchedule: appConfig.KPISnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.KPISnapshotSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"job":           kpiSnapshotJob,
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de KPIs carregada")

	return &KPISnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		refresher: refresher,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *KPISnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.WithField("job", kpiSnapshotJob).Info("Sincronização de snapshots de KPIs desabilitada por configuração")
		return nil
	}

	log.L.WithFields(log.Fields{
		"job":  kpiSnapshotJob,
		"cron": s.config.CronSchedule,
	}).Info("Iniciando agendador de snapshots de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de KPIs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.WithField("job", kpiSnapshotJob).Info("Parando agendador de snapshots de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *KPISnapshotSyncService) syncSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.WithField("job", kpiSnapshotJob).Info("Sincronização de snapshots de KPIs já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	var syncErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		if syncErr != nil {
			s.lastSyncError = syncErr.Error()
		} else {
			s.lastSyncError = ""
			s.lastSyncCompletedAt = time.Now()
		}
		done := s.done
		s.done = nil
		s.syncMutex.Unlock()

		if done != nil {
			close(done)
		}
	}()

	kpis, err := s.refresher.RefreshDashboardKPIs(context.Background())
	if err != nil {
		syncErr = err
		log.L.WithError(err).WithField("job", kpiSnapshotJob).Error("Erro ao atualizar snapshot de KPIs")
		return
	}

	log.L.WithFields(log.Fields{
		"job":          kpiSnapshotJob,
		"total_stores": kpis.TotalStores,
		"duration":     time.Since(startTime).String(),
	}).Info("Snapshot de KPIs atualizado")
}

// TriggerManualSync dispara uma sincronização em segundo plano. O canal devolvido
// fecha quando ela termina; é nil se já havia uma em andamento.
func (s *KPISnapshotSyncService) TriggerManualSync() <-chan struct{} {
	s.syncMutex.Lock()
	if s.syncRunning || s.done != nil {
		s.syncMutex.Unlock()
		log.L.WithField("job", kpiSnapshotJob).Info("Sincronização de snapshots de KPIs já em andamento, ignorando solicitação manual")
		return nil
	}
	done := make(chan struct{})
	s.done = done
	s.syncMutex.Unlock()

	log.L.WithField("job", kpiSnapshotJob).Info("Iniciando sincronização manual de snapshots de KPIs")
	go s.syncSnapshot()

	return done
}

// GetStatus retorna o status atual da sincronização
func (s *KPISnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
