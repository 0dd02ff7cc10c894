package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeKPISnapshot = "kpi-snapshot"
	CronJobTypeAll         = "all"
)

// SyncJob é o recorte dos agendadores exposto para execução manual
type SyncJob interface {
	TriggerManualSync() <-chan struct{}
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	KPISnapshotSyncService SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := make(map[string]SyncJob)
	if s.KPISnapshotSyncService != nil {
		jobs[CronJobTypeKPISnapshot] = s.KPISnapshotSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.jobs()

		var selected []string
		switch cronType {
		case CronJobTypeAll:
			for name := range jobs {
				selected = append(selected, name)
			}
		case CronJobTypeKPISnapshot:
			if _, ok := jobs[cronType]; !ok {
				handleError(w, r, domain.NewError(nil, apiErrors.ErrInternalServer,
					"Serviço de sincronização de KPIs não disponível"))
				return
			}
			selected = []string{cronType}
		default:
			handleError(w, r, domain.NewError(nil, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: kpi-snapshot, all"))
			return
		}

		started := make([]string, 0, len(selected))
		for _, name := range selected {
			if jobs[name].TriggerManualSync() != nil {
				started = append(started, name)
			}
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		message := "Cron job iniciada com sucesso"
		if len(started) == 0 {
			message = "Cron job já está em execução"
		}

		writeSuccess(w, r, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeSuccess(w, r, map[string]any{"status": status})
	}
}
