package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/scheduler"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFinanceSnapshots = "finance-snapshots"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	FinanceSnapshotSyncService *scheduler.FinanceSnapshotSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok || claims.EmployeeRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeFinanceSnapshots, CronJobTypeAll:
			if services.FinanceSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento financeiro não disponível", nil)
				return
			}
			services.FinanceSnapshotSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: finance-snapshots, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok || claims.EmployeeRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"finance-snapshots": services.FinanceSnapshotSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	})
}
