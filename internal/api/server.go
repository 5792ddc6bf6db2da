package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecomistry/backoffice-api/internal/api/handler"
	"github.com/ecomistry/backoffice-api/internal/api/handler/router"
	"github.com/ecomistry/backoffice-api/internal/config"
	"github.com/ecomistry/backoffice-api/internal/scheduler"
	"github.com/ecomistry/backoffice-api/internal/usecases/authenticating"
	"github.com/ecomistry/backoffice-api/internal/usecases/brand"
	"github.com/ecomistry/backoffice-api/internal/usecases/campaign"
	"github.com/ecomistry/backoffice-api/internal/usecases/commission"
	"github.com/ecomistry/backoffice-api/internal/usecases/employee"
	"github.com/ecomistry/backoffice-api/internal/usecases/exporting"
	"github.com/ecomistry/backoffice-api/internal/usecases/finance"
	"github.com/ecomistry/backoffice-api/internal/usecases/tasking"
	"github.com/ecomistry/backoffice-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	brandService brand.BrandService,
	employeeService employee.EmployeeService,
	campaignService campaign.CampaignService,
	taskService tasking.TaskService,
	commissionService commission.CommissionService,
	financeService finance.FinanceService,
	exportService exporting.ExportService,
	financeSnapshotSyncService *scheduler.FinanceSnapshotSyncService,
) (*Server, error) {
	exportServices := handler.ExportServices{
		Brands:       brandService,
		Employees:    employeeService,
		MediaBuying:  campaignService,
		ContentTasks: taskService,
		Commissions:  commissionService,
		Finance:      financeService,
		Exporter:     exportService,
	}

	cronServices := handler.CronJobServices{
		FinanceSnapshotSyncService: financeSnapshotSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Brands(brandService)...),
		router.WithRoutes(handler.Employees(employeeService)...),
		router.WithRoutes(handler.MediaBuying(campaignService)...),
		router.WithRoutes(handler.ContentTasks(taskService)...),
		router.WithRoutes(handler.Commissions(commissionService)...),
		router.WithRoutes(handler.Finance(financeService)...),
		router.WithRoutes(handler.Exports(exportServices)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
