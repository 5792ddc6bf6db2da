package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/database/postgres"
	"github.com/ecomistry/backoffice-api/infrastructure/export"
	"github.com/ecomistry/backoffice-api/infrastructure/repository"
	"github.com/ecomistry/backoffice-api/internal/api"
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
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	brandRepo := repository.NewBrandRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	mediaBuyingRepo := repository.NewMediaBuyingRepository(pgConn)
	contentTaskRepo := repository.NewContentTaskRepository(pgConn)
	commissionRepo := repository.NewCommissionRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	snapshotRepo := repository.NewFinanceSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(employeeRepo, cfg)

	brandService := brand.NewService(brandRepo)
	employeeService := employee.NewService(employeeRepo, authenticator)
	campaignService := campaign.NewService(mediaBuyingRepo)
	taskService := tasking.NewService(contentTaskRepo)
	commissionService := commission.NewService(commissionRepo)
	financeService := finance.NewService(revenueRepo, expenseRepo, snapshotRepo)

	exportService := exporting.NewService(
		export.NewSpreadsheetWriter(),
		export.NewDocumentWriter(),
		export.NewCSVWriter(),
	)

	// Agendador de fechamento financeiro mensal
	financeSnapshotSyncService := scheduler.NewFinanceSnapshotSyncService(financeService, cfg)

	if err := financeSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento financeiro")
	} else {
		logrus.Info("Agendador de fechamento financeiro iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		brandService,
		employeeService,
		campaignService,
		taskService,
		commissionService,
		financeService,
		exportService,
		financeSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
