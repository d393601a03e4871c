package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/api"
	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/scheduler"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	consumerDomains := cfg.ConsumerDomainSet()
	logrus.WithField("consumer_domains", consumerDomains.Len()).Info("Lista de domínios de consumo carregada")

	filterCompiler := repository.NewCompanyFilterCompiler(consumerDomains)

	companyRepo := repository.NewCompanyRepository(pgConn, filterCompiler)
	personRepo := repository.NewPersonRepository(pgConn)
	spendingMovementRepo := repository.NewSpendingMovementRepository(pgConn, filterCompiler)

	browsingService := browsing.NewService(companyRepo, personRepo, cfg)
	rankingService := ranking.NewSpendingMovementService(spendingMovementRepo, cfg)

	spendingDigestService := scheduler.NewSpendingDigestService(rankingService, cfg)
	if err := spendingDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo de gastos")
	}
	defer spendingDigestService.Stop()

	server, err := api.New(
		cfg,
		pgConn,
		browsingService,
		rankingService,
		handler.CronJobServices{
			SpendingDigestService: spendingDigestService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn abre o pool de conexões; falha na inicialização encerra o processo
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
