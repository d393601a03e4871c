// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

type SpendingDigestConfig struct {
	CronSchedule string
	SyncEnabled  bool
	PeriodMonths int
	Limit        int
}

// SpendingDigestService calcula periodicamente o relatório de movimentação de gasto
// e registra as maiores quedas e altas no log
type SpendingDigestService struct {
	scheduler           *gocron.Scheduler
	rankingService      ranking.RankingService
	config              SpendingDigestConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           string
	lastDroppers        int
	lastIncreases       int
}

func NewSpendingDigestService(rankingService ranking.RankingService, cfg *config.Config) *SpendingDigestService {
	digestConfig := SpendingDigestConfig{
		CronSchedule: cfg.SpendingDigest.CronSchedule, // Default: segunda-feira às 7h
		SyncEnabled:  cfg.SpendingDigest.Enabled,      // Default: desabilitado
		PeriodMonths: cfg.Reports.DefaultPeriodMonths,
		Limit:        cfg.SpendingDigest.Limit,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"period_months": digestConfig.PeriodMonths,
	}).Info("Configuração do agendador do resumo de gastos carregada")

	return &SpendingDigestService{
		scheduler:      gocron.NewScheduler(time.UTC),
		rankingService: rankingService,
		config:         digestConfig,
	}
}

func (s *SpendingDigestService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do resumo de gastos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo de gastos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDigest(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao gerar o resumo de gastos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo de gastos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *SpendingDigestService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando cron do resumo de gastos")
		s.scheduler.Stop()
	}
}

// RunDigest executa uma rodada; chamadas concorrentes são ignoradas
func (s *SpendingDigestService) RunDigest(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Resumo de gastos já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	runID, err := utils.GenerateID()
	if err != nil {
		s.finish("", err, nil)
		return fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":        runID,
		"period_months": s.config.PeriodMonths,
	})
	logger.Info("Iniciando resumo de gastos")

	report, err := s.rankingService.BuildReport(ctx, s.config.PeriodMonths, s.config.Limit)
	if err != nil {
		s.finish(runID, err, nil)
		return err
	}

	logger.WithFields(logrus.Fields{
		"previous_start": utils.FormatDate(report.PreviousStart),
		"recent_start":   utils.FormatDate(report.RecentStart),
		"end":            utils.FormatDate(report.End),
	}).Info("Janela do resumo de gastos")

	logMovements(logger, "queda", report.TopDroppers)
	logMovements(logger, "alta", report.TopIncreases)

	s.finish(runID, nil, report)
	logger.Info("Resumo de gastos concluído")

	return nil
}

func logMovements(logger *logrus.Entry, kind string, movements []domain.SpendingMovement) {
	if len(movements) == 0 {
		logger.Infof("Nenhuma empresa com %s de gasto no período", kind)
		return
	}

	for i, movement := range movements {
		logger.WithFields(logrus.Fields{
			"position":          i + 1,
			"company":           movement.CompanyName,
			"domain":            movement.CompanyDomain,
			"previous_spending": movement.PreviousSpending.StringFixed(2),
			"recent_spending":   movement.RecentSpending.StringFixed(2),
			"change":            utils.FormatPercentage(movement.ChangePercentage),
		}).Infof("Maior %s de gasto", kind)
	}
}

func (s *SpendingDigestService) finish(runID string, err error, report *domain.SpendingMovementReport) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRunID = runID
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	if report != nil {
		s.lastDroppers = len(report.TopDroppers)
		s.lastIncreases = len(report.TopIncreases)
	}
}

// TriggerManualSync inicia uma rodada em background; retorna false se já houver uma em andamento
func (s *SpendingDigestService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Resumo de gastos já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando resumo de gastos manual")
	go func() {
		if err := s.RunDigest(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro ao gerar o resumo de gastos manual")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SpendingDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"period_months":          s.config.PeriodMonths,
		"limit":                  s.config.Limit,
		"running":                s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
		"last_droppers":          s.lastDroppers,
		"last_increases":         s.lastIncreases,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
