package ranking

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

type RankingService interface {
	// GetSpendingMovement interpreta o período vindo da requisição
	GetSpendingMovement(ctx context.Context, rawPeriod string) (*domain.SpendingMovementReport, error)
	BuildReport(ctx context.Context, periodMonths int, limit int) (*domain.SpendingMovementReport, error)
}

type SpendingMovementService struct {
	spendingMovementRepository repository.SpendingMovementRepository
	defaultPeriodMonths        int
	maxPeriodMonths            int
	limit                      int
	now                        func() time.Time
}

func NewSpendingMovementService(spendingMovementRepository repository.SpendingMovementRepository, cfg *config.Config) RankingService {
	return &SpendingMovementService{
		spendingMovementRepository: spendingMovementRepository,
		defaultPeriodMonths:        cfg.Reports.DefaultPeriodMonths,
		maxPeriodMonths:            cfg.Reports.MaxPeriodMonths,
		limit:                      cfg.Reports.Limit,
		now:                        time.Now,
	}
}

func (s *SpendingMovementService) GetSpendingMovement(ctx context.Context, rawPeriod string) (*domain.SpendingMovementReport, error) {
	period := domain.ParseReportPeriod(rawPeriod, s.defaultPeriodMonths, s.maxPeriodMonths)
	return s.BuildReport(ctx, period, s.limit)
}

// BuildReport calcula uma única janela e a usa nas duas consultas
func (s *SpendingMovementService) BuildReport(ctx context.Context, periodMonths int, limit int) (*domain.SpendingMovementReport, error) {
	window := domain.NewComparisonWindow(s.now().UTC(), periodMonths)

	droppers, err := s.spendingMovementRepository.TopDroppers(ctx, window, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar maiores quedas de gasto")
		return nil, NewRankingError(ErrFetchDroppers, apiErrors.ErrDatabaseOperation, periodMonths, "Falha ao calcular as maiores quedas")
	}

	increases, err := s.spendingMovementRepository.TopIncreases(ctx, window, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar maiores altas de gasto")
		return nil, NewRankingError(ErrFetchIncreases, apiErrors.ErrDatabaseOperation, periodMonths, "Falha ao calcular as maiores altas")
	}

	if droppers == nil {
		droppers = make([]domain.SpendingMovement, 0)
	}
	if increases == nil {
		increases = make([]domain.SpendingMovement, 0)
	}

	return &domain.SpendingMovementReport{
		ComparisonWindow: window,
		TopDroppers:      droppers,
		TopIncreases:     increases,
	}, nil
}
