package repository

//go:generate mockgen -source=spending_movement.go -destination=mocks/spending_movement.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

type SpendingMovementRepository interface {
	TopDroppers(ctx context.Context, window domain.ComparisonWindow, limit int) ([]domain.SpendingMovement, error)
	TopIncreases(ctx context.Context, window domain.ComparisonWindow, limit int) ([]domain.SpendingMovement, error)
}

type spendingMovementRepository struct {
	conn   *postgres.Connection
	filter *CompanyFilterCompiler
}

func NewSpendingMovementRepository(conn *postgres.Connection, filter *CompanyFilterCompiler) SpendingMovementRepository {
	return &spendingMovementRepository{
		conn:   conn,
		filter: filter,
	}
}

// periodTotals soma, por empresa, os pedidos das duas janelas. Só pedidos em [PreviousStart, End) participam
// e os domínios de consumo são sempre excluídos.
func (r *spendingMovementRepository) periodTotals(window domain.ComparisonWindow) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"c.id AS company_id",
			"c.name AS company_name",
			"c.domain AS company_domain",
		).
		Column(squirrel.Expr(
			"COALESCE(SUM(o.amount) FILTER (WHERE o.date >= ? AND o.date < ?), 0) AS recent_spending",
			window.RecentStart, window.End,
		)).
		Column(squirrel.Expr(
			"COALESCE(SUM(o.amount) FILTER (WHERE o.date >= ? AND o.date < ?), 0) AS previous_spending",
			window.PreviousStart, window.RecentStart,
		)).
		From("orders o").
		Join("people p ON p.id = o.person_id").
		Join("companies c ON c.id = p.company_id").
		Where("o.date >= ? AND o.date < ?", window.PreviousStart, window.End)

	if exclusion := r.filter.ConsumerExclusion(); exclusion != nil {
		builder = builder.Where(exclusion)
	}

	return builder.GroupBy("c.id")
}

// movementQuery só considera empresas com gasto anterior positivo
func (r *spendingMovementRepository) movementQuery(window domain.ComparisonWindow, comparison, direction string, limit int) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"company_id",
			"company_name",
			"company_domain",
			"recent_spending",
			"previous_spending",
			"ROUND((recent_spending - previous_spending) / previous_spending * 100, 2) AS change_percentage",
		).
		FromSelect(r.periodTotals(window), "periods").
		Where("previous_spending > 0").
		Where("recent_spending " + comparison + " previous_spending").
		OrderBy(
			"(recent_spending - previous_spending) / previous_spending "+direction,
			"company_name ASC",
		).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// TopDroppers ordena da maior queda relativa para a menor
func (r *spendingMovementRepository) TopDroppers(ctx context.Context, window domain.ComparisonWindow, limit int) ([]domain.SpendingMovement, error) {
	return r.queryMovements(ctx, r.movementQuery(window, "<", "ASC", limit))
}

// TopIncreases ordena do maior aumento relativo para o menor
func (r *spendingMovementRepository) TopIncreases(ctx context.Context, window domain.ComparisonWindow, limit int) ([]domain.SpendingMovement, error) {
	return r.queryMovements(ctx, r.movementQuery(window, ">", "DESC", limit))
}

func (r *spendingMovementRepository) queryMovements(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.SpendingMovement, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de movimentação: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de movimentação: %w", err)
	}
	defer rows.Close()

	movements := make([]domain.SpendingMovement, 0)
	for rows.Next() {
		movement, err := r.scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear movimentação: %w", err)
		}
		movements = append(movements, *movement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return movements, nil
}

func (r *spendingMovementRepository) scanMovement(rows *sql.Rows) (*domain.SpendingMovement, error) {
	movement := &domain.SpendingMovement{}

	err := rows.Scan(
		&movement.CompanyID,
		&movement.CompanyName,
		&movement.CompanyDomain,
		&movement.RecentSpending,
		&movement.PreviousSpending,
		&movement.ChangePercentage,
	)
	if err != nil {
		return nil, err
	}

	return movement, nil
}
