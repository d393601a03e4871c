package repository

//go:generate mockgen -source=person.go -destination=mocks/person.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

type PersonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, []domain.Order, error)
}

type personRepository struct {
	conn *postgres.Connection
}

func NewPersonRepository(conn *postgres.Connection) PersonRepository {
	return &personRepository{
		conn: conn,
	}
}

func (r *personRepository) personQuery(id int64) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"p.id",
			"p.name",
			"p.email",
			"p.phone",
			"p.enrichment_data",
			"c.id",
			"c.name",
			"c.domain",
			"COUNT(DISTINCT o.id) AS total_orders",
			"COALESCE(SUM(o.amount), 0) AS total_sales",
		).
		From("people p").
		Join("companies c ON c.id = p.company_id").
		LeftJoin("orders o ON o.person_id = p.id").
		Where(squirrel.Eq{"p.id": id}).
		GroupBy("p.id", "c.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *personRepository) GetByID(ctx context.Context, id int64) (*domain.Person, []domain.Order, error) {
	personQuery, args, err := r.personQuery(id).ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		person *domain.Person
		orders []domain.Order
	)

	err = r.conn.WithConn(ctx, func(q postgres.Queryer) error {
		found, scanErr := r.scanPersonRow(q.QueryRowContext(ctx, personQuery, args...))
		if scanErr != nil {
			if scanErr == sql.ErrNoRows {
				return nil
			}
			return fmt.Errorf("erro ao escanear pessoa: %w", scanErr)
		}

		personOrders, ordersErr := queryOrders(ctx, q, squirrel.Eq{"p.id": found.ID})
		if ordersErr != nil {
			return ordersErr
		}

		person, orders = found, personOrders
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return person, orders, nil
}

func (r *personRepository) scanPersonRow(row *sql.Row) (*domain.Person, error) {
	person := &domain.Person{}
	var (
		email, phone sql.NullString
		enrichment   []byte
	)

	err := row.Scan(
		&person.ID,
		&person.Name,
		&email,
		&phone,
		&enrichment,
		&person.CompanyID,
		&person.CompanyName,
		&person.CompanyDomain,
		&person.TotalOrders,
		&person.TotalSales,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		person.Email = &email.String
	}
	if phone.Valid {
		person.Phone = &phone.String
	}

	person.Enrichment, err = domain.ParsePersonEnrichment(enrichment)
	if err != nil {
		return nil, fmt.Errorf("enrichment_data da pessoa %d: %w", person.ID, err)
	}

	return person, nil
}
