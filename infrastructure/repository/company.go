// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=company.go -destination=mocks/company.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

const (
	companiesTable = "companies c"
)

// sortExpressions mapeia os campos permitidos para expressões fixas; nada vindo da requisição
// entra no ORDER BY
var sortExpressions = map[domain.SortField]string{
	domain.SortByName:        "c.name",
	domain.SortByDomain:      "c.domain",
	domain.SortByTotalSales:  "SUM(o.amount)",
	domain.SortByTotalOrders: "COUNT(DISTINCT o.id)",
	domain.SortByTotalPeople: "COUNT(DISTINCT p.id)",
}

type CompanyRepository interface {
	ListCompanies(ctx context.Context, query domain.CompanyListingQuery, pageSize int) (*domain.CompanyPage, error)
	CountCompanies(ctx context.Context, filter domain.CompanyFilter) (int64, error)
	GetByDomain(ctx context.Context, companyDomain string) (*domain.Company, []domain.Order, error)
}

type companyRepository struct {
	conn   *postgres.Connection
	filter *CompanyFilterCompiler
}

func NewCompanyRepository(conn *postgres.Connection, filter *CompanyFilterCompiler) CompanyRepository {
	return &companyRepository{
		conn:   conn,
		filter: filter,
	}
}

// companiesWithTotals aplica o LEFT JOIN empresa -> pessoas -> pedidos e o filtro compilado
func (r *companyRepository) companiesWithTotals(builder squirrel.SelectBuilder, filter domain.CompanyFilter) squirrel.SelectBuilder {
	builder = builder.
		From(companiesTable).
		LeftJoin("people p ON p.company_id = c.id").
		LeftJoin("orders o ON o.person_id = p.id")

	if predicate := r.filter.Compile(filter); len(predicate) > 0 {
		builder = builder.Where(predicate)
	}

	return builder.PlaceholderFormat(squirrel.Dollar)
}

func (r *companyRepository) countQuery(filter domain.CompanyFilter) squirrel.SelectBuilder {
	return r.companiesWithTotals(squirrel.Select("COUNT(DISTINCT c.id)"), filter)
}

func (r *companyRepository) pageQuery(query domain.CompanyListingQuery, pagination domain.Pagination) squirrel.SelectBuilder {
	sortExpr, ok := sortExpressions[query.Sort]
	if !ok {
		sortExpr = sortExpressions[domain.DefaultSortField]
	}

	direction := "DESC"
	if query.Direction == domain.SortAsc {
		direction = "ASC"
	}

	builder := squirrel.Select(
		"c.id",
		"c.name",
		"c.domain",
		"c.linkedin_url",
		"c.enrichment_data",
		"COUNT(DISTINCT p.id) AS total_people",
		"COALESCE(SUM(o.amount), 0) AS total_sales",
		"COUNT(DISTINCT o.id) AS total_orders",
	)

	return r.companiesWithTotals(builder, query.Filter).
		GroupBy("c.id").
		OrderBy(
			fmt.Sprintf("%s %s NULLS LAST", sortExpr, direction),
			"c.name ASC",
		).
		Limit(uint64(pagination.PageSize)).
		Offset(uint64(pagination.Offset()))
}

func (r *companyRepository) ListCompanies(ctx context.Context, query domain.CompanyListingQuery, pageSize int) (*domain.CompanyPage, error) {
	pagination := domain.Pagination{Page: query.Page, PageSize: pageSize}
	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	page := &domain.CompanyPage{
		Companies: make([]domain.CompanySummary, 0),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	// contagem e página em sequência na mesma conexão
	err := r.conn.WithConn(ctx, func(q postgres.Queryer) error {
		total, err := r.count(ctx, q, query.Filter)
		if err != nil {
			return err
		}
		page.TotalCount = total
		page.TotalPages = domain.TotalPages(total, pagination.PageSize)

		if total == 0 {
			return nil
		}

		companies, err := r.listPage(ctx, q, query, pagination)
		if err != nil {
			return err
		}
		page.Companies = companies
		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

func (r *companyRepository) CountCompanies(ctx context.Context, filter domain.CompanyFilter) (int64, error) {
	return r.count(ctx, r.conn, filter)
}

func (r *companyRepository) count(ctx context.Context, q postgres.Queryer, filter domain.CompanyFilter) (int64, error) {
	sqlQuery, args, err := r.countQuery(filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int64
	if err := q.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar empresas: %w", err)
	}

	return total, nil
}

func (r *companyRepository) listPage(ctx context.Context, q postgres.Queryer, query domain.CompanyListingQuery, pagination domain.Pagination) ([]domain.CompanySummary, error) {
	sqlQuery, args, err := r.pageQuery(query, pagination).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.CompanySummary, 0, pagination.PageSize)
	for rows.Next() {
		company, err := r.scanCompanySummary(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, *company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) GetByDomain(ctx context.Context, companyDomain string) (*domain.Company, []domain.Order, error) {
	companyQuery, args, err := squirrel.
		Select("c.id", "c.name", "c.domain", "c.linkedin_url", "c.enrichment_data").
		From(companiesTable).
		Where(squirrel.Eq{"LOWER(c.domain)": strings.ToLower(companyDomain)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		company *domain.Company
		orders  []domain.Order
	)

	// empresa e pedidos em sequência na mesma conexão
	err = r.conn.WithConn(ctx, func(q postgres.Queryer) error {
		found, scanErr := r.scanCompanyRow(q.QueryRowContext(ctx, companyQuery, args...))
		if scanErr != nil {
			if scanErr == sql.ErrNoRows {
				return nil
			}
			return fmt.Errorf("erro ao escanear empresa: %w", scanErr)
		}

		companyOrders, ordersErr := queryOrders(ctx, q, squirrel.Eq{"c.id": found.ID})
		if ordersErr != nil {
			return ordersErr
		}

		company, orders = found, companyOrders
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return company, orders, nil
}

func (r *companyRepository) scanCompanySummary(rows *sql.Rows) (*domain.CompanySummary, error) {
	item := &domain.CompanySummary{}
	var (
		linkedIn   sql.NullString
		enrichment []byte
	)

	err := rows.Scan(
		&item.ID,
		&item.Name,
		&item.Domain,
		&linkedIn,
		&enrichment,
		&item.TotalPeople,
		&item.TotalSales,
		&item.TotalOrders,
	)
	if err != nil {
		return nil, err
	}

	if linkedIn.Valid {
		item.LinkedInURL = &linkedIn.String
	}

	doc, err := domain.ParseCompanyEnrichment(enrichment)
	if err != nil {
		return nil, fmt.Errorf("enrichment_data da empresa %d: %w", item.ID, err)
	}
	item.ApplyEnrichment(doc)

	return item, nil
}

func (r *companyRepository) scanCompanyRow(row *sql.Row) (*domain.Company, error) {
	company := &domain.Company{}
	var (
		linkedIn   sql.NullString
		enrichment []byte
	)

	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Domain,
		&linkedIn,
		&enrichment,
	)
	if err != nil {
		return nil, err
	}

	if linkedIn.Valid {
		company.LinkedInURL = &linkedIn.String
	}

	company.Enrichment, err = domain.ParseCompanyEnrichment(enrichment)
	if err != nil {
		return nil, fmt.Errorf("enrichment_data da empresa %d: %w", company.ID, err)
	}

	return company, nil
}
