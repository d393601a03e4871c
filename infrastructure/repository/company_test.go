package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

func newTestCompanyRepository() *companyRepository {
	return &companyRepository{filter: newTestFilterCompiler()}
}

func TestCompanyRepository_pageQuery_Sort(t *testing.T) {
	repo := newTestCompanyRepository()
	pagination := domain.Pagination{Page: 1, PageSize: 12}

	tests := []struct {
		name      string
		sort      domain.SortField
		direction domain.SortDirection
		expected  string
	}{
		{name: "padrão", sort: domain.SortByTotalSales, direction: domain.SortDesc, expected: "ORDER BY SUM(o.amount) DESC NULLS LAST, c.name ASC"},
		{name: "nome crescente", sort: domain.SortByName, direction: domain.SortAsc, expected: "ORDER BY c.name ASC NULLS LAST, c.name ASC"},
		{name: "domínio", sort: domain.SortByDomain, direction: domain.SortDesc, expected: "ORDER BY c.domain DESC NULLS LAST, c.name ASC"},
		{name: "pedidos", sort: domain.SortByTotalOrders, direction: domain.SortAsc, expected: "ORDER BY COUNT(DISTINCT o.id) ASC NULLS LAST, c.name ASC"},
		{name: "pessoas", sort: domain.SortByTotalPeople, direction: domain.SortDesc, expected: "ORDER BY COUNT(DISTINCT p.id) DESC NULLS LAST, c.name ASC"},
		{name: "campo fora da lista", sort: domain.SortField("'; DROP TABLE companies;"), direction: domain.SortDesc, expected: "ORDER BY SUM(o.amount) DESC NULLS LAST, c.name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := repo.pageQuery(domain.CompanyListingQuery{Sort: tt.sort, Direction: tt.direction, Page: 1}, pagination).ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, tt.expected)
			assert.NotContains(t, query, "DROP TABLE")
		})
	}
}

func TestCompanyRepository_pageQuery_InjectionMatchesDefault(t *testing.T) {
	repo := newTestCompanyRepository()
	pagination := domain.Pagination{Page: 2, PageSize: 12}

	injected, err := domain.ParseCompanyListingQuery(map[string][]string{"sort": {"'; DROP TABLE companies;"}})
	require.NoError(t, err)
	injected.Page = 2

	defaults := domain.CompanyListingQuery{Sort: domain.SortByTotalSales, Direction: domain.SortDesc, View: domain.ViewGrid, Page: 2}

	injectedSQL, injectedArgs, err := repo.pageQuery(injected, pagination).ToSql()
	require.NoError(t, err)
	defaultSQL, defaultArgs, err := repo.pageQuery(defaults, pagination).ToSql()
	require.NoError(t, err)

	assert.Equal(t, defaultSQL, injectedSQL)
	assert.Equal(t, defaultArgs, injectedArgs)
}

func TestCompanyRepository_pageQuery_ShapeAndPagination(t *testing.T) {
	repo := newTestCompanyRepository()

	query, _, err := repo.pageQuery(
		domain.CompanyListingQuery{Sort: domain.SortByName, Direction: domain.SortAsc, Page: 3},
		domain.Pagination{Page: 3, PageSize: 12},
	).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM companies c LEFT JOIN people p ON p.company_id = c.id LEFT JOIN orders o ON o.person_id = p.id")
	assert.Contains(t, query, "COUNT(DISTINCT p.id) AS total_people")
	assert.Contains(t, query, "COALESCE(SUM(o.amount), 0) AS total_sales")
	assert.Contains(t, query, "COUNT(DISTINCT o.id) AS total_orders")
	assert.Contains(t, query, "GROUP BY c.id")
	assert.Contains(t, query, "LIMIT 12 OFFSET 24")
}

func TestCompanyRepository_countQuery_UsesSameFilter(t *testing.T) {
	repo := newTestCompanyRepository()
	filter := domain.CompanyFilter{Search: "acme", Years: []int{2023}}

	countSQL, countArgs, err := repo.countQuery(filter).ToSql()
	require.NoError(t, err)
	pageSQL, pageArgs, err := repo.pageQuery(
		domain.CompanyListingQuery{Filter: filter, Sort: domain.SortByTotalSales, Direction: domain.SortDesc, Page: 1},
		domain.Pagination{Page: 1, PageSize: 12},
	).ToSql()
	require.NoError(t, err)

	assert.Contains(t, countSQL, "SELECT COUNT(DISTINCT c.id) FROM companies c LEFT JOIN people p")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.Equal(t, countArgs, pageArgs)
	assert.Contains(t, pageSQL, "EXTRACT(YEAR FROM o.date)")
}

func TestCompanyRepository_ListCompanies_InvalidPagination(t *testing.T) {
	repo := newTestCompanyRepository()

	_, err := repo.ListCompanies(context.Background(), domain.CompanyListingQuery{Page: 0}, 12)
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)

	_, err = repo.ListCompanies(context.Background(), domain.CompanyListingQuery{Page: 1}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
}
