package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/testhelpers"
)

type seeder struct {
	t  *testing.T
	db *testhelpers.TestDB
}

func newSeeder(t *testing.T) *seeder {
	db := testhelpers.GetTestDB(t)
	db.Reset(t)
	return &seeder{t: t, db: db}
}

func (s *seeder) returningID(query string, args ...interface{}) int64 {
	s.t.Helper()

	var id int64
	err := s.db.Conn.QueryRowContext(context.Background(), query, args...).Scan(&id)
	require.NoError(s.t, err)
	return id
}

func (s *seeder) company(name, companyDomain, enrichment string) int64 {
	return s.returningID(
		"INSERT INTO companies (name, domain, enrichment_data) VALUES ($1, $2, $3::jsonb) RETURNING id",
		name, companyDomain, enrichment,
	)
}

func (s *seeder) person(companyID int64, name string) int64 {
	return s.returningID(
		"INSERT INTO people (company_id, name, email, enrichment_data) VALUES ($1, $2, $3, $4::jsonb) RETURNING id",
		companyID, name, name+"@example.com", `{"skills": ["negotiation"], "data": {"work_email": "work@example.com"}}`,
	)
}

func (s *seeder) order(personID int64, invoice string, date time.Time, amount string) int64 {
	return s.returningID(
		"INSERT INTO orders (person_id, invoice_number, date, amount) VALUES ($1, $2, $3, $4) RETURNING id",
		personID, invoice, date, amount,
	)
}

func (s *seeder) lineItem(orderID int64, product string, quantity int, unitPrice, amount string) {
	productID := s.returningID("INSERT INTO products (name) VALUES ($1) RETURNING id", product)
	s.db.Exec(s.t,
		"INSERT INTO line_items (order_id, product_id, quantity, unit_price, amount) VALUES ($1, $2, $3, $4, $5)",
		orderID, productID, quantity, unitPrice, amount,
	)
}

func newIntegrationRepositories(db *testhelpers.TestDB) (CompanyRepository, PersonRepository, SpendingMovementRepository) {
	filter := NewCompanyFilterCompiler(domain.NewConsumerDomains(domain.DefaultConsumerDomains()))
	return NewCompanyRepository(db.Conn, filter), NewPersonRepository(db.Conn), NewSpendingMovementRepository(db.Conn, filter)
}

func defaultListing() domain.CompanyListingQuery {
	return domain.CompanyListingQuery{Sort: domain.SortByTotalSales, Direction: domain.SortDesc, View: domain.ViewGrid, Page: 1}
}

func companyDomains(page *domain.CompanyPage) []string {
	domains := make([]string, 0, len(page.Companies))
	for _, c := range page.Companies {
		domains = append(domains, c.Domain)
	}
	return domains
}

func TestIntegration_ListCompanies_TotalsAndFilters(t *testing.T) {
	s := newSeeder(t)
	ctx := context.Background()

	acme := s.company("Acme", "acme.io", `{"about": {"industry": "Software", "industries": ["Software", "Security"]}, "finances": {"revenue": "10m-50m"}}`)
	s.company("Empty Co", "empty.io", `{"finances": {"revenue": "50m-100m"}}`)
	s.company("Gmail Sub", "mail.gmail.com", `{}`)
	s.company("Lookalike", "gmail.com.example.org", `{"about": {"industries": ["Security"]}}`)

	jane := s.person(acme, "jane")
	s.order(jane, "INV-1", time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC), "100.00")
	s.order(jane, "INV-2", time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), "250.50")

	companies, _, _ := newIntegrationRepositories(s.db)

	t.Run("totais zerados para empresas sem pessoas ou pedidos", func(t *testing.T) {
		page, err := companies.ListCompanies(ctx, defaultListing(), 12)
		require.NoError(t, err)

		byDomain := map[string]domain.CompanySummary{}
		for _, c := range page.Companies {
			byDomain[c.Domain] = c
		}

		require.Contains(t, byDomain, "empty.io")
		assert.Equal(t, int64(0), byDomain["empty.io"].TotalPeople)
		assert.Equal(t, int64(0), byDomain["empty.io"].TotalOrders)
		assert.True(t, byDomain["empty.io"].TotalSales.IsZero())

		assert.Equal(t, int64(1), byDomain["acme.io"].TotalPeople)
		assert.Equal(t, int64(2), byDomain["acme.io"].TotalOrders)
		assert.True(t, decimal.RequireFromString("350.50").Equal(byDomain["acme.io"].TotalSales))
		assert.Equal(t, "Software", byDomain["acme.io"].PrimaryIndustry)
		assert.Equal(t, []string{"Security"}, byDomain["acme.io"].SecondaryIndustries)

		// total_sales desc: empresas sem pedidos por último, desempate por nome
		assert.Equal(t, "acme.io", page.Companies[0].Domain)
	})

	t.Run("exclusão de domínios de consumo respeita o limite de domínio", func(t *testing.T) {
		page, err := companies.ListCompanies(ctx, defaultListing(), 12)
		require.NoError(t, err)

		domains := companyDomains(page)
		assert.NotContains(t, domains, "mail.gmail.com")
		assert.Contains(t, domains, "gmail.com.example.org")
		assert.Equal(t, int64(3), page.TotalCount)

		included := defaultListing()
		included.Filter.IncludeConsumer = true
		page, err = companies.ListCompanies(ctx, included, 12)
		require.NoError(t, err)
		assert.Contains(t, companyDomains(page), "mail.gmail.com")
	})

	t.Run("filtro de faixa de receita", func(t *testing.T) {
		query := defaultListing()
		query.Filter.RevenueRanges = []domain.RevenueBracket{domain.Revenue1MTo10M, domain.Revenue10MTo50M}

		page, err := companies.ListCompanies(ctx, query, 12)
		require.NoError(t, err)
		assert.Equal(t, []string{"acme.io"}, companyDomains(page))
	})

	t.Run("faixa ou ano sem valor válido não retorna empresas", func(t *testing.T) {
		values := url.Values{"revenue": {"bogus"}, "years": {"99"}}
		for param := range values {
			query, err := domain.ParseCompanyListingQuery(url.Values{param: values[param]})
			require.NoError(t, err)

			page, err := companies.ListCompanies(ctx, query, 12)
			require.NoError(t, err, param)
			assert.Empty(t, page.Companies, param)
			assert.Equal(t, int64(0), page.TotalCount, param)
		}
	})

	t.Run("filtro de indústria considera as secundárias", func(t *testing.T) {
		query := defaultListing()
		query.Filter.Industry = "Security"
		query.Sort = domain.SortByName
		query.Direction = domain.SortAsc

		page, err := companies.ListCompanies(ctx, query, 12)
		require.NoError(t, err)
		assert.Equal(t, []string{"acme.io", "gmail.com.example.org"}, companyDomains(page))
	})

	t.Run("filtro de ano exclui empresas sem pedidos no ano", func(t *testing.T) {
		query := defaultListing()
		query.Filter.Years = []int{2023}

		page, err := companies.ListCompanies(ctx, query, 12)
		require.NoError(t, err)
		require.Equal(t, []string{"acme.io"}, companyDomains(page))
		assert.Equal(t, int64(1), page.Companies[0].TotalOrders)
		assert.True(t, decimal.RequireFromString("250.50").Equal(page.Companies[0].TotalSales))
	})

	t.Run("busca textual sem diferenciar maiúsculas", func(t *testing.T) {
		query := defaultListing()
		query.Filter.Search = "ACME"

		page, err := companies.ListCompanies(ctx, query, 12)
		require.NoError(t, err)
		assert.Equal(t, []string{"acme.io"}, companyDomains(page))
	})
}

func TestIntegration_ListCompanies_Pagination(t *testing.T) {
	s := newSeeder(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.company(name, name+".io", `{}`)
	}

	companies, _, _ := newIntegrationRepositories(s.db)
	pageSize := 3

	first, err := companies.ListCompanies(ctx, defaultListing(), pageSize)
	require.NoError(t, err)
	assert.Equal(t, int64(7), first.TotalCount)
	assert.Equal(t, int64(3), first.TotalPages)
	assert.Equal(t, []string{"a.io", "b.io", "c.io"}, companyDomains(first))

	last, err := companies.ListCompanies(ctx, defaultListing().WithPage(int(first.TotalPages)), pageSize)
	require.NoError(t, err)
	assert.Len(t, last.Companies, int(first.TotalCount)-pageSize*int(first.TotalPages-1))
	assert.Equal(t, first.TotalCount, last.TotalCount)

	count, err := companies.CountCompanies(ctx, domain.CompanyFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestIntegration_CompanyAndPersonDetail(t *testing.T) {
	s := newSeeder(t)
	ctx := context.Background()

	acme := s.company("Acme", "acme.io", `{"about": {"name": "Acme Corp"}}`)
	jane := s.person(acme, "jane")
	orderID := s.order(jane, "INV-9", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "30.00")
	s.lineItem(orderID, "Anvil", 2, "10.00", "20.00")
	s.lineItem(orderID, "Rope", 1, "10.00", "10.00")
	s.order(jane, "INV-10", time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), "5.00")

	companies, people, _ := newIntegrationRepositories(s.db)

	company, orders, err := companies.GetByDomain(ctx, "acme.io")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme Corp", company.Enrichment.DisplayName())
	require.Len(t, orders, 2)
	assert.Equal(t, "INV-10", orders[0].InvoiceNumber)
	assert.Empty(t, orders[0].LineItems)
	require.Len(t, orders[1].LineItems, 2)
	assert.Equal(t, "Anvil", orders[1].LineItems[0].ProductName)
	assert.Equal(t, 2, orders[1].LineItems[0].Quantity)
	assert.True(t, decimal.RequireFromString("20").Equal(orders[1].LineItems[0].Amount))

	missing, missingOrders, err := companies.GetByDomain(ctx, "nope.io")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Nil(t, missingOrders)

	person, personOrders, err := people.GetByID(ctx, jane)
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "Acme", person.CompanyName)
	assert.Equal(t, "acme.io", person.CompanyDomain)
	assert.Equal(t, int64(2), person.TotalOrders)
	assert.True(t, decimal.RequireFromString("35").Equal(person.TotalSales))
	assert.Equal(t, "work@example.com", person.Enrichment.WorkEmail())
	assert.Len(t, personOrders, 2)

	nobody, _, err := people.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, nobody)
}

func TestIntegration_CompanyDomainUniqueIgnoringCase(t *testing.T) {
	s := newSeeder(t)
	ctx := context.Background()

	acme := s.company("Acme", "acme.io", `{}`)

	_, err := s.db.Conn.ExecContext(ctx,
		"INSERT INTO companies (name, domain) VALUES ($1, $2)", "Acme Duplicada", "ACME.io")
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("23505"), pqErr.Code)

	companies, _, _ := newIntegrationRepositories(s.db)
	company, _, err := companies.GetByDomain(ctx, "Acme.IO")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, acme, company.ID)
}

func TestIntegration_SpendingMovement(t *testing.T) {
	s := newSeeder(t)
	ctx := context.Background()

	end := time.Now().UTC()
	window := domain.NewComparisonWindow(end, 6)
	recent := end.AddDate(0, -1, 0)
	previous := end.AddDate(0, -9, 0)
	tooOld := end.AddDate(0, -14, 0)

	grower := s.person(s.company("Grower", "grower.io", `{}`), "g")
	s.order(grower, "G-1", previous, "1000")
	s.order(grower, "G-2", recent, "1500")
	s.order(grower, "G-OLD", tooOld, "100000")

	dropper := s.person(s.company("Dropper", "dropper.io", `{}`), "d")
	s.order(dropper, "D-1", previous, "1000")
	s.order(dropper, "D-2", recent, "400")

	newcomer := s.person(s.company("Newcomer", "newcomer.io", `{}`), "n")
	s.order(newcomer, "N-1", recent, "500")

	consumer := s.person(s.company("Consumer", "mail.yahoo.com", `{}`), "c")
	s.order(consumer, "C-1", previous, "1000")
	s.order(consumer, "C-2", recent, "10")

	_, _, movements := newIntegrationRepositories(s.db)

	increases, err := movements.TopIncreases(ctx, window, 10)
	require.NoError(t, err)
	require.Len(t, increases, 1)
	assert.Equal(t, "grower.io", increases[0].CompanyDomain)
	assert.True(t, decimal.RequireFromString("50.00").Equal(increases[0].ChangePercentage))
	assert.True(t, decimal.RequireFromString("1000").Equal(increases[0].PreviousSpending))

	droppers, err := movements.TopDroppers(ctx, window, 10)
	require.NoError(t, err)
	require.Len(t, droppers, 1)
	assert.Equal(t, "dropper.io", droppers[0].CompanyDomain)
	assert.True(t, decimal.RequireFromString("-60.00").Equal(droppers[0].ChangePercentage))
}
