package repository

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

func newTestFilterCompiler() *CompanyFilterCompiler {
	return NewCompanyFilterCompiler(domain.NewConsumerDomains([]string{"gmail.com", "yahoo.com"}))
}

func compileToSql(t *testing.T, filter domain.CompanyFilter) (string, []interface{}) {
	t.Helper()

	query, args, err := squirrel.
		Select("c.id").
		From("companies c").
		Where(newTestFilterCompiler().Compile(filter)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)

	return query, args
}

func TestCompanyFilterCompiler_EmptyFilterOnlyExcludesConsumers(t *testing.T) {
	predicate := newTestFilterCompiler().Compile(domain.CompanyFilter{})
	require.Len(t, predicate, 1)

	query, args := compileToSql(t, domain.CompanyFilter{})
	assert.Contains(t, query, "NOT EXISTS (SELECT 1 FROM unnest($1::text[])")
	assert.Contains(t, query, "RIGHT(LOWER(c.domain), LENGTH(cd.domain) + 1) = '.' || cd.domain")
	require.Len(t, args, 1)
	assert.Equal(t, pq.Array([]string{"gmail.com", "yahoo.com"}), args[0])
}

func TestCompanyFilterCompiler_IncludeConsumerWithoutCriteria(t *testing.T) {
	predicate := newTestFilterCompiler().Compile(domain.CompanyFilter{IncludeConsumer: true})
	assert.Empty(t, predicate)
}

func TestCompanyFilterCompiler_AllCriteria(t *testing.T) {
	query, args := compileToSql(t, domain.CompanyFilter{
		Industry:        "Software",
		Search:          "Ac_me%",
		IncludeConsumer: true,
		RevenueRanges:   []domain.RevenueBracket{domain.Revenue1MTo10M, domain.Revenue10MTo50M},
		Years:           []int{2022, 2023},
	})

	assert.Contains(t, query, "c.enrichment_data->'about'->>'industry' = $1")
	assert.Contains(t, query, "WHERE ind.name = $2")
	assert.Contains(t, query, "LOWER(c.name) LIKE $3 ESCAPE '\\'")
	assert.Contains(t, query, "LOWER(c.domain) LIKE $4 ESCAPE '\\'")
	assert.Contains(t, query, "c.enrichment_data->'finances'->>'revenue' = ANY($5::text[])")
	assert.Contains(t, query, "EXTRACT(YEAR FROM o.date)::integer = ANY($6::integer[])")
	assert.NotContains(t, query, "unnest")
	assert.Contains(t, query, " AND ")

	require.Len(t, args, 6)
	assert.Equal(t, "Software", args[0])
	assert.Equal(t, "Software", args[1])
	assert.Equal(t, `%ac\_me\%%`, args[2])
	assert.Equal(t, pq.Array([]string{"1m-10m", "10m-50m"}), args[4])
	assert.Equal(t, pq.Array([]int64{2022, 2023}), args[5])
}

func TestCompanyFilterCompiler_RequestedListWithoutValidValues(t *testing.T) {
	tests := []struct {
		name       string
		filter     domain.CompanyFilter
		notContain string
	}{
		{
			name:       "faixa de receita",
			filter:     domain.CompanyFilter{IncludeConsumer: true, RevenueRequested: true, RevenueRanges: []domain.RevenueBracket{}},
			notContain: "finances",
		},
		{
			name:       "ano",
			filter:     domain.CompanyFilter{IncludeConsumer: true, YearsRequested: true, Years: []int{}},
			notContain: "EXTRACT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := compileToSql(t, tt.filter)

			assert.Contains(t, query, "WHERE (FALSE)")
			assert.NotContains(t, query, tt.notContain)
			assert.Empty(t, args)
		})
	}
}

func TestCompanyFilterCompiler_RequestedListWithValues(t *testing.T) {
	query, _ := compileToSql(t, domain.CompanyFilter{
		IncludeConsumer:  true,
		RevenueRequested: true,
		RevenueRanges:    []domain.RevenueBracket{domain.RevenueOver1B},
	})

	assert.NotContains(t, query, "FALSE")
	assert.Contains(t, query, "= ANY($1::text[])")
}

func TestCompanyFilterCompiler_EmptyConsumerList(t *testing.T) {
	compiler := NewCompanyFilterCompiler(domain.NewConsumerDomains(nil))

	assert.Nil(t, compiler.ConsumerExclusion())
	assert.Empty(t, compiler.Compile(domain.CompanyFilter{}))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, escapeLike(`50% off_now\`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
