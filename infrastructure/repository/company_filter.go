package repository

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

const (
	industryExpr = "c.enrichment_data->'about'->>'industry'"
	revenueExpr  = "c.enrichment_data->'finances'->>'revenue'"

	// jsonb_array_elements_text falha quando o campo não é array
	industriesArrayExpr = "CASE WHEN jsonb_typeof(c.enrichment_data->'about'->'industries') = 'array' " +
		"THEN c.enrichment_data->'about'->'industries' ELSE '[]'::jsonb END"
)

// CompanyFilterCompiler transforma os critérios opcionais da listagem em um único predicado (AND).
// A lista de domínios de consumo é injetada na construção.
type CompanyFilterCompiler struct {
	consumerDomains domain.ConsumerDomains
}

func NewCompanyFilterCompiler(consumerDomains domain.ConsumerDomains) *CompanyFilterCompiler {
	return &CompanyFilterCompiler{
		consumerDomains: consumerDomains,
	}
}

// Compile espera os aliases c (companies) e o (orders) na consulta.
// Critérios ausentes não entram no predicado.
func (f *CompanyFilterCompiler) Compile(filter domain.CompanyFilter) squirrel.And {
	predicate := squirrel.And{}

	if industry := strings.TrimSpace(filter.Industry); industry != "" {
		predicate = append(predicate, squirrel.Expr(
			"("+industryExpr+" = ? OR EXISTS (SELECT 1 FROM jsonb_array_elements_text("+industriesArrayExpr+") AS ind(name) WHERE ind.name = ?))",
			industry, industry,
		))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		predicate = append(predicate, squirrel.Expr(
			`(LOWER(c.name) LIKE ? ESCAPE '\' OR LOWER(c.domain) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		))
	}

	if !filter.IncludeConsumer {
		if exclusion := f.ConsumerExclusion(); exclusion != nil {
			predicate = append(predicate, exclusion)
		}
	}

	if filter.MatchesNoRevenue() {
		predicate = append(predicate, squirrel.Expr("FALSE"))
	} else if len(filter.RevenueRanges) > 0 {
		codes := make([]string, 0, len(filter.RevenueRanges))
		for _, bracket := range filter.RevenueRanges {
			codes = append(codes, bracket.String())
		}
		predicate = append(predicate, squirrel.Expr(revenueExpr+" = ANY(?::text[])", pq.Array(codes)))
	}

	// Avaliado sobre o mesmo LEFT JOIN dos totais: empresas sem pedido nos anos pedidos saem da listagem
	if filter.MatchesNoYear() {
		predicate = append(predicate, squirrel.Expr("FALSE"))
	} else if len(filter.Years) > 0 {
		years := make([]int64, 0, len(filter.Years))
		for _, year := range filter.Years {
			years = append(years, int64(year))
		}
		predicate = append(predicate, squirrel.Expr("EXTRACT(YEAR FROM o.date)::integer = ANY(?::integer[])", pq.Array(years)))
	}

	return predicate
}

// ConsumerExclusion exclui empresas cujo domínio é igual ou subdomínio de um domínio de consumo.
// Retorna nil quando a lista está vazia.
func (f *CompanyFilterCompiler) ConsumerExclusion() squirrel.Sqlizer {
	if f.consumerDomains.Len() == 0 {
		return nil
	}

	return squirrel.Expr(
		"NOT EXISTS (SELECT 1 FROM unnest(?::text[]) AS cd(domain) "+
			"WHERE LOWER(c.domain) = cd.domain "+
			"OR RIGHT(LOWER(c.domain), LENGTH(cd.domain) + 1) = '.' || cd.domain)",
		pq.Array(f.consumerDomains.List()),
	)
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
