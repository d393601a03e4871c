package domain

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// SortField é um dos campos permitidos para ordenar a listagem de empresas
type SortField string

const (
	SortByName        SortField = "name"
	SortByDomain      SortField = "domain"
	SortByTotalSales  SortField = "total_sales"
	SortByTotalOrders SortField = "total_orders"
	SortByTotalPeople SortField = "total_people"

	DefaultSortField = SortByTotalSales
)

var sortFields = []SortField{SortByName, SortByDomain, SortByTotalSales, SortByTotalOrders, SortByTotalPeople}

func SortFields() []SortField {
	fields := make([]SortField, len(sortFields))
	copy(fields, sortFields)
	return fields
}

// ParseSortField nunca falha: valores fora da lista caem para o padrão (total_sales)
func ParseSortField(raw string) SortField {
	field := SortField(strings.TrimSpace(raw))
	for _, allowed := range sortFields {
		if field == allowed {
			return field
		}
	}
	return DefaultSortField
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseSortDirection(raw string) SortDirection {
	if SortDirection(strings.ToLower(strings.TrimSpace(raw))) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

type ListingView string

const (
	ViewGrid  ListingView = "grid"
	ViewTable ListingView = "table"
)

func ParseListingView(raw string) ListingView {
	if ListingView(strings.ToLower(strings.TrimSpace(raw))) == ViewTable {
		return ViewTable
	}
	return ViewGrid
}

// CompanyFilter agrupa os critérios opcionais da listagem. Critério ausente nunca exclui.
// RevenueRequested/YearsRequested indicam que o parâmetro veio preenchido: sem nenhum valor
// válido, o critério não casa com nenhuma empresa.
type CompanyFilter struct {
	Industry         string
	Search           string
	IncludeConsumer  bool
	RevenueRanges    []RevenueBracket
	RevenueRequested bool
	Years            []int
	YearsRequested   bool
}

// MatchesNoRevenue é verdadeiro quando o filtro de faixas foi pedido sem faixa válida
func (f CompanyFilter) MatchesNoRevenue() bool {
	return f.RevenueRequested && len(f.RevenueRanges) == 0
}

// MatchesNoYear é verdadeiro quando o filtro de anos foi pedido sem ano válido
func (f CompanyFilter) MatchesNoYear() bool {
	return f.YearsRequested && len(f.Years) == 0
}

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Validate() error {
	if p.Page <= 0 || p.PageSize <= 0 {
		return ErrInvalidPagination
	}
	return nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages = ceil(totalCount / pageSize)
func TotalPages(totalCount int64, pageSize int) int64 {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (totalCount + size - 1) / size
}

// CompanyListingQuery é a forma já interpretada da query string da listagem
type CompanyListingQuery struct {
	Filter    CompanyFilter
	Sort      SortField
	Direction SortDirection
	View      ListingView
	Page      int
}

const (
	paramIndustry        = "industry"
	paramIncludeConsumer = "includeConsumer"
	paramSearch          = "search"
	paramPage            = "page"
	paramView            = "view"
	paramSort            = "sort"
	paramDir             = "dir"
	paramRevenue         = "revenue"
	paramYears           = "years"

	// valor que nunca é faixa nem ano válido; mantém nos links um filtro que não casa com nada
	unmatchedListValue = "none"
)

func ParseCompanyListingQuery(values url.Values) (CompanyListingQuery, error) {
	query := CompanyListingQuery{
		Filter: CompanyFilter{
			Industry:         strings.TrimSpace(values.Get(paramIndustry)),
			Search:           strings.TrimSpace(values.Get(paramSearch)),
			IncludeConsumer:  values.Get(paramIncludeConsumer) == "true",
			RevenueRanges:    ParseRevenueParam(values.Get(paramRevenue)),
			RevenueRequested: len(splitListParam(values.Get(paramRevenue))) > 0,
			Years:            ParseYearsParam(values.Get(paramYears)),
			YearsRequested:   len(splitListParam(values.Get(paramYears))) > 0,
		},
		Sort:      ParseSortField(values.Get(paramSort)),
		Direction: ParseSortDirection(values.Get(paramDir)),
		View:      ParseListingView(values.Get(paramView)),
		Page:      1,
	}

	if raw := strings.TrimSpace(values.Get(paramPage)); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page <= 0 {
			return CompanyListingQuery{}, ErrInvalidPagination
		}
		query.Page = page
	}

	return query, nil
}

// Values reconstrói a query string omitindo valores padrão
func (q CompanyListingQuery) Values() url.Values {
	values := url.Values{}

	if q.Filter.Industry != "" {
		values.Set(paramIndustry, q.Filter.Industry)
	}
	if q.Filter.Search != "" {
		values.Set(paramSearch, q.Filter.Search)
	}
	if q.Filter.IncludeConsumer {
		values.Set(paramIncludeConsumer, "true")
	}
	if revenue := EncodeRevenueParam(q.Filter.RevenueRanges); revenue != "" {
		values.Set(paramRevenue, revenue)
	} else if q.Filter.MatchesNoRevenue() {
		values.Set(paramRevenue, unmatchedListValue)
	}
	if years := EncodeYearsParam(q.Filter.Years); years != "" {
		values.Set(paramYears, years)
	} else if q.Filter.MatchesNoYear() {
		values.Set(paramYears, unmatchedListValue)
	}
	if q.Sort != "" && q.Sort != DefaultSortField {
		values.Set(paramSort, string(q.Sort))
	}
	if q.Direction == SortAsc {
		values.Set(paramDir, string(SortAsc))
	}
	if q.View == ViewTable {
		values.Set(paramView, string(ViewTable))
	}
	if q.Page > 1 {
		values.Set(paramPage, strconv.Itoa(q.Page))
	}

	return values
}

func (q CompanyListingQuery) WithPage(page int) CompanyListingQuery {
	q.Page = page
	return q
}

// ParseRevenueParam interpreta "1m-10m,10m-50m" como conjunto: ignora códigos desconhecidos,
// remove duplicados e devolve na ordem das faixas
func ParseRevenueParam(raw string) []RevenueBracket {
	seen := make(map[RevenueBracket]struct{})
	brackets := make([]RevenueBracket, 0)

	for _, part := range splitListParam(raw) {
		bracket, ok := ParseRevenueBracket(part)
		if !ok {
			continue
		}
		if _, exists := seen[bracket]; exists {
			continue
		}
		seen[bracket] = struct{}{}
		brackets = append(brackets, bracket)
	}

	SortRevenueBrackets(brackets)
	return brackets
}

func EncodeRevenueParam(brackets []RevenueBracket) string {
	if len(brackets) == 0 {
		return ""
	}
	return strings.Join(revenueStrings(ParseRevenueParam(joinBrackets(brackets))), ",")
}

// ParseYearsParam aceita apenas anos de quatro dígitos; o resultado é ordenado e sem repetição
func ParseYearsParam(raw string) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)

	for _, part := range splitListParam(raw) {
		if len(part) != 4 {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil || year < 1000 {
			continue
		}
		if _, exists := seen[year]; exists {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}

	sort.Ints(years)
	return years
}

func EncodeYearsParam(years []int) string {
	if len(years) == 0 {
		return ""
	}

	parts := make([]string, 0, len(years))
	for _, year := range years {
		parts = append(parts, strconv.Itoa(year))
	}
	normalized := ParseYearsParam(strings.Join(parts, ","))

	encoded := make([]string, 0, len(normalized))
	for _, year := range normalized {
		encoded = append(encoded, strconv.Itoa(year))
	}
	return strings.Join(encoded, ",")
}

// splitListParam separa a lista por vírgula. Os itens podem chegar codificados mais uma vez
// ("1m-10m%2C10m-50m"), então a lista é decodificada antes do corte.
func splitListParam(raw string) []string {
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}

	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func joinBrackets(brackets []RevenueBracket) string {
	return strings.Join(revenueStrings(brackets), ",")
}

func revenueStrings(brackets []RevenueBracket) []string {
	values := make([]string, 0, len(brackets))
	for _, b := range brackets {
		values = append(values, string(b))
	}
	return values
}

// ListingLinks são as query strings de navegação; Prev e Next ficam nulos nas bordas
type ListingLinks struct {
	Self string  `json:"self"`
	Prev *string `json:"prev"`
	Next *string `json:"next"`
}

// CompanyListing é a resposta completa da listagem: a página mais o estado que a gerou
type CompanyListing struct {
	*CompanyPage
	View      ListingView   `json:"view"`
	Sort      SortField     `json:"sort"`
	Direction SortDirection `json:"dir"`
	Links     ListingLinks  `json:"links"`
}

func NewCompanyListing(query CompanyListingQuery, page *CompanyPage) *CompanyListing {
	links := ListingLinks{Self: encodeQuery(query)}

	if query.Page > 1 {
		prev := encodeQuery(query.WithPage(query.Page - 1))
		links.Prev = &prev
	}
	if int64(query.Page) < page.TotalPages {
		next := encodeQuery(query.WithPage(query.Page + 1))
		links.Next = &next
	}

	return &CompanyListing{
		CompanyPage: page,
		View:        query.View,
		Sort:        query.Sort,
		Direction:   query.Direction,
		Links:       links,
	}
}

func encodeQuery(query CompanyListingQuery) string {
	encoded := query.Values().Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
