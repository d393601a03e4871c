package domain

import "time"

const FirstSelectableYear = 2010

type RevenueOption struct {
	Value RevenueBracket `json:"value"`
	Label string         `json:"label"`
	Rank  int            `json:"rank"`
}

// FilterOptions lista os valores aceitos pelos filtros da listagem
type FilterOptions struct {
	Revenue    []RevenueOption `json:"revenue"`
	Years      []int           `json:"years"`
	SortFields []SortField     `json:"sort_fields"`
	Views      []ListingView   `json:"views"`
	PageSize   int             `json:"page_size"`
}

func NewFilterOptions(now time.Time, pageSize int) FilterOptions {
	revenue := make([]RevenueOption, 0, len(orderedRevenueBrackets))
	for _, bracket := range RevenueBrackets() {
		revenue = append(revenue, RevenueOption{
			Value: bracket,
			Label: bracket.Label(),
			Rank:  bracket.Rank(),
		})
	}

	// do ano atual até 2010
	years := make([]int, 0)
	for year := now.Year(); year >= FirstSelectableYear; year-- {
		years = append(years, year)
	}

	return FilterOptions{
		Revenue:    revenue,
		Years:      years,
		SortFields: SortFields(),
		Views:      []ListingView{ViewGrid, ViewTable},
		PageSize:   pageSize,
	}
}
