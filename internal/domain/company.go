package domain

import (
	"github.com/shopspring/decimal"
)

// CompanySummary é a linha da listagem: totais agregados + campos projetados do enriquecimento
type CompanySummary struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	Domain              string          `json:"domain"`
	LinkedInURL         *string         `json:"linkedin_url"`
	TotalPeople         int64           `json:"total_people"`
	TotalSales          decimal.Decimal `json:"total_sales"`
	TotalOrders         int64           `json:"total_orders"`
	Revenue             RevenueBracket  `json:"revenue"`
	RevenueLabel        string          `json:"revenue_label"`
	Employees           string          `json:"employees"`
	PrimaryIndustry     string          `json:"primary_industry"`
	Industries          []string        `json:"all_industries"`
	SecondaryIndustries []string        `json:"secondary_industries"`
	YearFounded         *int            `json:"year_founded"`
	Description         string          `json:"description"`
	MonthlyVisitors     string          `json:"monthly_visitors"`
	City                string          `json:"city"`
	State               string          `json:"state"`
	Country             string          `json:"country"`
	LogoURL             string          `json:"logo_square"`
}

// ApplyEnrichment achata o documento de enriquecimento nos campos de exibição
func (c *CompanySummary) ApplyEnrichment(doc *CompanyEnrichment) {
	c.Revenue = doc.Revenue()
	c.RevenueLabel = c.Revenue.Label()
	c.Employees = doc.EmployeesRange()
	c.PrimaryIndustry = doc.PrimaryIndustry()
	c.Industries = doc.Industries()
	c.SecondaryIndustries = doc.SecondaryIndustries()
	c.YearFounded = doc.YearFounded()
	c.Description = doc.Description()
	c.MonthlyVisitors = doc.MonthlyVisitors()
	c.City = doc.City()
	c.State = doc.State()
	c.Country = doc.Country()
	c.LogoURL = doc.LogoURL()
}

// CompanyPage é o resultado paginado da listagem
type CompanyPage struct {
	Companies  []CompanySummary `json:"companies"`
	TotalCount int64            `json:"total_count"`
	TotalPages int64            `json:"total_pages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

// Company é o registro usado pela página de detalhe
type Company struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Domain      string             `json:"domain"`
	LinkedInURL *string            `json:"linkedin_url"`
	Enrichment  *CompanyEnrichment `json:"enrichment_data"`
}

// CompanyDetail é a empresa com projeções de exibição e pedidos (com itens)
type CompanyDetail struct {
	Company
	DisplayName         string            `json:"display_name"`
	Tagline             string            `json:"tagline"`
	Description         string            `json:"description"`
	MonthlyVisitors     string            `json:"monthly_visitors"`
	PrimaryIndustry     string            `json:"primary_industry"`
	SecondaryIndustries []string          `json:"secondary_industries"`
	Employees           string            `json:"employees"`
	YearFounded         *int              `json:"year_founded"`
	Headquarters        string            `json:"headquarters"`
	Revenue             RevenueBracket    `json:"revenue"`
	RevenueLabel        string            `json:"revenue_label"`
	LogoURL             string            `json:"logo_square"`
	WebsiteURL          string            `json:"website_url"`
	Socials             map[string]string `json:"socials"`
	IsConsumer          bool              `json:"is_consumer"`
	TotalSales          decimal.Decimal   `json:"total_sales"`
	TotalOrders         int               `json:"total_orders"`
	Orders              []Order           `json:"orders"`
}

// NewCompanyDetail monta o detalhe a partir da empresa e dos pedidos já carregados
func NewCompanyDetail(company Company, orders []Order, consumerDomains ConsumerDomains) *CompanyDetail {
	doc := company.Enrichment

	displayName := doc.DisplayName()
	if displayName == "" {
		displayName = company.Name
	}

	if orders == nil {
		orders = make([]Order, 0)
	}
	totalSales, totalOrders := OrderTotals(orders)

	detail := &CompanyDetail{
		Company:             company,
		DisplayName:         displayName,
		Tagline:             doc.Tagline(),
		Description:         doc.Description(),
		MonthlyVisitors:     doc.MonthlyVisitors(),
		PrimaryIndustry:     doc.PrimaryIndustry(),
		SecondaryIndustries: doc.SecondaryIndustries(),
		Employees:           doc.Employees(),
		YearFounded:         doc.YearFounded(),
		Headquarters:        doc.Headquarters(),
		Revenue:             doc.Revenue(),
		LogoURL:             doc.LogoURL(),
		Socials:             doc.SocialLinks(),
		IsConsumer:          consumerDomains.Matches(company.Domain),
		TotalSales:          totalSales,
		TotalOrders:         totalOrders,
		Orders:              orders,
	}
	detail.RevenueLabel = detail.Revenue.Label()

	if company.Domain != "" {
		detail.WebsiteURL = "https://" + company.Domain
	}

	return detail
}
