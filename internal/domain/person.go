package domain

import (
	"github.com/shopspring/decimal"
)

type Person struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Email         *string           `json:"email"`
	Phone         *string           `json:"phone"`
	CompanyID     int64             `json:"company_id"`
	CompanyName   string            `json:"company_name"`
	CompanyDomain string            `json:"company_domain"`
	TotalOrders   int64             `json:"total_orders"`
	TotalSales    decimal.Decimal   `json:"total_sales"`
	Enrichment    *PersonEnrichment `json:"enrichment_data"`
}

// PersonDetail é a pessoa com dados de contato projetados e pedidos (com itens)
type PersonDetail struct {
	Person
	WorkEmail   string            `json:"work_email"`
	MobilePhone string            `json:"mobile_phone"`
	JobTitle    string            `json:"job_title"`
	Address     string            `json:"address"`
	Skills      []string          `json:"skills"`
	Socials     map[string]string `json:"socials"`
	Orders      []Order           `json:"orders"`
}

func NewPersonDetail(person Person, orders []Order) *PersonDetail {
	doc := person.Enrichment

	if orders == nil {
		orders = make([]Order, 0)
	}

	return &PersonDetail{
		Person:      person,
		WorkEmail:   doc.WorkEmail(),
		MobilePhone: doc.MobilePhone(),
		JobTitle:    doc.JobTitle(),
		Address:     doc.Address(),
		Skills:      doc.SkillList(),
		Socials:     doc.SocialLinks(),
		Orders:      orders,
	}
}
