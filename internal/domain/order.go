package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// Order é sempre retornado com todos os seus itens, na ordem em que foram lançados
type Order struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PersonID      int64           `json:"person_id"`
	PersonName    string          `json:"person_name"`
	LineItems     []LineItem      `json:"line_items"`
}

// ParseLineItems decodifica a lista agregada pelo banco (json_agg)
func ParseLineItems(raw []byte) ([]LineItem, error) {
	items := make([]LineItem, 0)
	if len(raw) == 0 {
		return items, nil
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = make([]LineItem, 0)
	}

	return items, nil
}

// OrderTotals soma os pedidos já carregados
func OrderTotals(orders []Order) (decimal.Decimal, int) {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Amount)
	}
	return total, len(orders)
}
