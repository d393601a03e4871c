package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultReportPeriodMonths = 18
	MaxReportPeriodMonths     = 60
)

// ComparisonWindow define as duas janelas comparadas: previous = [PreviousStart, RecentStart)
// e recent = [RecentStart, End). As duas consultas (quedas e altas) recebem a mesma janela.
type ComparisonWindow struct {
	PeriodMonths  int       `json:"period_months"`
	PreviousStart time.Time `json:"previous_start"`
	RecentStart   time.Time `json:"recent_start"`
	End           time.Time `json:"end"`
}

func NewComparisonWindow(end time.Time, periodMonths int) ComparisonWindow {
	return ComparisonWindow{
		PeriodMonths:  periodMonths,
		PreviousStart: subtractMonths(end, 2*periodMonths),
		RecentStart:   subtractMonths(end, periodMonths),
		End:           end,
	}
}

// subtractMonths segue a aritmética de intervalos do PostgreSQL: o dia é limitado ao último
// dia do mês de destino (31/03 - 1 mês = 29/02), sem transbordar para o mês seguinte
func subtractMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	lastDay := time.Date(year, month-time.Month(months)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	hour, minute, sec := t.Clock()
	return time.Date(year, month-time.Month(months), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// ParseReportPeriod devolve o período em meses; valor ausente, não numérico ou fora de
// [1, maxMonths] cai para defaultMonths
func ParseReportPeriod(raw string, defaultMonths, maxMonths int) int {
	period, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || period < 1 || period > maxMonths {
		return defaultMonths
	}
	return period
}

// SpendingMovement é uma empresa cujo gasto mudou entre as duas janelas
type SpendingMovement struct {
	CompanyID        int64           `json:"company_id"`
	CompanyName      string          `json:"company_name"`
	CompanyDomain    string          `json:"company_domain"`
	RecentSpending   decimal.Decimal `json:"recent_spending"`
	PreviousSpending decimal.Decimal `json:"previous_spending"`
	ChangePercentage decimal.Decimal `json:"change_percentage"`
}

// ChangePercentage = (recent - previous) / previous * 100, com duas casas.
// Retorna false quando previous não é positivo.
func ChangePercentage(recent, previous decimal.Decimal) (decimal.Decimal, bool) {
	if !previous.IsPositive() {
		return decimal.Zero, false
	}
	return recent.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2), true
}

// SpendingMovementReport expõe os limites da janela no mesmo nível das listas
type SpendingMovementReport struct {
	ComparisonWindow
	TopDroppers  []SpendingMovement `json:"top_droppers"`
	TopIncreases []SpendingMovement `json:"top_increases"`
}
