package utils

import "github.com/shopspring/decimal"

// FormatPercentage formata a variação com sinal explícito, ex: "+50.00%" e "-33.33%"
func FormatPercentage(value decimal.Decimal) string {
	formatted := value.StringFixed(2) + "%"
	if value.IsPositive() {
		return "+" + formatted
	}
	return formatted
}
