package domain

import (
	"sort"
	"strings"
)

// RevenueBracket é o código de faixa de receita anual vindo do documento de enriquecimento
type RevenueBracket string

const (
	RevenueUnder1M     RevenueBracket = "under-1m"
	Revenue1MTo10M     RevenueBracket = "1m-10m"
	Revenue10MTo50M    RevenueBracket = "10m-50m"
	Revenue50MTo100M   RevenueBracket = "50m-100m"
	Revenue100MTo200M  RevenueBracket = "100m-200m"
	Revenue200MTo1B    RevenueBracket = "200m-1b"
	RevenueOver1B      RevenueBracket = "over-1b"
	revenueBracketNone RevenueBracket = ""
)

// orderedRevenueBrackets define a ordem total das faixas (menor -> maior)
var orderedRevenueBrackets = []RevenueBracket{
	RevenueUnder1M,
	Revenue1MTo10M,
	Revenue10MTo50M,
	Revenue50MTo100M,
	Revenue100MTo200M,
	Revenue200MTo1B,
	RevenueOver1B,
}

var revenueBracketLabels = map[RevenueBracket]string{
	RevenueUnder1M:    "Under $1M",
	Revenue1MTo10M:    "$1M to $10M",
	Revenue10MTo50M:   "$10M to $50M",
	Revenue50MTo100M:  "$50M to $100M",
	Revenue100MTo200M: "$100M to $200M",
	Revenue200MTo1B:   "$200M to $1B",
	RevenueOver1B:     "Over $1B",
}

// RevenueBrackets retorna todas as faixas conhecidas em ordem crescente
func RevenueBrackets() []RevenueBracket {
	brackets := make([]RevenueBracket, len(orderedRevenueBrackets))
	copy(brackets, orderedRevenueBrackets)
	return brackets
}

// ParseRevenueBracket normaliza o código e informa se ele pertence ao conjunto conhecido
func ParseRevenueBracket(raw string) (RevenueBracket, bool) {
	bracket := RevenueBracket(strings.ToLower(strings.TrimSpace(raw)))
	if !bracket.Valid() {
		return revenueBracketNone, false
	}
	return bracket, true
}

func (b RevenueBracket) Valid() bool {
	return b.Rank() > 0
}

// Rank retorna a posição da faixa (1 = menor). Faixas desconhecidas retornam 0.
func (b RevenueBracket) Rank() int {
	for i, bracket := range orderedRevenueBrackets {
		if bracket == b {
			return i + 1
		}
	}
	return 0
}

// Label retorna o texto de exibição. Para códigos desconhecidos mantém o formato legado
// ("5m-15m" -> "5 million to 15 million").
func (b RevenueBracket) Label() string {
	if label, ok := revenueBracketLabels[b]; ok {
		return label
	}
	if b == revenueBracketNone {
		return ""
	}

	label := strings.ReplaceAll(string(b), "-", " to ")
	label = strings.ReplaceAll(label, "m", " million")
	label = strings.ReplaceAll(label, "b", " billion")
	return label
}

func (b RevenueBracket) String() string {
	return string(b)
}

// CompareRevenueBrackets compara pela posição na ordem das faixas, nunca pelo texto
func CompareRevenueBrackets(a, b RevenueBracket) int {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// SortRevenueBrackets ordena in-place da menor para a maior faixa
func SortRevenueBrackets(brackets []RevenueBracket) {
	sort.SliceStable(brackets, func(i, j int) bool {
		return CompareRevenueBrackets(brackets[i], brackets[j]) < 0
	})
}
