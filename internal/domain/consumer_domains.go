package domain

import (
	"sort"
	"strings"
)

// defaultConsumerDomains são provedores de e-mail pessoal e serviços de consumo que não
// representam clientes empresariais
var defaultConsumerDomains = []string{
	"gmail.com",
	"googlemail.com",
	"yahoo.com",
	"ymail.com",
	"rocketmail.com",
	"hotmail.com",
	"outlook.com",
	"live.com",
	"msn.com",
	"aol.com",
	"icloud.com",
	"me.com",
	"mac.com",
	"protonmail.com",
	"proton.me",
	"mail.com",
	"gmx.com",
	"gmx.net",
	"yandex.com",
	"mail.ru",
	"zoho.com",
	"fastmail.com",
	"hey.com",
	"tutanota.com",
	"qq.com",
	"163.com",
	"comcast.net",
	"verizon.net",
	"att.net",
	"sbcglobal.net",
}

// DefaultConsumerDomains retorna uma cópia da lista padrão
func DefaultConsumerDomains() []string {
	domains := make([]string, len(defaultConsumerDomains))
	copy(domains, defaultConsumerDomains)
	return domains
}

// ConsumerDomains é o conjunto imutável de domínios excluídos das visões de clientes.
// O valor é construído uma vez a partir da configuração e injetado onde for necessário.
type ConsumerDomains struct {
	domains []string
	set     map[string]struct{}
}

func NewConsumerDomains(domains []string) ConsumerDomains {
	set := make(map[string]struct{}, len(domains))
	normalized := make([]string, 0, len(domains))

	for _, d := range domains {
		d = strings.Trim(strings.ToLower(strings.TrimSpace(d)), ".")
		if d == "" {
			continue
		}
		if _, exists := set[d]; exists {
			continue
		}
		set[d] = struct{}{}
		normalized = append(normalized, d)
	}

	sort.Strings(normalized)

	return ConsumerDomains{
		domains: normalized,
		set:     set,
	}
}

// List retorna os domínios normalizados (minúsculos, ordenados)
func (c ConsumerDomains) List() []string {
	domains := make([]string, len(c.domains))
	copy(domains, c.domains)
	return domains
}

func (c ConsumerDomains) Len() int {
	return len(c.domains)
}

// Matches informa se o domínio é igual a um domínio da lista ou subdomínio dele.
// "mail.gmail.com" casa com "gmail.com"; "gmail.com.example.org" não casa.
func (c ConsumerDomains) Matches(domain string) bool {
	domain = strings.Trim(strings.ToLower(strings.TrimSpace(domain)), ".")
	if domain == "" || len(c.set) == 0 {
		return false
	}

	if _, ok := c.set[domain]; ok {
		return true
	}

	for i := 0; i < len(domain); i++ {
		if domain[i] != '.' {
			continue
		}
		if _, ok := c.set[domain[i+1:]]; ok {
			return true
		}
	}

	return false
}
