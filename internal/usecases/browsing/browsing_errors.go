package browsing

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

var (
	// Erros de consulta
	ErrCompanyNotFound = errors.Wrap(domain.ErrNotFound, "company")
	ErrPersonNotFound  = errors.Wrap(domain.ErrNotFound, "person")

	// Erros de banco de dados
	ErrListCompanies = errors.New("error listing companies")
	ErrFetchCompany  = errors.New("error fetching company")
	ErrFetchPerson   = errors.New("error fetching person")
)

// BrowsingError carrega o código de API junto do erro base
type BrowsingError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	Resource string // Domínio ou id consultado (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *BrowsingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BrowsingError) Unwrap() error {
	return e.Err
}

func NewBrowsingError(err error, code string, details string) *BrowsingError {
	return &BrowsingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewBrowsingErrorWithResource(err error, code string, resource string, details string) *BrowsingError {
	return &BrowsingError{
		Err:      err,
		Code:     code,
		Resource: resource,
		Details:  details,
	}
}
