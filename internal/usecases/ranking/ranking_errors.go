package ranking

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrFetchDroppers  = errors.New("error fetching top droppers")
	ErrFetchIncreases = errors.New("error fetching top increases")
)

// RankingError é um erro com contexto adicional para o relatório de movimentação
type RankingError struct {
	Err     error
	Code    string
	Period  int
	Details string
}

func (e *RankingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RankingError) Unwrap() error {
	return e.Err
}

func NewRankingError(err error, code string, period int, details string) *RankingError {
	return &RankingError{
		Err:     err,
		Code:    code,
		Period:  period,
		Details: details,
	}
}
