package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/model"
)

// QuoteDepositUseCase quotes the maturity of a fixed deposit.
type QuoteDepositUseCase struct {
	now func() time.Time
}

func NewQuoteDepositUseCase() *QuoteDepositUseCase {
	return &QuoteDepositUseCase{now: time.Now}
}

func (uc *QuoteDepositUseCase) Execute(
	_ context.Context,
	req dto.QuoteDepositRequest,
) (dto.DepositQuoteResponse, error) {
	start := req.StartDate
	if start.IsZero() {
		start = uc.now().UTC().Truncate(24 * time.Hour)
	}

	quote, err := model.QuoteMaturity(req.Amount, req.InterestRate, req.PeriodYears, start)
	if err != nil {
		return dto.DepositQuoteResponse{}, fmt.Errorf("quote deposit: %w", err)
	}
	return toDepositQuoteResponse(quote), nil
}
