package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/model"
)

// PlanRepaymentUseCase computes an EMI and yearly amortization schedule.
type PlanRepaymentUseCase struct{}

func NewPlanRepaymentUseCase() *PlanRepaymentUseCase {
	return &PlanRepaymentUseCase{}
}

func (uc *PlanRepaymentUseCase) Execute(
	_ context.Context,
	req dto.PlanRepaymentRequest,
) (dto.RepaymentPlanResponse, error) {
	plan, err := model.PlanRepayment(req.LoanAmount, req.InterestRate, req.TenureYears)
	if err != nil {
		return dto.RepaymentPlanResponse{}, fmt.Errorf("plan repayment: %w", err)
	}
	return toRepaymentResponse(plan), nil
}
