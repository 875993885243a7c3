package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/port"
)

// GetDecisionUseCase retrieves an audited decision by ID.
type GetDecisionUseCase struct {
	repo port.DecisionRepository
}

func NewGetDecisionUseCase(repo port.DecisionRepository) *GetDecisionUseCase {
	return &GetDecisionUseCase{repo: repo}
}

// Execute returns the stored decision for the tenant.
func (uc *GetDecisionUseCase) Execute(
	ctx context.Context,
	req dto.GetDecisionRequest,
) (dto.DecisionResponse, error) {
	decision, err := uc.repo.FindByID(ctx, req.TenantID, req.DecisionID)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("find decision: %w", err)
	}
	return toDecisionResponse(decision, false), nil
}
