package usecase

import (
	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/model"
)

func toDecisionResponse(d model.Decision, cached bool) dto.DecisionResponse {
	rec := d.DecisionRecord()
	labels, values := rec.Explanation.Table.ChartSeries()

	resp := dto.DecisionResponse{
		ID:                  d.ID(),
		TenantID:            d.TenantID(),
		CustomerRef:         d.CustomerRef(),
		Profile:             rec.Profile().String(),
		OracleVersion:       d.OracleVersion(),
		InterestRate:        rec.Prediction.Rate,
		InterestRateDisplay: dto.FormatPercent(rec.Prediction.Rate),
		Confidence:          rec.Confidence.String(),
		ConfidenceDisplay:   rec.Confidence.String(),
		Tier: dto.TierResponse{
			Label:           rec.Tier.Label(),
			BackgroundColor: rec.Tier.BackgroundColor(),
			TextColor:       rec.Tier.TextColor(),
		},
		ReasonsTable:    make([]dto.ReasonResponse, 0, len(rec.Explanation.Table)),
		PositiveReasons: rec.Explanation.PositiveReasons,
		NegativeReasons: rec.Explanation.NegativeReasons,
		TotalScore:      rec.Explanation.TotalScore(),
		Favorability:    rec.Explanation.Favorability().Round(2),
		OverallProfile:  rec.Explanation.OverallProfile().String(),
		ChartData:       dto.ChartData{Labels: labels, Values: values},
		Diagnostics: dto.DiagnosticsResponse{
			UnexplainedRejection: rec.Diagnostics.UnexplainedRejection,
			ConfidenceNote:       rec.Diagnostics.ConfidenceNote,
		},
		Cached:      cached,
		EvaluatedAt: d.EvaluatedAt(),
	}
	if v, ok := rec.Confidence.Value(); ok {
		resp.ConfidenceDisplay = dto.FormatPercent(v)
	}

	for _, e := range rec.Explanation.Table {
		resp.ReasonsTable = append(resp.ReasonsTable, dto.ReasonResponse{
			Factor:          e.Factor,
			Description:     e.Description,
			Impact:          e.Impact.String(),
			NumericalImpact: dto.FormatSignedPercent(e.NumericalImpact),
		})
	}

	if rec.Profile().IsLoan() {
		eligible := rec.Prediction.Eligible
		amount := rec.Prediction.MaxAmount
		resp.Eligible = &eligible
		resp.MaxAmount = &amount
		for _, r := range rec.Rejections {
			resp.Rejections = append(resp.Rejections, dto.RejectionResponse{Reason: r.Reason, Suggestion: r.Suggestion})
		}
	}

	return resp
}

func toRepaymentResponse(p model.RepaymentPlan) dto.RepaymentPlanResponse {
	resp := dto.RepaymentPlanResponse{
		LoanAmount:      p.Principal,
		InterestRate:    p.AnnualRate,
		TenureYears:     p.Years,
		EMI:             p.EMI,
		TotalRepayment:  p.TotalRepayment,
		InterestPayable: p.InterestPayable,
		Schedule:        make([]dto.RepaymentYearResponse, 0, len(p.Schedule)),
	}
	for _, y := range p.Schedule {
		resp.Schedule = append(resp.Schedule, dto.RepaymentYearResponse{
			Year:           y.Year,
			OpeningBalance: y.OpeningBalance,
			Paid:           y.Paid,
			Interest:       y.Interest,
			Principal:      y.Principal,
			ClosingBalance: y.ClosingBalance,
		})
	}
	return resp
}

func toDepositQuoteResponse(q model.MaturityQuote) dto.DepositQuoteResponse {
	return dto.DepositQuoteResponse{
		Amount:         q.Amount,
		InterestRate:   q.Rate,
		PeriodYears:    q.Years,
		MaturityAmount: q.MaturityAmount,
		StartDate:      q.StartDate,
		MaturityDate:   q.MaturityDate,
	}
}
