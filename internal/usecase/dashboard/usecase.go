// Package dashboard projects the loan book into the four-phase queue view
// with per-phase risk summaries.
package dashboard

import (
	"context"

	"lendcore-backend/internal/domain/client"
	"lendcore-backend/internal/domain/loan"
	"lendcore-backend/internal/domain/phase"
	"lendcore-backend/internal/domain/risk"
)

type RiskSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type PhaseDTO struct {
	Phase   int         `json:"phase"`
	Name    string      `json:"name"`
	Count   int         `json:"count"`
	LoanIDs []string    `json:"loan_ids"`
	Risk    RiskSummary `json:"risk"`
}

type PhasesDTO struct {
	Phases []PhaseDTO `json:"phases"`
	Total  int        `json:"total"`
}

type Usecase struct {
	loans   loan.Repository
	clients client.Repository
}

func NewUsecase(loans loan.Repository, clients client.Repository) *Usecase {
	return &Usecase{loans: loans, clients: clients}
}

// Phases rebuilds the projection from loan statuses on every call; it is
// never a stored view.
func (u *Usecase) Phases(ctx context.Context) (*PhasesDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	cls, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*client.Client, len(cls))
	for i := range cls {
		byID[cls[i].ClientID] = &cls[i]
	}

	proj := phase.Project(ls)

	// risk level per loan, bucketed by phase
	levelByLoan := make(map[string]risk.Level, len(ls))
	for i := range ls {
		l := &ls[i]
		in := risk.Input{
			Principal:         l.Principal,
			AnnualRatePercent: l.AnnualRate,
			TenorMonths:       l.TenorMonths,
		}
		if cl := byID[l.ClientID]; cl != nil {
			in.DateOfBirth = cl.DateOfBirth
			in.HasGuarantor = cl.HasGuarantor
			in.HasCollateral = cl.HasCollateral
		}
		levelByLoan[l.LoanID] = risk.Classify(in).Level
	}

	out := &PhasesDTO{Phases: make([]PhaseDTO, 0, len(proj.Buckets)), Total: proj.Total}
	for _, b := range proj.Buckets {
		dto := PhaseDTO{Phase: b.Phase, Name: b.Name, Count: b.Count, LoanIDs: b.LoanIDs}
		for _, id := range b.LoanIDs {
			switch levelByLoan[id] {
			case risk.LevelHigh:
				dto.Risk.High++
			case risk.LevelMedium:
				dto.Risk.Medium++
			case risk.LevelLow:
				dto.Risk.Low++
			}
		}
		out.Phases = append(out.Phases, dto)
	}
	return out, nil
}
