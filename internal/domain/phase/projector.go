// Package phase buckets loans into the coarse four-phase dashboard view.
// The projection is recomputed from loan statuses on every call and is never
// the source of truth for a loan's phase.
package phase

import (
	"lendcore-backend/internal/domain/loan"
)

const (
	AutoAssessment  = 1
	ManagerApproval = 2
	Disbursement    = 3
	Live            = 4
)

var names = map[int]string{
	AutoAssessment:  "Auto-Assessment",
	ManagerApproval: "Manager Approval",
	Disbursement:    "Disbursement",
	Live:            "Live",
}

// statusPhase collapses the seven fine-grained statuses into four phases.
// Rejected loans belong to no phase.
var statusPhase = map[loan.Status]int{
	loan.StatusPending:      AutoAssessment,
	loan.StatusUnderReview:  AutoAssessment,
	loan.StatusNeedApproval: ManagerApproval,
	loan.StatusApproved:     Disbursement,
	loan.StatusDisbursed:    Live,
	loan.StatusActive:       Live,
	loan.StatusInArrears:    Live,
}

type Bucket struct {
	Phase   int      `json:"phase"`
	Name    string   `json:"name"`
	LoanIDs []string `json:"loan_ids"`
	Count   int      `json:"count"`
}

type Projection struct {
	Buckets []Bucket `json:"buckets"`
	// Total counts only loans that fall into a phase; rejected are excluded.
	Total int `json:"total"`
}

// Of returns the phase for a status, false for statuses outside the pipeline
// view (rejected).
func Of(s loan.Status) (int, bool) {
	p, ok := statusPhase[s]
	return p, ok
}

// Name returns the display name of a phase.
func Name(p int) string { return names[p] }

// Project buckets the given loans by phase. Idempotent and allocation-fresh
// on every call.
func Project(loans []loan.Loan) Projection {
	out := Projection{Buckets: make([]Bucket, 0, 4)}
	byPhase := map[int][]string{}
	for _, l := range loans {
		p, ok := Of(l.Status)
		if !ok {
			continue
		}
		byPhase[p] = append(byPhase[p], l.LoanID)
		out.Total++
	}
	for p := AutoAssessment; p <= Live; p++ {
		ids := byPhase[p]
		if ids == nil {
			ids = []string{}
		}
		out.Buckets = append(out.Buckets, Bucket{
			Phase:   p,
			Name:    names[p],
			LoanIDs: ids,
			Count:   len(ids),
		})
	}
	return out
}
