package loan

// Status is the fine-grained lifecycle state of a loan. The pipeline is
// linear: pending → under_review → need_approval → approved → disbursed →
// active, with rejected reachable from any non-terminal state.
type Status string

const (
	StatusPending      Status = "pending"
	StatusUnderReview  Status = "under_review"
	StatusNeedApproval Status = "need_approval"
	StatusApproved     Status = "approved"
	StatusDisbursed    Status = "disbursed"
	StatusActive       Status = "active"
	// StatusInArrears is set by repayment tracking, not by this engine; it
	// still participates in phase projection.
	StatusInArrears Status = "in_arrears"
	StatusRejected  Status = "rejected"
)

// next holds the single forward step for each advanceable status.
var next = map[Status]Status{
	StatusPending:      StatusUnderReview,
	StatusUnderReview:  StatusNeedApproval,
	StatusNeedApproval: StatusApproved,
	StatusApproved:     StatusDisbursed,
	StatusDisbursed:    StatusActive,
}

// legal is the full table of allowed (from → to) pairs. Anything not listed
// is an illegal transition.
var legal = map[Status]map[Status]bool{
	StatusPending:      {StatusUnderReview: true, StatusRejected: true},
	StatusUnderReview:  {StatusNeedApproval: true, StatusRejected: true},
	StatusNeedApproval: {StatusApproved: true, StatusRejected: true},
	StatusApproved:     {StatusDisbursed: true, StatusRejected: true},
	StatusDisbursed:    {StatusActive: true, StatusRejected: true},
}

// Next returns the single forward step from s, if one exists.
func Next(s Status) (Status, bool) {
	n, ok := next[s]
	return n, ok
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to Status) bool {
	return legal[from][to]
}

// Terminal reports whether no further transitions exist for s. Active and
// in_arrears loans are live but are beyond this engine's reach; rejected is
// terminal outright.
func (s Status) Terminal() bool {
	return len(legal[s]) == 0
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusNeedApproval,
		StatusApproved, StatusDisbursed, StatusActive, StatusInArrears, StatusRejected:
		return true
	}
	return false
}
