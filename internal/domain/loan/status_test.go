package loan

import "testing"

func TestNext_LinearPipeline(t *testing.T) {
	steps := []struct {
		from, to Status
	}{
		{StatusPending, StatusUnderReview},
		{StatusUnderReview, StatusNeedApproval},
		{StatusNeedApproval, StatusApproved},
		{StatusApproved, StatusDisbursed},
		{StatusDisbursed, StatusActive},
	}
	for _, s := range steps {
		got, ok := Next(s.from)
		if !ok {
			t.Fatalf("Next(%s): no step, want %s", s.from, s.to)
		}
		if got != s.to {
			t.Fatalf("Next(%s) = %s, want %s", s.from, got, s.to)
		}
	}
}

func TestNext_NoStepPastActive(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusInArrears, StatusRejected} {
		if got, ok := Next(s); ok {
			t.Fatalf("Next(%s) = %s, want no step", s, got)
		}
	}
}

func TestCanTransition_RejectFromNonTerminal(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusUnderReview, StatusNeedApproval, StatusApproved, StatusDisbursed} {
		if !CanTransition(s, StatusRejected) {
			t.Fatalf("CanTransition(%s, rejected) = false, want true", s)
		}
	}
	for _, s := range []Status{StatusActive, StatusInArrears, StatusRejected} {
		if CanTransition(s, StatusRejected) {
			t.Fatalf("CanTransition(%s, rejected) = true, want false", s)
		}
	}
}

func TestCanTransition_NoSkipping(t *testing.T) {
	// jumping two steps ahead is never legal
	if CanTransition(StatusPending, StatusNeedApproval) {
		t.Fatal("pending → need_approval must be illegal")
	}
	if CanTransition(StatusUnderReview, StatusApproved) {
		t.Fatal("under_review → approved must be illegal")
	}
	if CanTransition(StatusNeedApproval, StatusDisbursed) {
		t.Fatal("need_approval → disbursed must be illegal")
	}
	// and so is moving backwards
	if CanTransition(StatusApproved, StatusPending) {
		t.Fatal("approved → pending must be illegal")
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusInArrears, StatusRejected} {
		if !s.Terminal() {
			t.Fatalf("%s.Terminal() = false, want true", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusUnderReview, StatusNeedApproval, StatusApproved, StatusDisbursed} {
		if s.Terminal() {
			t.Fatalf("%s.Terminal() = true, want false", s)
		}
	}
}

func TestStatusAndMethodValid(t *testing.T) {
	if Status("proposed").Valid() {
		t.Fatal("unknown status must be invalid")
	}
	if !StatusNeedApproval.Valid() {
		t.Fatal("need_approval must be valid")
	}
	if InterestMethod("compound").Valid() {
		t.Fatal("unknown interest method must be invalid")
	}
	if !MethodReducingBalance.Valid() {
		t.Fatal("reducing_balance must be valid")
	}
}
