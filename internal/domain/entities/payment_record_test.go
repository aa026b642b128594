package entities

import "testing"

var allStatuses = []PaymentStatus{
	StatusPending, StatusInitiated, StatusPaid, StatusFailed,
	StatusRefunded, StatusCODCollected, StatusSettled,
}

func TestCanTransition_EnumeratedFlow(t *testing.T) {
	allowed := []struct{ from, to PaymentStatus }{
		{StatusPending, StatusInitiated},
		{StatusPending, StatusCODCollected},
		{StatusInitiated, StatusPaid},
		{StatusInitiated, StatusFailed},
		{StatusFailed, StatusInitiated},
		{StatusPaid, StatusRefunded},
		{StatusCODCollected, StatusSettled},
	}

	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Fatalf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}
}

// TestCanTransition_Closure walks the full state product and asserts that
// nothing outside the enumerated flow is reachable. Terminal states
// (refunded, settled) admit no transition at all.
func TestCanTransition_Closure(t *testing.T) {
	allowed := map[PaymentStatus]map[PaymentStatus]bool{
		StatusPending:      {StatusInitiated: true, StatusCODCollected: true},
		StatusInitiated:    {StatusPaid: true, StatusFailed: true},
		StatusFailed:       {StatusInitiated: true},
		StatusPaid:         {StatusRefunded: true},
		StatusCODCollected: {StatusSettled: true},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_NoReentry(t *testing.T) {
	for _, from := range allStatuses {
		if CanTransition(from, StatusPending) {
			t.Fatalf("re-entering pending from %s must be illegal", from)
		}
		if CanTransition(from, from) {
			t.Fatalf("self transition from %s must be illegal", from)
		}
	}
	if CanTransition(StatusSettled, StatusCODCollected) || CanTransition(StatusRefunded, StatusPaid) {
		t.Fatal("terminal states must not transition")
	}
}
