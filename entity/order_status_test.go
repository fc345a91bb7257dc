package entity

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusPreparing},
		{StatusConfirmed, StatusCancelled},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusDelivered},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s→%s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to OrderStatus
	}{
		{StatusPending, StatusPreparing},
		{StatusPending, StatusReady},
		{StatusPending, StatusDelivered},
		{StatusConfirmed, StatusReady},
		{StatusPreparing, StatusCancelled},
		{StatusPreparing, StatusDelivered},
		{StatusReady, StatusCancelled},
		{StatusDelivered, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusConfirmed, StatusPending}, // no going backwards
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s→%s should be denied", tc.from, tc.to)
		}
	}
}

func TestOrderStatusCanCancel(t *testing.T) {
	cancellable := map[OrderStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusPreparing: false,
		StatusReady:     false,
		StatusDelivered: false,
		StatusCancelled: false,
	}
	for s, want := range cancellable {
		if got := s.CanCancel(); got != want {
			t.Errorf("%s.CanCancel() = %v, want %v", s, got, want)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, s := range []OrderStatus{StatusDelivered, StatusCancelled} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	if OrderStatus("bogus").Terminal() {
		t.Error("unknown status must not report terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	if s, ok := ParseOrderStatus("preparing"); !ok || s != StatusPreparing {
		t.Errorf("ParseOrderStatus(preparing) = %v, %v", s, ok)
	}
	if _, ok := ParseOrderStatus("shipped"); ok {
		t.Error("ParseOrderStatus(shipped) should fail")
	}
	if _, ok := ParseOrderStatus(""); ok {
		t.Error("ParseOrderStatus(empty) should fail")
	}
}
