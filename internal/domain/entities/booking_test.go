package entities

import "testing"

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusPending, BookingStatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if BookingStatus("Assigned").Valid() {
		t.Error("project-status vocabulary must not leak into booking status")
	}
	if BookingStatus("").Valid() {
		t.Error("empty status must be invalid")
	}
}

func TestProjectStatus_SequenceOrder(t *testing.T) {
	if len(ProjectStatusSequence) != 6 {
		t.Fatalf("expected 6 project statuses, got %d", len(ProjectStatusSequence))
	}
	if ProjectStatusSequence[0] != ProjectStatusAssigned {
		t.Errorf("sequence must start at Assigned, got %s", ProjectStatusSequence[0])
	}
	if ProjectStatusSequence[len(ProjectStatusSequence)-1] != ProjectStatusCompleted {
		t.Errorf("sequence must end at Completed, got %s", ProjectStatusSequence[len(ProjectStatusSequence)-1])
	}

	for i, s := range ProjectStatusSequence {
		if s.Index() != i {
			t.Errorf("Index(%s): expected %d, got %d", s, i, s.Index())
		}
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
}

func TestProjectStatus_Invalid(t *testing.T) {
	for _, s := range []ProjectStatus{"", "pending", "Delivered", "assigned"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
		if s.Index() != -1 {
			t.Errorf("Index(%q): expected -1, got %d", s, s.Index())
		}
	}
}
