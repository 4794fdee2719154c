package ride

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		current string
		next    string
		want    bool
	}{
		{StatusRequested, StatusAssigned, true},
		{StatusRequested, StatusCancelled, true},
		{StatusRequested, StatusCompleted, false},
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusAssigned, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusAssigned, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.current, tt.next); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.current, tt.next, got, tt.want)
		}
	}
}
