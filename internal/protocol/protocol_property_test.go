package protocol

import (
	"fmt"
	"strings"
	"testing"
)

// TestProtocol_CommitIffUnanimousYes checks the unanimity rule over every
// vote combination for sets of up to four participants.
func TestProtocol_CommitIffUnanimousYes(t *testing.T) {
	for n := 0; n <= 4; n++ {
		for mask := 0; mask < (1 << n); mask++ {
			name := fmt.Sprintf("n=%d mask=%b", n, mask)
			t.Run(name, func(t *testing.T) {
				participants := make([]*Participant, n)
				allYes := true
				for i := 0; i < n; i++ {
					yes := mask&(1<<i) != 0
					if !yes {
						allYes = false
					}
					participants[i] = NewParticipant(fmt.Sprintf("p%d", i), yes)
				}

				coord, err := NewCoordinator(participants)
				if err != nil {
					t.Fatalf("NewCoordinator failed: %v", err)
				}
				decision, err := coord.Run()
				if err != nil {
					t.Fatalf("Run failed: %v", err)
				}

				want := DecisionAbort
				if allYes {
					want = DecisionCommit
				}
				if decision != want {
					t.Errorf("Expected %s, got %s", want, decision)
				}

				// Consistency: every participant lands on the terminal
				// state matching the decision, never INIT or READY.
				for _, p := range participants {
					wantState := StateAborted
					if decision == DecisionCommit {
						wantState = StateCommitted
					}
					if p.State() != wantState {
						t.Errorf("Participant %s: expected %s, got %s", p.Name(), wantState, p.State())
					}
				}
			})
		}
	}
}

// TestProtocol_LogCompleteness checks that every participant logs exactly
// one vote entry followed by exactly one outcome entry, and that the
// coordinator log has the full phase/decision shape.
func TestProtocol_LogCompleteness(t *testing.T) {
	tests := []struct {
		name  string
		votes []bool
	}{
		{"all yes", []bool{true, true, true}},
		{"one no", []bool{true, false, true}},
		{"all no", []bool{false, false}},
		{"single yes", []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participants := make([]*Participant, len(tt.votes))
			for i, yes := range tt.votes {
				participants[i] = NewParticipant(fmt.Sprintf("p%d", i), yes)
			}
			coord, err := NewCoordinator(participants)
			if err != nil {
				t.Fatalf("NewCoordinator failed: %v", err)
			}
			if _, err := coord.Run(); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			for _, p := range participants {
				log := p.Log()
				if len(log) != 2 {
					t.Fatalf("Participant %s: expected 2 log entries, got %v", p.Name(), log)
				}
				if !strings.HasPrefix(log[0], "voted ") {
					t.Errorf("Participant %s: first entry is not a vote: %q", p.Name(), log[0])
				}
				if log[1] != "committed" && log[1] != "aborted" {
					t.Errorf("Participant %s: second entry is not an outcome: %q", p.Name(), log[1])
				}
			}

			// Coordinator: phase-1 marker, n vote lines, decision marker,
			// phase-2 marker, n outcome lines.
			n := len(tt.votes)
			log := coord.Log()
			if len(log) != 2*n+3 {
				t.Fatalf("Expected %d coordinator log entries, got %v", 2*n+3, log)
			}
			if log[0] != "PHASE 1: PREPARE" {
				t.Errorf("Expected phase-1 marker first, got %q", log[0])
			}
			if !strings.HasPrefix(log[n+1], "DECISION: ") {
				t.Errorf("Expected decision marker at %d, got %q", n+1, log[n+1])
			}
			if !strings.HasPrefix(log[n+2], "PHASE 2: ") {
				t.Errorf("Expected phase-2 marker at %d, got %q", n+2, log[n+2])
			}
		})
	}
}

// TestProtocol_NoVoterAbortsRegardlessOfOthers checks that a NO voter
// ends ABORTED whatever the rest of the set does.
func TestProtocol_NoVoterAbortsRegardlessOfOthers(t *testing.T) {
	for others := 0; others <= 3; others++ {
		t.Run(fmt.Sprintf("others=%d", others), func(t *testing.T) {
			participants := []*Participant{NewParticipant("naysayer", false)}
			for i := 0; i < others; i++ {
				participants = append(participants, NewParticipant(fmt.Sprintf("p%d", i), true))
			}

			coord, err := NewCoordinator(participants)
			if err != nil {
				t.Fatalf("NewCoordinator failed: %v", err)
			}
			decision, err := coord.Run()
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if decision != DecisionAbort {
				t.Errorf("Expected ABORT, got %s", decision)
			}
			for _, p := range participants {
				if p.State() != StateAborted {
					t.Errorf("Participant %s: expected ABORTED, got %s", p.Name(), p.State())
				}
			}
		})
	}
}
