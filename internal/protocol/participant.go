package protocol

import "fmt"

// StateError reports a protocol operation invoked on a participant whose
// state does not permit it. It always indicates a caller contract
// violation, not a recoverable condition.
type StateError struct {
	Name  string
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("participant %s: %s not allowed in state %s", e.Name, e.Op, e.State)
}

// Participant is one resource manager's local view of the transaction.
// Its vote policy is fixed at construction; the protocol only moves its
// state and appends to its action log.
type Participant struct {
	name    string
	voteYes bool
	state   State
	log     []string
}

// NewParticipant creates a participant in state INIT with the given name
// and fixed vote policy.
func NewParticipant(name string, voteYes bool) *Participant {
	return &Participant{
		name:    name,
		voteYes: voteYes,
		state:   StateInit,
	}
}

// Name returns the participant's identity within the transaction.
func (p *Participant) Name() string {
	return p.name
}

// State returns the current commitment state.
func (p *Participant) State() State {
	return p.state
}

// Log returns a copy of the participant's action log in append order.
func (p *Participant) Log() []string {
	out := make([]string, len(p.log))
	copy(out, p.log)
	return out
}

// Prepare answers phase 1: can this participant commit? A YES policy
// moves the participant to READY; a NO policy moves it straight to
// ABORTED. Valid only in state INIT, so it can succeed at most once.
func (p *Participant) Prepare() (Vote, error) {
	if p.state != StateInit {
		return VoteNo, &StateError{Name: p.name, Op: "prepare", State: p.state}
	}

	if p.voteYes {
		p.state = StateReady
		p.log = append(p.log, "voted YES")
		return VoteYes, nil
	}

	p.state = StateAborted
	p.log = append(p.log, "voted NO")
	return VoteNo, nil
}

// Commit applies a COMMIT decision. Valid only in state READY; the
// coordinator must only send it when the participant voted YES and the
// global decision is COMMIT.
func (p *Participant) Commit() error {
	if p.state != StateReady {
		return &StateError{Name: p.name, Op: "commit", State: p.state}
	}

	p.state = StateCommitted
	p.log = append(p.log, "committed")
	return nil
}

// Abort applies an ABORT decision. Valid from READY (a YES voter told to
// abort) and from ABORTED (a NO voter receiving its phase-2 call); any
// other state is unreachable from a legitimate phase-2 call.
func (p *Participant) Abort() error {
	switch p.state {
	case StateReady, StateAborted:
	default:
		return &StateError{Name: p.name, Op: "abort", State: p.state}
	}

	p.state = StateAborted
	p.log = append(p.log, "aborted")
	return nil
}
