package protocol

import "fmt"

// Vote is a participant's answer to the prepare request.
type Vote int

const (
	VoteYes Vote = iota
	VoteNo
)

func (v Vote) String() string {
	switch v {
	case VoteYes:
		return "YES"
	case VoteNo:
		return "NO"
	default:
		return fmt.Sprintf("VOTE(%d)", int(v))
	}
}

// Decision is the coordinator's global outcome for one transaction.
type Decision int

const (
	DecisionCommit Decision = iota
	DecisionAbort
)

func (d Decision) String() string {
	switch d {
	case DecisionCommit:
		return "COMMIT"
	case DecisionAbort:
		return "ABORT"
	default:
		return fmt.Sprintf("DECISION(%d)", int(d))
	}
}

// State is a participant's local commitment state. Transitions are
// monotonic within one transaction: INIT -> READY -> COMMITTED, or
// INIT/READY -> ABORTED. COMMITTED and ABORTED are terminal.
type State int

const (
	StateInit State = iota
	StateReady
	StateCommitted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateReady:
		return "READY"
	case StateCommitted:
		return "COMMITTED"
	case StateAborted:
		return "ABORTED"
	default:
		return fmt.Sprintf("STATE(%d)", int(s))
	}
}
