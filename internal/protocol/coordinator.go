package protocol

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrAlreadyRun is returned when Run is invoked more than once on the
// same coordinator. A coordinator drives exactly one protocol run.
var ErrAlreadyRun = errors.New("coordinator: protocol already run")

type phase int

const (
	phaseNotStarted phase = iota
	phasePreparing
	phaseDecided
	phaseDisseminated
)

// Coordinator drives one run of two-phase commit across an ordered set
// of participants. Order matters only for log and report ordering; the
// decision rule itself is order-independent.
type Coordinator struct {
	txID         uuid.UUID
	participants []*Participant
	decision     *Decision
	log          []string
	phase        phase
}

// NewCoordinator creates a coordinator for one transaction over the
// given participants. Names must be unique: phase-1 votes are keyed by
// name, and a duplicate would silently shadow another participant's vote.
func NewCoordinator(participants []*Participant) (*Coordinator, error) {
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := seen[p.Name()]; ok {
			return nil, fmt.Errorf("coordinator: duplicate participant name %q", p.Name())
		}
		seen[p.Name()] = struct{}{}
	}

	return &Coordinator{
		txID:         uuid.New(),
		participants: participants,
		phase:        phaseNotStarted,
	}, nil
}

// TxID returns the identifier generated for this transaction.
func (c *Coordinator) TxID() uuid.UUID {
	return c.txID
}

// Participants returns a copy of the participant list in sequence order.
func (c *Coordinator) Participants() []*Participant {
	out := make([]*Participant, len(c.participants))
	copy(out, c.participants)
	return out
}

// Decision returns the global outcome and whether it has been computed
// yet. It is absent until phase 1 completes and immutable afterwards.
func (c *Coordinator) Decision() (Decision, bool) {
	if c.decision == nil {
		return DecisionCommit, false
	}
	return *c.decision, true
}

// Log returns a copy of the coordinator's action log in append order.
func (c *Coordinator) Log() []string {
	out := make([]string, len(c.log))
	copy(out, c.log)
	return out
}

// Run executes the two phases over this coordinator's participants and
// returns the global decision: COMMIT iff every participant votes YES,
// ABORT otherwise. An empty participant set commits, since unanimity
// over no votes holds vacuously. Every participant is asked to vote even
// after a NO has been seen, so every vote log is always populated.
//
// Run may be called once; later calls return ErrAlreadyRun, including
// after a run that failed on a participant contract error.
func (c *Coordinator) Run() (Decision, error) {
	if c.phase != phaseNotStarted {
		return DecisionAbort, ErrAlreadyRun
	}

	// Phase 1: prepare.
	c.phase = phasePreparing
	c.log = append(c.log, "PHASE 1: PREPARE")

	votes := make(map[string]Vote, len(c.participants))
	for _, p := range c.participants {
		vote, err := p.Prepare()
		if err != nil {
			return DecisionAbort, fmt.Errorf("coordinator: prepare: %w", err)
		}
		votes[p.Name()] = vote
		c.log = append(c.log, fmt.Sprintf("%s -> %s", p.Name(), vote))
	}

	// Unanimity rule: any NO forces ABORT.
	decision := DecisionCommit
	for _, vote := range votes {
		if vote == VoteNo {
			decision = DecisionAbort
			break
		}
	}
	c.decision = &decision
	c.phase = phaseDecided
	c.log = append(c.log, "DECISION: "+decision.String())

	// Phase 2: disseminate.
	c.log = append(c.log, "PHASE 2: "+decision.String())
	for _, p := range c.participants {
		var err error
		switch decision {
		case DecisionCommit:
			err = p.Commit()
		case DecisionAbort:
			err = p.Abort()
		}
		if err != nil {
			return DecisionAbort, fmt.Errorf("coordinator: disseminate %s: %w", decision, err)
		}
		c.log = append(c.log, fmt.Sprintf("%s -> %s", p.Name(), p.State()))
	}
	c.phase = phaseDisseminated

	return decision, nil
}
