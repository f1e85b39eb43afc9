// Package it provides an in-process integration harness that drives
// complete transaction scenarios through config, protocol, and report.
package it

import (
	"fmt"

	"twopc/internal/config"
	"twopc/internal/protocol"
)

// Run holds everything a completed scenario run exposes for inspection.
type Run struct {
	Scenario     *config.Scenario
	Coordinator  *protocol.Coordinator
	Participants []*protocol.Participant
	Decision     protocol.Decision
}

// Execute validates a scenario, builds its participants, and drives one
// full two-phase commit run.
func Execute(sc *config.Scenario) (*Run, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	participants := sc.BuildParticipants()
	coord, err := protocol.NewCoordinator(participants)
	if err != nil {
		return nil, err
	}

	decision, err := coord.Run()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	return &Run{
		Scenario:     sc,
		Coordinator:  coord,
		Participants: participants,
		Decision:     decision,
	}, nil
}
