// Package config defines transaction scenarios for the harness: which
// participants take part in a run and how each will vote. Scenarios come
// from a YAML file or from a compact command-line string; the core
// protocol never sees this package.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"twopc/internal/protocol"
)

// ParticipantSpec describes one participant in a scenario.
type ParticipantSpec struct {
	Name string `yaml:"name"`
	Vote string `yaml:"vote"`
}

// Scenario holds one transaction's participant set.
type Scenario struct {
	Name         string            `yaml:"name"`
	Participants []ParticipantSpec `yaml:"participants"`
}

// ParseParticipants parses a comma-separated participant list in the
// format "a=yes,b=yes,c=no".
func ParseParticipants(spec string) ([]ParticipantSpec, error) {
	if spec == "" {
		return []ParticipantSpec{}, nil
	}

	parts := strings.Split(spec, ",")
	specs := make([]ParticipantSpec, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid participant format: %s (expected name=yes|no)", part)
		}

		name := strings.TrimSpace(kv[0])
		vote := strings.TrimSpace(kv[1])

		if name == "" || vote == "" {
			return nil, fmt.Errorf("participant name and vote cannot be empty: %s", part)
		}

		specs = append(specs, ParticipantSpec{
			Name: name,
			Vote: vote,
		})
	}

	return specs, nil
}

// Load reads a scenario from a YAML file and validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return &sc, nil
}

// Validate checks that participant names are non-empty and unique and
// that every vote is yes or no. An empty participant list is valid.
func (s *Scenario) Validate() error {
	seen := make(map[string]struct{}, len(s.Participants))

	for _, p := range s.Participants {
		if p.Name == "" {
			return fmt.Errorf("participant with empty name")
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("duplicate participant name %q", p.Name)
		}
		seen[p.Name] = struct{}{}

		if _, err := parseVote(p.Vote); err != nil {
			return fmt.Errorf("participant %s: %w", p.Name, err)
		}
	}

	return nil
}

// BuildParticipants converts the scenario's specs into protocol
// participants, in scenario order. The scenario must be valid.
func (s *Scenario) BuildParticipants() []*protocol.Participant {
	participants := make([]*protocol.Participant, 0, len(s.Participants))

	for _, spec := range s.Participants {
		voteYes, err := parseVote(spec.Vote)
		if err != nil {
			// Validate catches this; a bad vote here is a harness bug.
			panic(fmt.Sprintf("unvalidated scenario: %v", err))
		}
		participants = append(participants, protocol.NewParticipant(spec.Name, voteYes))
	}

	return participants
}

func parseVote(vote string) (bool, error) {
	switch strings.ToLower(vote) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid vote %q (expected yes or no)", vote)
	}
}
