// Command twopc runs one two-phase commit round over a configured set of
// participants and prints the decision flow and final states.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"twopc/internal/config"
	"twopc/internal/protocol"
	"twopc/internal/report"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var (
		scenarioPath     string
		participantsSpec string
	)

	cmd := &cobra.Command{
		Use:           "twopc",
		Short:         "twopc simulates a two-phase commit round across a set of participants",
		SilenceErrors: true,
		Example: `
  # Built-in demo: A and B vote yes, C votes no, so everyone aborts
  twopc

  # Inline participant list
  twopc --participants "a=yes,b=yes,c=yes"

  # Scenario from a YAML file
  twopc --scenario scenario.yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			sc, err := loadScenario(scenarioPath, participantsSpec)
			if err != nil {
				return err
			}

			coord, err := protocol.NewCoordinator(sc.BuildParticipants())
			if err != nil {
				return err
			}

			log.Printf("[%s] running two-phase commit: scenario=%s participants=%d",
				coord.TxID(), sc.Name, len(sc.Participants))

			decision, err := coord.Run()
			if err != nil {
				return err
			}
			log.Printf("[%s] decision: %s", coord.TxID(), decision)

			report.Write(os.Stdout, coord)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a YAML scenario file")
	cmd.Flags().StringVar(&participantsSpec, "participants", "", `participant list, e.g. "a=yes,b=yes,c=no"`)
	cmd.MarkFlagsMutuallyExclusive("scenario", "participants")

	return cmd
}

func loadScenario(scenarioPath, participantsSpec string) (*config.Scenario, error) {
	switch {
	case scenarioPath != "":
		return config.Load(scenarioPath)
	case participantsSpec != "":
		specs, err := config.ParseParticipants(participantsSpec)
		if err != nil {
			return nil, err
		}
		sc := &config.Scenario{Name: "cli", Participants: specs}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("--participants: %w", err)
		}
		return sc, nil
	default:
		return defaultScenario(), nil
	}
}

// defaultScenario mirrors the classic demo: one NO vote forces a global
// abort even though the other participants were ready to commit.
func defaultScenario() *config.Scenario {
	return &config.Scenario{
		Name: "demo",
		Participants: []config.ParticipantSpec{
			{Name: "A", Vote: "yes"},
			{Name: "B", Vote: "yes"},
			{Name: "C", Vote: "no"},
		},
	}
}
