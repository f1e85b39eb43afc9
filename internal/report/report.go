package report

import (
	"fmt"
	"io"
	"strings"

	"twopc/internal/protocol"
)

// Write renders a coordinator's run to w: transaction ID, coordinator
// log, per-participant state and log, and the final decision. A
// coordinator that has not run yet renders with a pending decision.
func Write(w io.Writer, c *protocol.Coordinator) {
	fmt.Fprintf(w, "transaction %s\n", c.TxID())

	fmt.Fprintln(w, "coordinator log:")
	for _, line := range c.Log() {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintln(w, "participant logs:")
	for _, p := range c.Participants() {
		fmt.Fprintf(w, "  %s (%s): %s\n", p.Name(), p.State(), strings.Join(p.Log(), "; "))
	}

	if decision, ok := c.Decision(); ok {
		fmt.Fprintf(w, "final decision: %s\n", decision)
	} else {
		fmt.Fprintln(w, "final decision: (pending)")
	}
}
