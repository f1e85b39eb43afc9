// Package protocol implements the two-phase commit state machine: the
// prepare/vote round, the unanimous-commit decision rule, and the
// commit/abort dissemination round. Participants and the coordinator are
// in-process structures driven by direct synchronous calls; transport,
// timeouts, and crash recovery are a caller concern.
package protocol
