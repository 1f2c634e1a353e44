package payroll

import "fmt"

// transitions holds the legal status edges. Cancelled is reachable from any
// non-terminal status; paid and cancelled are terminal.
var transitions = map[BatchStatus][]BatchStatus{
	BatchStatusDraft:      {BatchStatusProcessing, BatchStatusCancelled},
	BatchStatusProcessing: {BatchStatusApproved, BatchStatusDraft, BatchStatusCancelled},
	BatchStatusApproved:   {BatchStatusPaid, BatchStatusDraft, BatchStatusCancelled},
	BatchStatusPaid:       {},
	BatchStatusCancelled:  {},
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to BatchStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EnsureTransition returns ErrIllegalTransition with both statuses when the
// edge is not legal.
func EnsureTransition(from, to BatchStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s BatchStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsMutable reports whether entries of a batch in this status may be
// created, updated or deleted.
func (s BatchStatus) IsMutable() bool {
	return s == BatchStatusDraft
}

// EnsureMutable returns ErrBatchLocked when the batch's entries may not be
// modified in its current status.
func EnsureMutable(status BatchStatus) error {
	if !status.IsMutable() {
		return fmt.Errorf("%w (status: %s)", ErrBatchLocked, status)
	}
	return nil
}
