package payroll

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to BatchStatus }{
		{BatchStatusDraft, BatchStatusProcessing},
		{BatchStatusProcessing, BatchStatusApproved},
		{BatchStatusApproved, BatchStatusPaid},
		{BatchStatusDraft, BatchStatusCancelled},
		{BatchStatusProcessing, BatchStatusCancelled},
		{BatchStatusApproved, BatchStatusCancelled},
		// reopen
		{BatchStatusProcessing, BatchStatusDraft},
		{BatchStatusApproved, BatchStatusDraft},
	}
	for _, c := range allowed {
		assert.True(t, CanTransition(c.from, c.to), "%s -> %s should be legal", c.from, c.to)
	}

	denied := []struct{ from, to BatchStatus }{
		{BatchStatusDraft, BatchStatusApproved},
		{BatchStatusDraft, BatchStatusPaid},
		{BatchStatusProcessing, BatchStatusPaid},
		{BatchStatusPaid, BatchStatusProcessing},
		{BatchStatusPaid, BatchStatusCancelled},
		{BatchStatusPaid, BatchStatusDraft},
		{BatchStatusCancelled, BatchStatusDraft},
		{BatchStatusCancelled, BatchStatusProcessing},
	}
	for _, c := range denied {
		assert.False(t, CanTransition(c.from, c.to), "%s -> %s should be illegal", c.from, c.to)
	}
}

func TestEnsureTransition(t *testing.T) {
	assert.NoError(t, EnsureTransition(BatchStatusDraft, BatchStatusProcessing))

	err := EnsureTransition(BatchStatusPaid, BatchStatusProcessing)
	assert.True(t, errors.Is(err, ErrIllegalTransition), "error = %v", err)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, BatchStatusPaid.IsTerminal())
	assert.True(t, BatchStatusCancelled.IsTerminal())
	assert.False(t, BatchStatusDraft.IsTerminal())
	assert.False(t, BatchStatusProcessing.IsTerminal())
	assert.False(t, BatchStatusApproved.IsTerminal())
}

func TestEnsureMutable(t *testing.T) {
	assert.NoError(t, EnsureMutable(BatchStatusDraft))

	for _, status := range []BatchStatus{BatchStatusProcessing, BatchStatusApproved, BatchStatusPaid, BatchStatusCancelled} {
		err := EnsureMutable(status)
		assert.True(t, errors.Is(err, ErrBatchLocked), "status %s: error = %v", status, err)
	}
}
