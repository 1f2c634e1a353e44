package payroll

import "errors"

var (
	ErrBatchNotFound     = errors.New("payroll batch not found")
	ErrEntryNotFound     = errors.New("payroll entry not found")
	ErrBatchLocked       = errors.New("payroll batch is not in draft, entries are locked")
	ErrIllegalTransition = errors.New("illegal batch status transition")
	ErrBatchEmpty        = errors.New("payroll batch has no entries")
	ErrInvalidEntryInput = errors.New("invalid entry input")
	ErrDuplicateEntry    = errors.New("worker already has an entry in this batch")
	ErrAdminRequired     = errors.New("admin privilege required for this batch operation")
)
