package payrate

import "errors"

var (
	ErrRateNotFound    = errors.New("no pay rate covers the requested date")
	ErrPayRateNotFound = errors.New("pay rate not found")
)
