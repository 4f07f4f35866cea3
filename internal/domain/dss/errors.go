package dss

import "errors"

var (
	// ErrInvalidParameter flags unparseable report input. It is raised before
	// any query is issued.
	ErrInvalidParameter = errors.New("invalid report parameter")

	// ErrInvalidRange flags a reporting window whose end precedes its start.
	ErrInvalidRange = errors.New("window end precedes start")

	// ErrSourceUnavailable wraps any record-source failure. Reports are
	// idempotent reads, so callers may simply re-issue.
	ErrSourceUnavailable = errors.New("record source unavailable")
)
