package summary

import "errors"

var (
	ErrSummaryNotFound  = errors.New("monthly summary not found")
	ErrSummaryFinalized = errors.New("monthly summary is finalized")
)
