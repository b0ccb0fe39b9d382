package analysis

import "errors"

var (
	// ErrInvalidInput is returned for a blank keyword or an oversized bulk request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRateLimited is returned when a cache miss finds the request budget exhausted.
	// No upstream call is made in that case.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrAnalysisFailed covers every other internal fault. Callers get no further detail.
	ErrAnalysisFailed = errors.New("analysis failed")
)
