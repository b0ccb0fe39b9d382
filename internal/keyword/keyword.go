// Package keyword holds the normalized query type and the records produced by an analysis.
package keyword

import (
	"errors"
	"strings"
)

var ErrEmpty = errors.New("keyword is empty")

// Keyword is a trimmed, lower-cased, non-empty query. It is the only cache and dedup key.
type Keyword string

func Normalize(raw string) (Keyword, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", ErrEmpty
	}
	return Keyword(normalized), nil
}

func (k Keyword) String() string {
	return string(k)
}
