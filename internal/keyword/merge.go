package keyword

// MergeSuggestions concatenates the groups in the given order, keeps the first
// record seen for each keyword text and truncates the result to limit entries.
// A non-positive limit means no truncation.
func MergeSuggestions(limit int, groups ...[]Suggestion) []Suggestion {
	return merge(limit, func(s Suggestion) string { return s.Keyword }, groups)
}

// MergeQuestions behaves like MergeSuggestions, keyed by question text.
func MergeQuestions(limit int, groups ...[]Question) []Question {
	return merge(limit, func(q Question) string { return q.Question }, groups)
}

func merge[T any](limit int, key func(T) string, groups [][]T) []T {
	seen := make(map[string]struct{})
	merged := make([]T, 0)
	for _, group := range groups {
		for _, record := range group {
			k := key(record)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, record)
			if limit > 0 && len(merged) == limit {
				return merged
			}
		}
	}
	return merged
}
