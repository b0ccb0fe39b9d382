package keyword

import "math"

const (
	MaxScore = 100
	// MinScore is the floor for any score derived from real upstream data,
	// so a weak result still reads differently from "no data".
	MinScore     = 20
	NeutralScore = 50
)

// Scale maps a native upstream value onto [MinScore, MaxScore] by dividing it by an
// empirically chosen ceiling.
func Scale(raw, ceiling float64) int {
	if ceiling <= 0 {
		return MinScore
	}
	return Clamp(raw / ceiling * 100)
}

// Clamp rounds v and bounds it to [MinScore, MaxScore]. NaN maps to MinScore.
func Clamp(v float64) int {
	if math.IsNaN(v) {
		return MinScore
	}
	rounded := math.Round(v)
	if rounded < MinScore {
		return MinScore
	}
	if rounded > MaxScore {
		return MaxScore
	}
	return int(rounded)
}

// Difficulty averages the frequency and competition sub-scores.
func Difficulty(frequency, competition int) int {
	mean := math.Round(float64(frequency+competition) / 2)
	if mean < 0 {
		return 0
	}
	if mean > MaxScore {
		return MaxScore
	}
	return int(mean)
}
