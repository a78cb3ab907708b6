package grading

import (
	"math"

	"github.com/samber/lo"
)

// Submission is one piece of learner work. A nil Grade means it has not been graded yet.
type Submission struct {
	Grade          *float64 `json:"grade" yaml:"grade"`
	PointsPossible float64  `json:"pointsPossible" yaml:"pointsPossible"`
}

// Graded reports whether the submission carries a grade.
func (s Submission) Graded() bool { return s.Grade != nil }

// GradedSubmission builds a submission carrying grade.
func GradedSubmission(grade, possible float64) Submission {
	return Submission{Grade: &grade, PointsPossible: possible}
}

// CalculatePercentage returns points/maxPoints scaled to 100 and rounded to the
// nearest integer, ties away from zero. A zero or NaN maxPoints yields 0.
// The result is not clamped to 0..100; values beyond the int range saturate.
func CalculatePercentage(points, maxPoints float64) int {
	if maxPoints == 0 || math.IsNaN(maxPoints) {
		return 0
	}
	pct := math.Round(points / maxPoints * 100)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	switch {
	case pct >= math.MaxInt:
		return math.MaxInt
	case pct <= math.MinInt:
		return math.MinInt
	}
	return int(pct)
}

// OverallGrade sums grades and possible points over the graded submissions only
// and returns the combined percentage. No graded submissions yields 0.
func OverallGrade(subs []Submission) int {
	graded := lo.Filter(subs, func(s Submission, _ int) bool { return s.Graded() })
	if len(graded) == 0 {
		return 0
	}
	total := lo.SumBy(graded, func(s Submission) float64 { return *s.Grade })
	possible := lo.SumBy(graded, func(s Submission) float64 { return s.PointsPossible })
	return CalculatePercentage(total, possible)
}
