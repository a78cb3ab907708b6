package grading

import (
	"fmt"

	"github.com/samber/lo"
)

type Rubric struct {
	Criteria []Criterion `json:"criteria" yaml:"criteria"`
	Max      float64     `json:"max_points" yaml:"max_points"`
}

type Criterion struct {
	Key       string  `json:"key" yaml:"key"`
	Desc      string  `json:"desc" yaml:"desc"`
	MaxPoints float64 `json:"max_points" yaml:"max_points"`
}

// Possible is the rubric max, or the sum of criterion maxima when unset.
func (r Rubric) Possible() float64 {
	if r.Max > 0 {
		return r.Max
	}
	return lo.SumBy(r.Criteria, func(c Criterion) float64 { return c.MaxPoints })
}

// ScoreRubric clamps each awarded value to its criterion range and the total to the rubric max.
func ScoreRubric(r Rubric, awarded map[string]float64) (float64, []string) {
	total := 0.0
	notes := make([]string, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		v := max(0, min(awarded[c.Key], c.MaxPoints))
		total += v
		notes = append(notes, fmt.Sprintf("%s:%.2f", c.Key, v))
	}
	if r.Max > 0 && total > r.Max {
		total = r.Max
	}
	return total, notes
}

// Submission scores awarded against the rubric as a graded submission.
func (r Rubric) Submission(awarded map[string]float64) Submission {
	total, _ := ScoreRubric(r, awarded)
	return GradedSubmission(total, r.Possible())
}
