package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRubric(t *testing.T) {
	r := Rubric{Criteria: []Criterion{
		{Key: "thesis", MaxPoints: 4},
		{Key: "evidence", MaxPoints: 6},
	}}

	total, notes := ScoreRubric(r, map[string]float64{"thesis": 5, "evidence": -1})
	assert.Equal(t, 4.0, total)
	assert.Equal(t, []string{"thesis:4.00", "evidence:0.00"}, notes)

	r.Max = 8
	total, _ = ScoreRubric(r, map[string]float64{"thesis": 4, "evidence": 6})
	assert.Equal(t, 8.0, total)
}

func TestRubricSubmission(t *testing.T) {
	r := Rubric{Criteria: []Criterion{{Key: "a", MaxPoints: 5}, {Key: "b", MaxPoints: 5}}}
	sub := r.Submission(map[string]float64{"a": 5, "b": 3})
	require.True(t, sub.Graded())
	assert.Equal(t, 10.0, sub.PointsPossible)
	assert.Equal(t, 80, OverallGrade([]Submission{sub}))
}
