package grading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineGrade(t *testing.T) {
	ctx := context.Background()
	e := NewEngine()

	tests := []struct {
		name     string
		q        Question
		response any
		points   float64
		manual   bool
	}{
		{"mcq single hit", Question{Type: "mcq_single", Points: 2, AnswerKey: []string{"b"}}, "b", 2, false},
		{"mcq single miss", Question{Type: "mcq_single", Points: 2, AnswerKey: []string{"b"}}, "c", 0, false},
		{"true false from bool", Question{Type: "true_false", Points: 1, AnswerKey: []string{"true"}}, true, 1, false},
		{"multi exact", Question{Type: "mcq_multi", Points: 4, AnswerKey: []string{"a", "c"}}, []string{"c", "a"}, 4, false},
		{"multi partial", Question{Type: "mcq_multi", Points: 4, AnswerKey: []string{"a", "c"}}, []any{"a"}, 2, false},
		{"multi false positive", Question{Type: "mcq_multi", Points: 4, AnswerKey: []string{"a", "c"}}, []string{"a", "d"}, 0, false},
		{"short word normalized", Question{Type: "short_word", Points: 3, AnswerKey: []string{"Photosynthesis"}}, " photosynthesis. ", 3, false},
		{"short word fuzzy", Question{Type: "short_word", Points: 3, AnswerKey: []string{"mitosis"}}, "mitosys", 1.5, false},
		{"short word wrong", Question{Type: "short_word", Points: 3, AnswerKey: []string{"mitosis"}}, "meiosis", 0, false},
		{"numeric exact", Question{Type: "numeric", Points: 5, AnswerKey: []string{"42"}}, "42", 5, false},
		{"numeric from float", Question{Type: "numeric", Points: 5, AnswerKey: []string{"42"}}, 42.0, 5, false},
		{"numeric abs tol", Question{Type: "numeric", Points: 5, AnswerKey: []string{"3.14159", "tol=0.01"}}, "3.14", 5, false},
		{"numeric rel tol", Question{Type: "numeric", Points: 5, AnswerKey: []string{"100", "reltol=0.05"}}, "104 kg", 5, false},
		{"numeric outside tol", Question{Type: "numeric", Points: 5, AnswerKey: []string{"100", "reltol=0.05"}}, "106", 0, false},
		{"essay", Question{Type: "essay", Points: 10}, "long text", 0, true},
		{"unknown type", Question{Type: "hotspot", Points: 10}, "x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.q.ID = "q1"
			res, err := e.Grade(ctx, tt.q, tt.response)
			require.NoError(t, err)
			assert.Equal(t, "q1", res.QuestionID)
			assert.InDelta(t, tt.points, res.Points, 1e-9)
			assert.Equal(t, tt.q.Points, res.MaxPoints)
			assert.Equal(t, tt.manual, res.NeedsManual)
		})
	}
}

func TestEngineResponseType(t *testing.T) {
	e := NewEngine()
	_, err := e.Grade(context.Background(), Question{ID: "q9", Type: "mcq_multi", Points: 1}, "a")
	require.ErrorIs(t, err, ErrResponseType)
	assert.Contains(t, err.Error(), "q9")
}

func TestEngineOptions(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(WithPartialMulti(false), WithMaxEditDistance(0))
	assert.True(t, e.Supports("essay"))
	assert.False(t, e.Supports("scan"))

	res, err := e.Grade(ctx, Question{Type: "mcq_multi", Points: 4, AnswerKey: []string{"a", "c"}}, []string{"a"})
	require.NoError(t, err)
	assert.Zero(t, res.Points)

	res, err = e.Grade(ctx, Question{Type: "short_word", Points: 3, AnswerKey: []string{"mitosis"}}, "mitosys")
	require.NoError(t, err)
	assert.Zero(t, res.Points)
}

func TestResultSubmission(t *testing.T) {
	graded := Result{Points: 3, MaxPoints: 4}.Submission()
	require.True(t, graded.Graded())
	assert.Equal(t, 3.0, *graded.Grade)
	assert.Equal(t, 4.0, graded.PointsPossible)

	manual := Result{MaxPoints: 10, NeedsManual: true}.Submission()
	assert.False(t, manual.Graded())
	assert.Equal(t, 10.0, manual.PointsPossible)
}

func TestWithinEdits(t *testing.T) {
	tests := []struct {
		a, b  string
		limit int
		want  bool
	}{
		{"abc", "abc", 0, true},
		{"", "abc", 3, true},
		{"", "abc", 2, false},
		{"cat", "cut", 1, true},
		{"cat", "cut", 0, false},
		{"kitten", "sitting", 3, true},
		{"kitten", "sitting", 2, false},
		{"mitosis", "meiosis", 1, false},
		{"short", "a much longer answer", 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, withinEdits(tt.a, tt.b, tt.limit), "withinEdits(%q, %q, %d)", tt.a, tt.b, tt.limit)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", normalize("  Hello,   World! "))
	assert.Equal(t, "", normalize(" ... "))
}

func TestEngineRejectsNonScalarChoices(t *testing.T) {
	e := NewEngine()
	q := Question{ID: "q2", Type: "mcq_multi", Points: 2, AnswerKey: []string{"a"}}

	_, err := e.Grade(context.Background(), q, []any{map[string]any{}})
	assert.ErrorIs(t, err, ErrResponseType)

	_, err = e.Grade(context.Background(), q, []any{"a", []any{"b"}})
	assert.ErrorIs(t, err, ErrResponseType)
}
