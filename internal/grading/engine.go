package grading

import (
	"context"
	"errors"
	"fmt"
)

// ErrResponseType is returned when a response does not have the shape its question type expects.
var ErrResponseType = errors.New("unexpected response type")

// Question is the part of an exam item needed for auto-grading.
type Question struct {
	ID        string   `json:"id" yaml:"id"`
	Type      string   `json:"type" yaml:"type"` // mcq_single, mcq_multi, true_false, short_word, numeric, essay
	Points    float64  `json:"points" yaml:"points"`
	AnswerKey []string `json:"answer_key,omitempty" yaml:"answer_key,omitempty"`
}

// Result is the outcome of grading a single question response.
type Result struct {
	QuestionID  string   `json:"question_id"`
	Points      float64  `json:"points"`     // points awarded automatically
	MaxPoints   float64  `json:"max_points"` // the question's max points
	NeedsManual bool     `json:"needs_manual"`
	Feedback    []string `json:"feedback,omitempty"`
}

// Submission converts the result for the overall grade. Results waiting on
// manual review count as ungraded.
func (r Result) Submission() Submission {
	if r.NeedsManual {
		return Submission{PointsPossible: r.MaxPoints}
	}
	return GradedSubmission(r.Points, r.MaxPoints)
}

// Strategy grades a single question type.
type Strategy interface {
	Grade(ctx context.Context, q Question, response any) (Result, error)
}

// Grader grades any question, routing by type.
type Grader interface {
	Grade(ctx context.Context, q Question, response any) (Result, error)
}

type Option func(*options)

type options struct {
	maxEditDistance   int  // for short-word fuzzy
	allowPartialMulti bool // partial credit for mcq_multi without false positives
}

func WithMaxEditDistance(n int) Option { return func(o *options) { o.maxEditDistance = n } }
func WithPartialMulti(b bool) Option   { return func(o *options) { o.allowPartialMulti = b } }

// Engine is the default Grader with the built-in strategies installed.
type Engine struct {
	strategies map[string]Strategy
}

func NewEngine(opts ...Option) *Engine {
	o := &options{
		maxEditDistance:   1,
		allowPartialMulti: true,
	}
	for _, fn := range opts {
		fn(o)
	}
	return &Engine{
		strategies: map[string]Strategy{
			"mcq_single": exactStrategy{},
			"true_false": exactStrategy{},
			"mcq_multi":  multiStrategy{allowPartial: o.allowPartialMulti},
			"short_word": shortWordStrategy{maxEdit: o.maxEditDistance},
			"numeric":    numericStrategy{},
			"essay":      essayStrategy{},
		},
	}
}

// Supports reports whether qtype has a registered strategy.
func (e *Engine) Supports(qtype string) bool {
	_, ok := e.strategies[qtype]
	return ok
}

func (e *Engine) Grade(ctx context.Context, q Question, response any) (Result, error) {
	s, ok := e.strategies[q.Type]
	if !ok {
		return Result{QuestionID: q.ID, MaxPoints: q.Points, NeedsManual: true, Feedback: []string{"no strategy for type " + q.Type}}, nil
	}
	res, err := s.Grade(ctx, q, response)
	res.QuestionID = q.ID
	if err != nil {
		return res, fmt.Errorf("question %s: %w", q.ID, err)
	}
	return res, nil
}

// --- Strategies ---

type exactStrategy struct{}

func (exactStrategy) Grade(_ context.Context, q Question, response any) (Result, error) {
	res := Result{MaxPoints: q.Points}
	resp, ok := toString(response)
	if !ok {
		return res, fmt.Errorf("%w: want string, got %T", ErrResponseType, response)
	}
	for _, k := range q.AnswerKey {
		if resp == k {
			res.Points = q.Points
			return res, nil
		}
	}
	return res, nil
}

type multiStrategy struct{ allowPartial bool }

func (s multiStrategy) Grade(_ context.Context, q Question, response any) (Result, error) {
	res := Result{MaxPoints: q.Points}
	picked, ok := toStringSlice(response)
	if !ok {
		return res, fmt.Errorf("%w: want list of strings, got %T", ErrResponseType, response)
	}
	correct := toSet(q.AnswerKey)
	resp := toSet(picked)

	if setEqual(correct, resp) {
		res.Points = q.Points
		return res, nil
	}
	hits := 0
	for r := range resp {
		if _, ok := correct[r]; !ok {
			res.Feedback = append(res.Feedback, "incorrect choice selected")
			return res, nil
		}
		hits++
	}
	if s.allowPartial && len(correct) > 0 {
		res.Points = q.Points * (float64(hits) / float64(len(correct)))
	}
	return res, nil
}

type shortWordStrategy struct{ maxEdit int }

func (s shortWordStrategy) Grade(_ context.Context, q Question, response any) (Result, error) {
	res := Result{MaxPoints: q.Points}
	resp, ok := toString(response)
	if !ok {
		return res, fmt.Errorf("%w: want string, got %T", ErrResponseType, response)
	}
	norm := normalize(resp)

	near := false
	for _, k := range q.AnswerKey {
		nk := normalize(k)
		if nk == norm {
			res.Points = q.Points
			return res, nil
		}
		if s.maxEdit > 0 && withinEdits(nk, norm, s.maxEdit) {
			near = true
		}
	}
	if near {
		res.Points = q.Points * 0.5
		res.Feedback = append(res.Feedback, "close match (fuzzy)")
	}
	return res, nil
}

type essayStrategy struct{}

func (essayStrategy) Grade(_ context.Context, q Question, _ any) (Result, error) {
	return Result{MaxPoints: q.Points, NeedsManual: true, Feedback: []string{"manual grading required"}}, nil
}

// helpers

// toString also accepts the scalars YAML decodes unquoted answers into.
func toString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool, int, int64, float64:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

func toStringSlice(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := toString(e)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func toSet(arr []string) map[string]struct{} {
	m := make(map[string]struct{}, len(arr))
	for _, s := range arr {
		m[s] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
