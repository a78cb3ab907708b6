package grading

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrAnswerKey is returned for an answer key the question type cannot use.
var ErrAnswerKey = errors.New("invalid answer key")

// NumericKey is the parsed answer key of a numeric question.
//
//	answer_key: ["3.14159", "tol=0.01"]   // absolute tolerance
//	answer_key: ["100", "reltol=0.05"]    // 5% relative tolerance
type NumericKey struct {
	Target string
	Value  float64
	IsNum  bool    // Target parses as a number
	AbsTol float64 // -1 when unset
	RelTol float64 // -1 when unset
}

// Accepts reports whether a response matches the target exactly or within tolerance.
func (k NumericKey) Accepts(resp string) bool {
	resp = strings.TrimSpace(resp)
	if resp == k.Target {
		return true
	}
	v, ok := parseFloatLoose(resp)
	if !ok || !k.IsNum {
		return false
	}
	diff := math.Abs(v - k.Value)
	return diff == 0 ||
		(k.AbsTol >= 0 && diff <= k.AbsTol) ||
		(k.RelTol >= 0 && diff <= k.RelTol*math.Abs(k.Value))
}

// NumericKey parses the question's answer key. The loader calls it so a
// malformed tolerance fails when the exam is read, not mid-attempt.
func (q Question) NumericKey() (NumericKey, error) {
	if len(q.AnswerKey) == 0 {
		return NumericKey{}, fmt.Errorf("%w: question %s has no target", ErrAnswerKey, q.ID)
	}
	k := NumericKey{Target: strings.TrimSpace(q.AnswerKey[0]), AbsTol: -1, RelTol: -1}
	k.Value, k.IsNum = parseFloatLoose(k.Target)

	for _, raw := range q.AnswerKey[1:] {
		name, val, found := strings.Cut(strings.ToLower(strings.TrimSpace(raw)), "=")
		if !found {
			return NumericKey{}, fmt.Errorf("%w: question %s: %q is not name=value", ErrAnswerKey, q.ID, raw)
		}
		tol, err := strconv.ParseFloat(val, 64)
		if err != nil || tol < 0 {
			return NumericKey{}, fmt.Errorf("%w: question %s: bad tolerance %q", ErrAnswerKey, q.ID, raw)
		}
		switch name {
		case "tol":
			k.AbsTol = tol
		case "reltol":
			k.RelTol = tol
		default:
			return NumericKey{}, fmt.Errorf("%w: question %s: unknown option %q", ErrAnswerKey, q.ID, name)
		}
	}
	return k, nil
}

type numericStrategy struct{}

func (numericStrategy) Grade(_ context.Context, q Question, response any) (Result, error) {
	res := Result{MaxPoints: q.Points}
	str, ok := toString(response)
	if !ok {
		return res, fmt.Errorf("%w: want number or string, got %T", ErrResponseType, response)
	}
	if len(q.AnswerKey) == 0 {
		return res, nil
	}
	key, err := q.NumericKey()
	if err != nil {
		return res, err
	}
	if key.Accepts(str) {
		res.Points = q.Points
	}
	return res, nil
}

// parseFloatLoose reads a number, tolerating a trailing unit ("9.8 m/s").
func parseFloatLoose(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
