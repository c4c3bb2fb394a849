package model

import "strconv"

// AnswerMap maps question ids to collected answer values. Values are strings
// for text/choice/likert questions, numbers for counters, and string slices
// for checkbox questions. It is owned by a single interview session and
// mutated only through the methods below.
type AnswerMap map[string]any

// Set stores value for a question, overwriting any prior value.
func (a AnswerMap) Set(questionID string, value any) {
	a[questionID] = value
}

// String returns the answer as a string, or "" when unset or not a string.
func (a AnswerMap) String(questionID string) string {
	s, _ := a[questionID].(string)
	return s
}

// Number returns the answer coerced to a float64. String answers are parsed
// so numeric inputs collected as text still aggregate. Returns 0 when unset
// or unparseable.
func (a AnswerMap) Number(questionID string) float64 {
	switch v := a[questionID].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// List returns the answer as a string slice, or nil when unset. Values
// decoded from JSON or BSON arrive as []any and are converted.
func (a AnswerMap) List(questionID string) []string {
	switch v := a[questionID].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Toggle flips membership of option in a checkbox answer: absent values are
// inserted, present values removed. An unset answer starts as an empty list.
func (a AnswerMap) Toggle(questionID, option string) {
	current := a.List(questionID)
	for i, v := range current {
		if v == option {
			a[questionID] = append(append([]string{}, current[:i]...), current[i+1:]...)
			return
		}
	}
	a[questionID] = append(append([]string{}, current...), option)
}

// Adjust steps a counter answer by delta, clamping at zero. Decrementing an
// unset counter leaves it at zero.
func (a AnswerMap) Adjust(questionID string, delta int) {
	next := int(a.Number(questionID)) + delta
	if next < 0 {
		next = 0
	}
	a[questionID] = next
}

// Clone returns a shallow copy. Slice values are copied so the clone cannot
// observe later toggles.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for k, v := range a {
		if list, ok := v.([]string); ok {
			out[k] = append([]string{}, list...)
			continue
		}
		out[k] = v
	}
	return out
}

// Sanitize returns a copy with nil-valued entries stripped. The record store
// rejects documents with unset values.
func (a AnswerMap) Sanitize() AnswerMap {
	out := make(AnswerMap, len(a))
	for k, v := range a {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
