// Package catalog holds the static, ordered questionnaire definition and the
// visibility resolver that derives the currently active question sequence.
package catalog

import (
	"fmt"

	"milletsurvey/internal/model"
)

// Catalog is the fixed, ordered set of all questions. Loaded once at startup,
// never mutated afterwards.
type Catalog struct {
	questions []model.Question
	index     map[string]int
}

// New validates the question list and builds a catalog. Malformed entries are
// a startup concern, not a runtime one, so the caller is expected to fail
// hard on error.
func New(questions []model.Question) (*Catalog, error) {
	index := make(map[string]int, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question at position %d has empty id", i)
		}
		if _, dup := index[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if q.HasOptions() && len(q.Options) == 0 {
			return nil, fmt.Errorf("question %q: type %s requires options", q.ID, q.Type)
		}
		if !q.HasOptions() && len(q.Options) > 0 {
			return nil, fmt.Errorf("question %q: type %s does not take options", q.ID, q.Type)
		}
		// Conditions may only read answers of earlier questions, otherwise
		// visibility would depend on evaluation order.
		for _, ref := range q.Condition.References() {
			pos, ok := index[ref]
			if !ok {
				return nil, fmt.Errorf("question %q: condition references unknown or later question %q", q.ID, ref)
			}
			if pos >= i {
				return nil, fmt.Errorf("question %q: condition forward-references %q", q.ID, ref)
			}
		}
		index[q.ID] = i
	}
	return &Catalog{questions: questions, index: index}, nil
}

// MustNew is New for static catalogs, panicking on validation failure.
func MustNew(questions []model.Question) *Catalog {
	c, err := New(questions)
	if err != nil {
		panic(err)
	}
	return c
}

// Questions returns the full ordered question list.
func (c *Catalog) Questions() []model.Question {
	return c.questions
}

// Get looks a question up by id.
func (c *Catalog) Get(id string) (model.Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Question{}, false
	}
	return c.questions[i], true
}

// Len returns the total number of catalog questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// AnswerableCount returns the number of questions that take an answer,
// i.e. everything except info displays. Used by the completion-rate metric.
func (c *Catalog) AnswerableCount() int {
	n := 0
	for _, q := range c.questions {
		if q.Type != model.QuestionTypeInfo {
			n++
		}
	}
	return n
}

// Active computes the ordered subset of questions currently visible under
// answers: a question is kept iff its condition is absent or true. Pure
// function of (catalog, answers); callers re-evaluate it after every answer
// mutation because any later question may gate on the changed value.
func (c *Catalog) Active(answers model.AnswerMap) []model.Question {
	active := make([]model.Question, 0, len(c.questions))
	for _, q := range c.questions {
		if q.Condition.Matches(answers) {
			active = append(active, q)
		}
	}
	return active
}
