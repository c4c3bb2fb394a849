// Package engine implements the questionnaire flow: answer collection,
// conditional visibility, navigation and the submission handoff. One
// Interview instance owns one enumerator session.
package engine

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"milletsurvey/internal/catalog"
	"milletsurvey/internal/model"
)

var (
	// ErrUnknownQuestion is returned when an answer targets an id that is
	// not in the catalog.
	ErrUnknownQuestion = errors.New("unknown question id")

	// ErrSubmissionInFlight is returned by Next while a previous submission
	// is still pending, so a double tap cannot create two records.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrCompleted is returned for mutations after a successful submission.
	ErrCompleted = errors.New("interview already completed")
)

// Submitter persists a finished interview's answers and returns the id of
// the created record. The engine's only external dependency.
type Submitter interface {
	Submit(ctx context.Context, answers model.AnswerMap) (string, error)
}

// Interview tracks one session's answers and position within the active
// question sequence. All operations are safe for concurrent use; the
// submitting status doubles as the mutual-exclusion flag for the store write.
type Interview struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	submitter Submitter

	answers  model.AnswerMap
	position int
	status   model.InterviewStatus
	recordID string
}

// New starts an empty interview over the given catalog.
func New(c *catalog.Catalog, s Submitter) *Interview {
	return &Interview{
		catalog:   c,
		submitter: s,
		answers:   model.AnswerMap{},
		status:    model.InterviewInProgress,
	}
}

// Answer records a value for a question and re-derives the active sequence.
// Mutation depends on the question type: checkbox answers toggle membership
// of value, counter answers step by the signed value clamped at zero, and
// everything else overwrites. Shrinking the active sequence clamps the
// current position back into range.
func (i *Interview) Answer(questionID string, value any) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch i.status {
	case model.InterviewSubmitting:
		return ErrSubmissionInFlight
	case model.InterviewCompleted:
		return ErrCompleted
	}

	q, ok := i.catalog.Get(questionID)
	if !ok {
		return ErrUnknownQuestion
	}

	switch q.Type {
	case model.QuestionTypeCheckbox:
		option, ok := value.(string)
		if !ok {
			return errors.New("checkbox answer value must be a string option")
		}
		i.answers.Toggle(questionID, option)
	case model.QuestionTypeCounter:
		i.answers.Adjust(questionID, toDelta(value))
	default:
		i.answers.Set(questionID, value)
	}

	i.clampPosition()
	return nil
}

// toDelta interprets a counter step. JSON numbers decode as float64.
func toDelta(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// clampPosition keeps position a valid index of the active sequence after an
// answer change removed questions. Callers must hold the lock.
func (i *Interview) clampPosition() {
	n := len(i.catalog.Active(i.answers))
	if n == 0 {
		i.position = 0
		return
	}
	if i.position >= n {
		i.position = n - 1
	}
}

// Next advances to the following active question. At the last question it
// runs the submission instead: status moves to submitting for the duration
// of the store write, then to completed on success. On failure the status
// reverts to in-progress with all answers intact so the enumerator can retry.
// Returns true once the interview has been submitted.
func (i *Interview) Next(ctx context.Context) (bool, error) {
	i.mu.Lock()

	switch i.status {
	case model.InterviewSubmitting:
		i.mu.Unlock()
		return false, ErrSubmissionInFlight
	case model.InterviewCompleted:
		i.mu.Unlock()
		return true, nil
	}

	if i.position < len(i.catalog.Active(i.answers))-1 {
		i.position++
		i.mu.Unlock()
		return false, nil
	}

	// Last question reached: hand off to the submitter. The lock is released
	// for the store call; the submitting status keeps other callers out.
	i.status = model.InterviewSubmitting
	answers := i.answers.Clone()
	i.mu.Unlock()

	recordID, err := i.submitter.Submit(ctx, answers)

	i.mu.Lock()
	defer i.mu.Unlock()
	if err != nil {
		i.status = model.InterviewInProgress
		return false, err
	}
	i.status = model.InterviewCompleted
	i.recordID = recordID
	return true, nil
}

// Previous steps back one question; no-op at the first.
func (i *Interview) Previous() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.position > 0 {
		i.position--
	}
}

// Progress returns percent of questions passed, not answered: a skipped
// question still advances progress once the enumerator moves past it.
func (i *Interview) Progress() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return progress(i.position, len(i.catalog.Active(i.answers)))
}

func progress(position, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(position) / float64(total)))
}

// Current returns the question at the present position, or false when the
// active sequence is empty.
func (i *Interview) Current() (model.Question, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	active := i.catalog.Active(i.answers)
	if len(active) == 0 {
		return model.Question{}, false
	}
	return active[i.position], true
}

// Active returns the ordered question sequence visible under the current
// answers.
func (i *Interview) Active() []model.Question {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.catalog.Active(i.answers)
}

// Status returns the session status.
func (i *Interview) Status() model.InterviewStatus {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.status
}

// Snapshot captures the session for API responses and draft persistence.
func (i *Interview) Snapshot(sessionID string) model.InterviewState {
	i.mu.Lock()
	defer i.mu.Unlock()

	active := i.catalog.Active(i.answers)
	state := model.InterviewState{
		SessionID: sessionID,
		Status:    i.status,
		Position:  i.position,
		Total:     len(active),
		Progress:  progress(i.position, len(active)),
		Answers:   i.answers.Clone(),
		RecordID:  i.recordID,
		UpdatedAt: time.Now().UTC(),
	}
	if i.position < len(active) {
		q := active[i.position]
		state.Current = &q
	}
	return state
}

// Restore rebuilds a session from a persisted draft snapshot. The position
// is clamped in case the stored value no longer fits the active sequence.
func Restore(c *catalog.Catalog, s Submitter, state model.InterviewState) *Interview {
	i := New(c, s)
	if state.Answers != nil {
		i.answers = state.Answers.Clone()
	}
	i.position = state.Position
	if state.Status == model.InterviewCompleted {
		i.status = model.InterviewCompleted
		i.recordID = state.RecordID
	}
	i.clampPosition()
	return i
}
