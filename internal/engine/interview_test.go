package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milletsurvey/internal/catalog"
	"milletsurvey/internal/model"
)

// fakeSubmitter records calls and can be made to fail or block.
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	answers model.AnswerMap
	err     error
	started chan struct{} // closed when Submit begins, if set
	release chan struct{} // Submit blocks until closed, if set
}

func (f *fakeSubmitter) Submit(ctx context.Context, answers model.AnswerMap) (string, error) {
	f.mu.Lock()
	f.calls++
	f.answers = answers
	started := f.started
	release := f.release
	err := f.err
	f.mu.Unlock()

	if started != nil {
		close(started)
		f.mu.Lock()
		f.started = nil
		f.mu.Unlock()
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return "", err
	}
	return "SR-test", nil
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]model.Question{
		{
			ID: "q1", Section: model.SectionProfile, Type: model.QuestionTypeRadio,
			Label: map[model.Language]string{model.LanguageEnglish: "q1"},
			Options: []model.Option{
				{Value: "yes", Label: map[model.Language]string{model.LanguageEnglish: "Yes"}},
				{Value: "no", Label: map[model.Language]string{model.LanguageEnglish: "No"}},
			},
		},
		{
			ID: "q2", Section: model.SectionProfile, Type: model.QuestionTypeText,
			Label:     map[model.Language]string{model.LanguageEnglish: "q2"},
			Condition: &model.Condition{DependsOn: "q1", Equals: "yes"},
		},
		{
			ID: "q3", Section: model.SectionProfile, Type: model.QuestionTypeText,
			Label: map[model.Language]string{model.LanguageEnglish: "q3"},
		},
	})
	require.NoError(t, err)
	return c
}

func TestGatingScenario(t *testing.T) {
	i := New(testCatalog(t), &fakeSubmitter{})

	ids := func() []string {
		var out []string
		for _, q := range i.Active() {
			out = append(out, q.ID)
		}
		return out
	}

	assert.Equal(t, []string{"q1", "q3"}, ids())

	require.NoError(t, i.Answer("q1", "yes"))
	assert.Equal(t, []string{"q1", "q2", "q3"}, ids())

	require.NoError(t, i.Answer("q1", "no"))
	assert.Equal(t, []string{"q1", "q3"}, ids())
}

func TestAnswerClampsPositionWhenSequenceShrinks(t *testing.T) {
	i := New(testCatalog(t), &fakeSubmitter{})
	ctx := context.Background()

	require.NoError(t, i.Answer("q1", "yes")) // active: q1, q2, q3

	_, err := i.Next(ctx)
	require.NoError(t, err)
	_, err = i.Next(ctx)
	require.NoError(t, err)

	q, ok := i.Current()
	require.True(t, ok)
	assert.Equal(t, "q3", q.ID)

	// Flipping the gate removes q2; position 2 no longer exists.
	require.NoError(t, i.Answer("q1", "no"))
	q, ok = i.Current()
	require.True(t, ok)
	assert.Equal(t, "q3", q.ID)
	assert.Equal(t, 2, len(i.Active()))
}

func TestUnknownQuestion(t *testing.T) {
	i := New(testCatalog(t), &fakeSubmitter{})
	assert.ErrorIs(t, i.Answer("nope", "x"), ErrUnknownQuestion)
}

func TestProgressIsMonotonic(t *testing.T) {
	i := New(testCatalog(t), &fakeSubmitter{})
	ctx := context.Background()
	require.NoError(t, i.Answer("q1", "yes"))

	last := -1
	for range i.Active() {
		p := i.Progress()
		assert.GreaterOrEqual(t, p, last)
		last = p
		if _, err := i.Next(ctx); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	assert.Equal(t, 67, last, "round(100*2/3) at the last of three questions")
}

func TestPreviousStopsAtZero(t *testing.T) {
	i := New(testCatalog(t), &fakeSubmitter{})
	i.Previous()
	q, ok := i.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)
}

func TestNextSubmitsAtLastQuestion(t *testing.T) {
	submitter := &fakeSubmitter{}
	i := New(testCatalog(t), submitter)
	ctx := context.Background()

	require.NoError(t, i.Answer("q1", "no"))
	require.NoError(t, i.Answer("q3", "all fine"))

	done, err := i.Next(ctx) // q1 -> q3
	require.NoError(t, err)
	assert.False(t, done)

	done, err = i.Next(ctx) // submit
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, model.InterviewCompleted, i.Status())
	assert.Equal(t, 1, submitter.callCount())
	assert.Equal(t, "all fine", submitter.answers.String("q3"))

	// Further navigation is inert once completed.
	done, err = i.Next(ctx)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 1, submitter.callCount())
	assert.ErrorIs(t, i.Answer("q3", "late edit"), ErrCompleted)
}

func TestSubmissionFailureKeepsAnswers(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("connection lost")}
	i := New(testCatalog(t), submitter)
	ctx := context.Background()

	require.NoError(t, i.Answer("q1", "no"))
	require.NoError(t, i.Answer("q3", "text"))
	_, err := i.Next(ctx)
	require.NoError(t, err)

	_, err = i.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, model.InterviewInProgress, i.Status())

	// Retry with the store back up succeeds with the same answers.
	submitter.mu.Lock()
	submitter.err = nil
	submitter.mu.Unlock()

	done, err := i.Next(ctx)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "text", submitter.answers.String("q3"))
	assert.Equal(t, 2, submitter.callCount())
}

func TestDoubleSubmitGuard(t *testing.T) {
	submitter := &fakeSubmitter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	i := New(testCatalog(t), submitter)
	ctx := context.Background()

	require.NoError(t, i.Answer("q1", "no"))
	_, err := i.Next(ctx)
	require.NoError(t, err)

	firstDone := make(chan error, 1)
	go func() {
		_, err := i.Next(ctx)
		firstDone <- err
	}()

	<-submitter.started

	// Second trigger while the write is pending is rejected outright.
	_, err = i.Next(ctx)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.ErrorIs(t, i.Answer("q3", "x"), ErrSubmissionInFlight)

	close(submitter.release)
	require.NoError(t, <-firstDone)

	assert.Equal(t, 1, submitter.callCount())
	assert.Equal(t, model.InterviewCompleted, i.Status())
}

func TestSnapshotAndRestore(t *testing.T) {
	c := testCatalog(t)
	i := New(c, &fakeSubmitter{})
	ctx := context.Background()

	require.NoError(t, i.Answer("q1", "yes"))
	_, err := i.Next(ctx)
	require.NoError(t, err)

	state := i.Snapshot("session-1")
	assert.Equal(t, "session-1", state.SessionID)
	assert.Equal(t, 1, state.Position)
	assert.Equal(t, 3, state.Total)
	require.NotNil(t, state.Current)
	assert.Equal(t, "q2", state.Current.ID)

	restored := Restore(c, &fakeSubmitter{}, state)
	q, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, "q2", q.ID)
	assert.Equal(t, model.InterviewInProgress, restored.Status())
}

func TestRestoreClampsStalePosition(t *testing.T) {
	c := testCatalog(t)
	state := model.InterviewState{
		SessionID: "s",
		Status:    model.InterviewInProgress,
		Position:  2,
		Answers:   model.AnswerMap{"q1": "no"}, // only two questions active
	}

	restored := Restore(c, &fakeSubmitter{}, state)
	q, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, "q3", q.ID)
}
