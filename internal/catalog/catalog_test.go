package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milletsurvey/internal/model"
)

func question(id string, qtype model.QuestionType) model.Question {
	return model.Question{
		ID:      id,
		Section: model.SectionProfile,
		Label:   label(id),
		Type:    qtype,
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]model.Question{
		question("q1", model.QuestionTypeText),
		question("q1", model.QuestionTypeText),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRejectsForwardReferences(t *testing.T) {
	gated := question("q1", model.QuestionTypeText)
	gated.Condition = &model.Condition{DependsOn: "q2", Equals: "yes"}

	_, err := New([]model.Question{
		gated,
		question("q2", model.QuestionTypeText),
	})
	require.Error(t, err)
}

func TestNewRejectsSelfReference(t *testing.T) {
	q := question("q1", model.QuestionTypeText)
	q.Condition = &model.Condition{DependsOn: "q1", Equals: "yes"}

	_, err := New([]model.Question{q})
	require.Error(t, err)
}

func TestNewRejectsChoiceWithoutOptions(t *testing.T) {
	_, err := New([]model.Question{question("q1", model.QuestionTypeRadio)})
	require.Error(t, err)
}

func TestNewRejectsOptionsOnNonChoice(t *testing.T) {
	q := question("q1", model.QuestionTypeText)
	q.Options = []model.Option{option("a", "A")}

	_, err := New([]model.Question{q})
	require.Error(t, err)
}

func gatedCatalog(t *testing.T) *Catalog {
	t.Helper()
	q1 := question("q1", model.QuestionTypeRadio)
	q1.Options = yesNo
	q2 := question("q2", model.QuestionTypeText)
	q2.Condition = &model.Condition{DependsOn: "q1", Equals: "yes"}
	q3 := question("q3", model.QuestionTypeText)

	c, err := New([]model.Question{q1, q2, q3})
	require.NoError(t, err)
	return c
}

func activeIDs(c *Catalog, answers model.AnswerMap) []string {
	var ids []string
	for _, q := range c.Active(answers) {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestActiveFiltersAndPreservesOrder(t *testing.T) {
	c := gatedCatalog(t)

	assert.Equal(t, []string{"q1", "q3"}, activeIDs(c, model.AnswerMap{}))
	assert.Equal(t, []string{"q1", "q2", "q3"}, activeIDs(c, model.AnswerMap{"q1": "yes"}))
	assert.Equal(t, []string{"q1", "q3"}, activeIDs(c, model.AnswerMap{"q1": "no"}))
}

func TestActiveIsIdempotent(t *testing.T) {
	c := gatedCatalog(t)
	answers := model.AnswerMap{"q1": "yes"}

	first := activeIDs(c, answers)
	second := activeIDs(c, answers)
	assert.Equal(t, first, second)
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()

	assert.Greater(t, c.Len(), 30)
	assert.Equal(t, c.Len()-1, c.AnswerableCount(), "only the intro script is informational")

	// The gated questions stay hidden until their gate answers are set.
	hidden := activeIDs(c, model.AnswerMap{})
	assert.NotContains(t, hidden, "B2_6_inm_benefits")
	assert.NotContains(t, hidden, "D3_relevance")

	shown := activeIDs(c, model.AnswerMap{"B2_5_inm_heard": "yes", "D1_contact": "yes"})
	assert.Contains(t, shown, "B2_6_inm_benefits")
	assert.Contains(t, shown, "D3_relevance")
}

func TestGet(t *testing.T) {
	c := Default()

	q, ok := c.Get("A1_gender")
	require.True(t, ok)
	assert.Equal(t, model.QuestionTypeGender, q.Type)

	_, ok = c.Get("nope")
	assert.False(t, ok)
}
