package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleIsItsOwnInverse(t *testing.T) {
	a := AnswerMap{}

	a.Toggle("B2_2_methods", "compost")
	assert.Equal(t, []string{"compost"}, a.List("B2_2_methods"))

	a.Toggle("B2_2_methods", "rotation")
	assert.Equal(t, []string{"compost", "rotation"}, a.List("B2_2_methods"))

	a.Toggle("B2_2_methods", "compost")
	a.Toggle("B2_2_methods", "compost")
	assert.Equal(t, []string{"compost", "rotation"}, a.List("B2_2_methods"))
}

func TestAdjustClampsAtZero(t *testing.T) {
	a := AnswerMap{}

	for i := 0; i < 5; i++ {
		a.Adjust("A11_cattle", -1)
	}
	assert.Equal(t, 0.0, a.Number("A11_cattle"))

	a.Adjust("A11_cattle", 1)
	a.Adjust("A11_cattle", 1)
	a.Adjust("A11_cattle", -1)
	assert.Equal(t, 1.0, a.Number("A11_cattle"))
}

func TestNumberCoercion(t *testing.T) {
	a := AnswerMap{
		"age":    "46",
		"size":   3.5,
		"count":  7,
		"junk":   "not a number",
		"absent": nil,
	}

	assert.Equal(t, 46.0, a.Number("age"))
	assert.Equal(t, 3.5, a.Number("size"))
	assert.Equal(t, 7.0, a.Number("count"))
	assert.Equal(t, 0.0, a.Number("junk"))
	assert.Equal(t, 0.0, a.Number("absent"))
	assert.Equal(t, 0.0, a.Number("missing"))
}

func TestListHandlesDecodedSlices(t *testing.T) {
	a := AnswerMap{"methods": []any{"compost", "rotation"}}
	assert.Equal(t, []string{"compost", "rotation"}, a.List("methods"))
	assert.Nil(t, a.List("missing"))
}

func TestSanitizeStripsNilEntries(t *testing.T) {
	a := AnswerMap{"kept": "value", "dropped": nil}

	clean := a.Sanitize()
	assert.Equal(t, AnswerMap{"kept": "value"}, clean)
	assert.Contains(t, a, "dropped", "original is untouched")
}

func TestCloneIsolatesSlices(t *testing.T) {
	a := AnswerMap{}
	a.Toggle("methods", "compost")

	clone := a.Clone()
	a.Toggle("methods", "rotation")

	assert.Equal(t, []string{"compost"}, clone.List("methods"))
	assert.Equal(t, []string{"compost", "rotation"}, a.List("methods"))
}
