package model

import "time"

// ResponseStatus is the lifecycle state of a persisted response
type ResponseStatus string

const (
	ResponseDraft     ResponseStatus = "draft"
	ResponseSubmitted ResponseStatus = "submitted"
)

// SurveyResponse is one completed interview persisted to the record store.
// Immutable after submission from the engine's perspective.
type SurveyResponse struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	Date       time.Time      `json:"date" bson:"date"`
	Ward       string         `json:"ward" bson:"ward"`
	Enumerator string         `json:"enumerator" bson:"enumerator"`
	FarmerID   string         `json:"farmerId" bson:"farmerId"`
	Answers    AnswerMap      `json:"answers" bson:"answers"`
	Status     ResponseStatus `json:"status" bson:"status"`
}
