package model

import "time"

// InterviewStatus is the engine-side state of one interview session
type InterviewStatus string

const (
	InterviewInProgress InterviewStatus = "in-progress"
	InterviewSubmitting InterviewStatus = "submitting"
	InterviewCompleted  InterviewStatus = "completed"
)

// InterviewState is a serializable snapshot of one interview session. The
// API returns it after every mutation and the draft cache persists it so a
// session survives a server restart.
type InterviewState struct {
	SessionID string          `json:"sessionId" bson:"sessionId"`
	Status    InterviewStatus `json:"status" bson:"status"`
	Position  int             `json:"position" bson:"position"`
	Total     int             `json:"total" bson:"total"`
	Progress  int             `json:"progress" bson:"progress"`
	Answers   AnswerMap       `json:"answers" bson:"answers"`
	Current   *Question       `json:"current,omitempty" bson:"-"`
	RecordID  string          `json:"recordId,omitempty" bson:"recordId,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}
