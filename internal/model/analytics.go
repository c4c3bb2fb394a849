package model

import "time"

// NamedCount is a generic (name, count) pair for charts
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TextQuality buckets free-text challenge answers by length
type TextQuality struct {
	Detailed int `json:"detailed"` // > 50 characters
	Brief    int `json:"brief"`
	Skipped  int `json:"skipped"`
}

// QualityMetrics summarizes response completeness
type QualityMetrics struct {
	CompletionRate float64     `json:"completionRate"` // % of responses answering >= 80% of non-info questions
	TextQuality    TextQuality `json:"textQuality"`
}

// PracticeAdoption counts current farming practices
type PracticeAdoption struct {
	Tillage      []NamedCount   `json:"tillage"`
	Nutrients    map[string]int `json:"nutrients"`
	INMAwareness []NamedCount   `json:"inmAwareness"`
}

// LivestockOwnership counts responses owning each animal type
type LivestockOwnership struct {
	Cattle int `json:"cattle"`
	Goats  int `json:"goats"`
	Both   int `json:"both"`
}

// Demographics breaks respondents down by education, landholding and livestock
type Demographics struct {
	Education []NamedCount       `json:"education"`
	LandSize  []NamedCount       `json:"landSize"`
	Livestock LivestockOwnership `json:"livestock"`
}

// PerceptionScore is the average of one 1-5 likert question
type PerceptionScore struct {
	Subject  string  `json:"subject"`
	Average  float64 `json:"average"`
	FullMark int     `json:"fullMark"`
}

// ExtensionImpact summarizes agricultural extension contact and its rated relevance
type ExtensionImpact struct {
	ContactRate float64      `json:"contactRate"`
	Relevance   []NamedCount `json:"relevanceDistribution"`
}

// ChallengeTheme counts keyword mentions in free-text challenge answers
type ChallengeTheme struct {
	Keyword  string `json:"keyword"`
	Mentions int    `json:"mentions"`
}

// DashboardSnapshot is the full aggregate view over all persisted responses,
// recomputed on refresh and cached briefly in Redis.
type DashboardSnapshot struct {
	TotalResponses int               `json:"totalResponses"`
	Quality        QualityMetrics    `json:"quality"`
	Adoption       PracticeAdoption  `json:"adoption"`
	Demographics   Demographics      `json:"demographics"`
	Perceptions    []PerceptionScore `json:"perceptions"`
	Geography      []NamedCount      `json:"geography"`
	Extension      ExtensionImpact   `json:"extension"`
	Challenges     []ChallengeTheme  `json:"challenges"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}
