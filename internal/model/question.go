package model

// Language keys question labels. Single language in current scope, kept as a
// map for extensibility.
type Language string

const (
	LanguageEnglish Language = "English"
)

// Section groups questions for display and report grouping
type Section string

const (
	SectionIntro       Section = "Introduction"
	SectionProfile     Section = "Part A: Farmer Profile"
	SectionTillage     Section = "Part B1: Tillage Systems"
	SectionNutrients   Section = "Part B2: Nutrient Management"
	SectionSeeds       Section = "Part B3: Seed Varieties"
	SectionPerceptions Section = "Part C: Perceptions"
	SectionSupport     Section = "Part D: Institutional Support"
	SectionConclusion  Section = "Part E: Conclusion"
)

// QuestionType defines the input kind of a question
type QuestionType string

const (
	QuestionTypeInfo     QuestionType = "info"     // display-only script, no answer
	QuestionTypeText     QuestionType = "text"     // free text
	QuestionTypeNumber   QuestionType = "number"   // numeric input
	QuestionTypeRadio    QuestionType = "radio"    // single choice
	QuestionTypeCheckbox QuestionType = "checkbox" // multiple choice, toggled membership
	QuestionTypeGender   QuestionType = "gender"   // binary choice with icons
	QuestionTypeLikert   QuestionType = "likert"   // 1-5 agreement scale
	QuestionTypeCounter  QuestionType = "counter"  // non-negative increment counter
)

// Option is a (value, label) pair for choice questions
type Option struct {
	Value string              `json:"value" bson:"value"`
	Label map[Language]string `json:"label" bson:"label"`
}

// Question is one immutable catalog entry
type Question struct {
	ID        string              `json:"id" bson:"id"`
	Section   Section             `json:"section" bson:"section"`
	Label     map[Language]string `json:"label" bson:"label"`
	Type      QuestionType        `json:"type" bson:"type"`
	Options   []Option            `json:"options,omitempty" bson:"options,omitempty"`
	Condition *Condition          `json:"condition,omitempty" bson:"condition,omitempty"`
}

// Text returns the label in the given language, falling back to English.
func (q Question) Text(lang Language) string {
	if s, ok := q.Label[lang]; ok {
		return s
	}
	return q.Label[LanguageEnglish]
}

// HasOptions reports whether this question type carries an options list.
func (q Question) HasOptions() bool {
	switch q.Type {
	case QuestionTypeRadio, QuestionTypeCheckbox:
		return true
	}
	return false
}

// OptionLabel resolves an answered option value to its display label.
// Unknown values fall back to the raw value.
func (q Question) OptionLabel(value string, lang Language) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			if s, ok := opt.Label[lang]; ok {
				return s
			}
			return opt.Label[LanguageEnglish]
		}
	}
	return value
}

// Condition is a serializable visibility rule evaluated against the current
// answers. A leaf rule matches one prior answer by equality (Equals) or set
// membership (AnyOf); All and Any compose sub-rules. A nil condition means
// "always visible".
type Condition struct {
	DependsOn string      `json:"dependsOn,omitempty" bson:"dependsOn,omitempty"`
	Equals    string      `json:"equals,omitempty" bson:"equals,omitempty"`
	AnyOf     []string    `json:"anyOf,omitempty" bson:"anyOf,omitempty"`
	All       []Condition `json:"all,omitempty" bson:"all,omitempty"`
	Any       []Condition `json:"any,omitempty" bson:"any,omitempty"`
}

// Matches evaluates the rule against answers. It is pure and never panics;
// a missing answer simply fails the leaf comparison.
func (c *Condition) Matches(answers AnswerMap) bool {
	if c == nil {
		return true
	}
	for _, sub := range c.All {
		if !sub.Matches(answers) {
			return false
		}
	}
	if len(c.Any) > 0 {
		matched := false
		for _, sub := range c.Any {
			if sub.Matches(answers) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if c.DependsOn == "" {
		return true
	}
	got := answers.String(c.DependsOn)
	if len(c.AnyOf) > 0 {
		for _, want := range c.AnyOf {
			if got == want {
				return true
			}
		}
		return false
	}
	return got == c.Equals
}

// References returns every question id the rule reads, recursively. Catalog
// validation uses this to reject forward references.
func (c *Condition) References() []string {
	if c == nil {
		return nil
	}
	var ids []string
	if c.DependsOn != "" {
		ids = append(ids, c.DependsOn)
	}
	for _, sub := range c.All {
		ids = append(ids, sub.References()...)
	}
	for _, sub := range c.Any {
		ids = append(ids, sub.References()...)
	}
	return ids
}
