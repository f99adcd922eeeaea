package model

// QuestionType defines how an answer to the question is shaped
type QuestionType string

const (
	QuestionTypeSingleChoice   QuestionType = "single_choice"   // One selected option label
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // Set of selected option labels
	QuestionTypeText           QuestionType = "text"            // Free text, opaque to scoring
)

// QuestionLevel is informational difficulty metadata
type QuestionLevel string

const (
	LevelBasic        QuestionLevel = "BASIC"
	LevelIntermediate QuestionLevel = "INTERMEDIATE"
	LevelAdvanced     QuestionLevel = "ADVANCED"
)

// Question is an immutable catalog entry in the assessment question bank.
// Order defines the default traversal sequence; DependsOn and ShowConditions
// gate visibility off earlier answers.
type Question struct {
	ID             string              `json:"id" bson:"_id" yaml:"id"`
	Text           string              `json:"text" bson:"text" yaml:"text"`
	Level          QuestionLevel       `json:"level" bson:"level" yaml:"level"`
	Category       string              `json:"category" bson:"category" yaml:"category"`
	Type           QuestionType        `json:"type" bson:"type" yaml:"type"`
	Order          int                 `json:"order" bson:"order" yaml:"order"`
	Points         int                 `json:"points,omitempty" bson:"points,omitempty" yaml:"points,omitempty"`
	IsHubQuestion  bool                `json:"isHubQuestion,omitempty" bson:"isHubQuestion,omitempty" yaml:"isHubQuestion,omitempty"`
	MultiChoice    bool                `json:"multiChoice,omitempty" bson:"multiChoice,omitempty" yaml:"multiChoice,omitempty"`
	DependsOn      string              `json:"dependsOn,omitempty" bson:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	ShowConditions map[string][]string `json:"showConditions,omitempty" bson:"showConditions,omitempty" yaml:"showConditions,omitempty"`
	Answers        []string            `json:"answers,omitempty" bson:"answers,omitempty" yaml:"answers,omitempty"`
	// CorrectAnswer marks knowledge-check questions. Used only by scoring and
	// consistency logic, never exposed through the rider-facing API.
	CorrectAnswer string `json:"-" bson:"correctAnswer,omitempty" yaml:"correctAnswer,omitempty"`
}

// IsKnowledgeCheck reports whether scoring treats this question as a
// right-or-wrong check rather than a self-report.
func (q *Question) IsKnowledgeCheck() bool {
	return q.CorrectAnswer != ""
}

// HasOption reports whether label is one of the selectable options.
func (q *Question) HasOption(label string) bool {
	for _, a := range q.Answers {
		if a == label {
			return true
		}
	}
	return false
}
