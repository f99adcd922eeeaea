package model

import "time"

// AssessmentStatus tracks the lifecycle of a rider session
type AssessmentStatus string

const (
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentCompleted  AssessmentStatus = "completed"
	AssessmentAbandoned  AssessmentStatus = "abandoned"
)

// Assessment is one rider's pass through the questionnaire
type Assessment struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	RiderID     string           `json:"riderId" bson:"riderId"`
	Status      AssessmentStatus `json:"status" bson:"status"`
	Answers     AnswerSet        `json:"answers" bson:"answers"`
	Profile     *Profile         `json:"profile,omitempty" bson:"profile,omitempty"`
	StartedAt   time.Time        `json:"startedAt" bson:"startedAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// SubmitAnswerRequest is the request body for answering one question
type SubmitAnswerRequest struct {
	QuestionID   string   `json:"questionId"`
	Selected     string   `json:"selected,omitempty"`
	SelectedMany []string `json:"selectedMany,omitempty"`
	Text         string   `json:"text,omitempty"`
}

// SubmitAnswerResponse returns the next question, or marks the flow complete
type SubmitAnswerResponse struct {
	NextQuestion *Question `json:"nextQuestion,omitempty"`
	Completed    bool      `json:"completed"`
	Answered     int       `json:"answered"`
}

// StartAssessmentResponse is returned when a rider session is created
type StartAssessmentResponse struct {
	AssessmentID  string    `json:"assessmentId"`
	Token         string    `json:"token"`
	FirstQuestion *Question `json:"firstQuestion"`
}

// ArchetypeStats is the admin-console distribution snapshot
type ArchetypeStats struct {
	Total      int64            `json:"total"`
	Archetypes map[string]int64 `json:"archetypes"`
	Danger     map[string]int64 `json:"danger"`
}
