package model

// AnswerValue holds the rider's response to a single question. Exactly one of
// the fields is populated, matching the question type.
type AnswerValue struct {
	Selected     string   `json:"selected,omitempty" bson:"selected,omitempty"`         // single_choice
	SelectedMany []string `json:"selectedMany,omitempty" bson:"selectedMany,omitempty"` // multiple_choice
	Text         string   `json:"text,omitempty" bson:"text,omitempty"`                 // free text
}

// AnswerSet maps question id to the value collected for it. A later re-answer
// overwrites the prior value. The scoring engine treats it as read-only.
type AnswerSet map[string]AnswerValue

// Has reports whether the question has been answered.
func (a AnswerSet) Has(questionID string) bool {
	_, ok := a[questionID]
	return ok
}

// Is reports whether a single-choice answer equals value.
func (a AnswerSet) Is(questionID, value string) bool {
	v, ok := a[questionID]
	return ok && v.Selected == value
}

// OneOf reports whether a single-choice answer is one of the given values.
func (a AnswerSet) OneOf(questionID string, values ...string) bool {
	v, ok := a[questionID]
	if !ok {
		return false
	}
	for _, val := range values {
		if v.Selected == val {
			return true
		}
	}
	return false
}

// Contains reports whether a multiple-choice answer includes value.
func (a AnswerSet) Contains(questionID, value string) bool {
	v, ok := a[questionID]
	if !ok {
		return false
	}
	for _, s := range v.SelectedMany {
		if s == value {
			return true
		}
	}
	return false
}

// CountOf returns how many of the given values a multiple-choice answer includes.
func (a AnswerSet) CountOf(questionID string, values ...string) int {
	n := 0
	for _, val := range values {
		if a.Contains(questionID, val) {
			n++
		}
	}
	return n
}

// Selections returns the multi-select values for a question, nil if unanswered.
func (a AnswerSet) Selections(questionID string) []string {
	return a[questionID].SelectedMany
}

// Clone returns a shallow copy so callers can snapshot an in-progress set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
