package assessment

import "github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"

// NextQuestion returns the first unanswered eligible question in catalog
// order, or nil when the flow is complete. Pure: the same bank and answers
// always yield the same question.
func NextQuestion(bank *Bank, answers model.AnswerSet) *model.Question {
	for i := range bank.Questions() {
		q := &bank.Questions()[i]
		if answers.Has(q.ID) {
			continue
		}
		if eligible(q, answers) {
			return q
		}
	}
	return nil
}

// Remaining counts the questions that are currently unanswered and eligible.
func Remaining(bank *Bank, answers model.AnswerSet) int {
	n := 0
	for i := range bank.Questions() {
		q := &bank.Questions()[i]
		if !answers.Has(q.ID) && eligible(q, answers) {
			n++
		}
	}
	return n
}

// eligible applies the visibility rules. A question gated on an unanswered
// question is not eligible yet; it may become eligible later or stay skipped
// if the branch is never taken.
func eligible(q *model.Question, answers model.AnswerSet) bool {
	if q.DependsOn != "" && !answers.Has(q.DependsOn) {
		return false
	}
	for ref, allowed := range q.ShowConditions {
		v, ok := answers[ref]
		if !ok {
			return false
		}
		if !valueMatches(v, allowed) {
			return false
		}
	}
	return true
}

// valueMatches checks membership for single-value answers and set
// intersection for multi-value answers.
func valueMatches(v model.AnswerValue, allowed []string) bool {
	if len(v.SelectedMany) > 0 {
		for _, sel := range v.SelectedMany {
			for _, a := range allowed {
				if sel == a {
					return true
				}
			}
		}
		return false
	}
	for _, a := range allowed {
		if v.Selected == a {
			return true
		}
	}
	return false
}

// ValidateAnswerShape checks a submitted value against the question type.
// The flow caller rejects malformed values before inserting them; the engine
// itself assumes well-typed input.
func ValidateAnswerShape(q *model.Question, v model.AnswerValue) error {
	switch q.Type {
	case model.QuestionTypeSingleChoice:
		if v.Selected == "" || len(v.SelectedMany) > 0 {
			return errShape(q, "expected a single selected option")
		}
		if !q.HasOption(v.Selected) {
			return errShape(q, "selected option is not in the catalog")
		}
	case model.QuestionTypeMultipleChoice:
		if len(v.SelectedMany) == 0 || v.Selected != "" {
			return errShape(q, "expected a list of selected options")
		}
		for _, s := range v.SelectedMany {
			if !q.HasOption(s) {
				return errShape(q, "selected option is not in the catalog")
			}
		}
	case model.QuestionTypeText:
		if v.Selected != "" || len(v.SelectedMany) > 0 {
			return errShape(q, "expected free text")
		}
	}
	return nil
}
