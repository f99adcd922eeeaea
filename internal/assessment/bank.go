package assessment

import (
	"fmt"
	"sort"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// Bank is a validated, order-sorted question catalog. Construct with NewBank;
// a Bank is immutable after construction and safe for concurrent use.
type Bank struct {
	questions []model.Question
	byID      map[string]*model.Question
}

// NewBank validates the catalog and returns it sorted by Order.
// Validation failures are configuration errors and abort loading.
func NewBank(questions []model.Question) (*Bank, error) {
	b := &Bank{
		questions: make([]model.Question, len(questions)),
		byID:      make(map[string]*model.Question, len(questions)),
	}
	copy(b.questions, questions)
	sort.SliceStable(b.questions, func(i, j int) bool {
		return b.questions[i].Order < b.questions[j].Order
	})

	for i := range b.questions {
		q := &b.questions[i]
		if q.ID == "" {
			return nil, fmt.Errorf("question at order %d has empty id", q.Order)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		b.byID[q.ID] = q
	}

	for i := range b.questions {
		if err := b.validateQuestion(&b.questions[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bank) validateQuestion(q *model.Question) error {
	switch q.Type {
	case model.QuestionTypeSingleChoice, model.QuestionTypeMultipleChoice, model.QuestionTypeText:
	default:
		return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
	}

	if q.MultiChoice != (q.Type == model.QuestionTypeMultipleChoice) {
		return fmt.Errorf("question %q: multiChoice=%v inconsistent with type %q", q.ID, q.MultiChoice, q.Type)
	}
	if q.Type != model.QuestionTypeText && len(q.Answers) == 0 {
		return fmt.Errorf("question %q: choice question has no answer options", q.ID)
	}

	if q.DependsOn != "" {
		if _, ok := b.byID[q.DependsOn]; !ok {
			return fmt.Errorf("question %q: dependsOn references unknown question %q", q.ID, q.DependsOn)
		}
		if q.DependsOn == q.ID {
			return fmt.Errorf("question %q: dependsOn references itself", q.ID)
		}
	}
	for ref, allowed := range q.ShowConditions {
		if ref == q.ID {
			return fmt.Errorf("question %q: showConditions references itself", q.ID)
		}
		if _, ok := b.byID[ref]; !ok {
			return fmt.Errorf("question %q: showConditions references unknown question %q", q.ID, ref)
		}
		if len(allowed) == 0 {
			return fmt.Errorf("question %q: showConditions for %q has empty value set", q.ID, ref)
		}
	}
	return nil
}

// Questions returns the catalog in ascending Order.
func (b *Bank) Questions() []model.Question {
	return b.questions
}

// Question looks up a catalog entry by id, nil if absent.
func (b *Bank) Question(id string) *model.Question {
	return b.byID[id]
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// CorrectlyAnswered reports whether a knowledge-check question was answered
// with its ground-truth value. Always false for non-knowledge questions or
// unanswered ones.
func (b *Bank) CorrectlyAnswered(answers model.AnswerSet, questionID string) bool {
	q := b.byID[questionID]
	if q == nil || !q.IsKnowledgeCheck() {
		return false
	}
	return answers.Is(questionID, q.CorrectAnswer)
}
