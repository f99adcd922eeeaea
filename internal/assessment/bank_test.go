package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

func validQuestion(id string, order int) model.Question {
	return model.Question{
		ID:      id,
		Order:   order,
		Text:    "q",
		Level:   model.LevelBasic,
		Type:    model.QuestionTypeSingleChoice,
		Answers: []string{"a", "b"},
	}
}

func TestNewBankValidation(t *testing.T) {
	t.Run("rejects empty id", func(t *testing.T) {
		_, err := NewBank([]model.Question{validQuestion("", 10)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty id")
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := NewBank([]model.Question{
			validQuestion("dup", 10),
			validQuestion("dup", 20),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects unknown question type", func(t *testing.T) {
		q := validQuestion("q1", 10)
		q.Type = "slider"
		_, err := NewBank([]model.Question{q})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown type")
	})

	t.Run("rejects multiChoice flag inconsistent with type", func(t *testing.T) {
		q := validQuestion("q1", 10)
		q.MultiChoice = true
		_, err := NewBank([]model.Question{q})
		require.Error(t, err)

		q2 := validQuestion("q2", 10)
		q2.Type = model.QuestionTypeMultipleChoice
		q2.MultiChoice = false
		_, err = NewBank([]model.Question{q2})
		require.Error(t, err)
	})

	t.Run("rejects choice question without options", func(t *testing.T) {
		q := validQuestion("q1", 10)
		q.Answers = nil
		_, err := NewBank([]model.Question{q})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no answer options")
	})

	t.Run("text question needs no options", func(t *testing.T) {
		q := validQuestion("q1", 10)
		q.Type = model.QuestionTypeText
		q.Answers = nil
		_, err := NewBank([]model.Question{q})
		assert.NoError(t, err)
	})

	t.Run("rejects dangling dependsOn", func(t *testing.T) {
		q := validQuestion("q1", 10)
		q.DependsOn = "missing"
		_, err := NewBank([]model.Question{q})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dependsOn")
	})

	t.Run("rejects self-referencing dependsOn", func(t *testing.T) {
		q := validQuestion("q1", 10)
		q.DependsOn = "q1"
		_, err := NewBank([]model.Question{q})
		require.Error(t, err)
	})

	t.Run("rejects dangling showConditions reference", func(t *testing.T) {
		q := validQuestion("q1", 10)
		q.ShowConditions = map[string][]string{"missing": {"a"}}
		_, err := NewBank([]model.Question{q})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "showConditions")
	})

	t.Run("rejects empty showConditions value set", func(t *testing.T) {
		a := validQuestion("a", 10)
		b := validQuestion("b", 20)
		b.ShowConditions = map[string][]string{"a": {}}
		_, err := NewBank([]model.Question{a, b})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty value set")
	})

	t.Run("sorts by order regardless of input order", func(t *testing.T) {
		bank, err := NewBank([]model.Question{
			validQuestion("third", 30),
			validQuestion("first", 10),
			validQuestion("second", 20),
		})
		require.NoError(t, err)
		qs := bank.Questions()
		assert.Equal(t, "first", qs[0].ID)
		assert.Equal(t, "second", qs[1].ID)
		assert.Equal(t, "third", qs[2].ID)
	})
}

func TestDefaultBank(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)
	assert.Equal(t, 30, bank.Len())

	t.Run("lookup by id", func(t *testing.T) {
		q := bank.Question(QExperience)
		require.NotNil(t, q)
		assert.True(t, q.IsHubQuestion)
		assert.Nil(t, bank.Question("no_such_question"))
	})

	t.Run("gated questions reference their hubs", func(t *testing.T) {
		q := bank.Question(QStopDistance150)
		require.NotNil(t, q)
		assert.Equal(t, QSkillsClaimed, q.DependsOn)
		assert.Equal(t, []string{SkillEmergencyBraking150}, q.ShowConditions[QSkillsClaimed])
	})

	t.Run("knowledge checks carry correct answers", func(t *testing.T) {
		for _, id := range []string{QStopDistance60, QStopDistance100, QStopDistance150, QWobbleResponse, QGripStyle} {
			q := bank.Question(id)
			require.NotNil(t, q, id)
			assert.True(t, q.IsKnowledgeCheck(), id)
			assert.True(t, q.HasOption(q.CorrectAnswer), id)
		}
	})
}

func TestCorrectlyAnswered(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	t.Run("true for the ground-truth value", func(t *testing.T) {
		answers := model.AnswerSet{QWobbleResponse: {Selected: correctWobble}}
		assert.True(t, bank.CorrectlyAnswered(answers, QWobbleResponse))
	})

	t.Run("false for a wrong value", func(t *testing.T) {
		answers := model.AnswerSet{QWobbleResponse: {Selected: wrongWobbleBrake}}
		assert.False(t, bank.CorrectlyAnswered(answers, QWobbleResponse))
	})

	t.Run("false when unanswered", func(t *testing.T) {
		assert.False(t, bank.CorrectlyAnswered(model.AnswerSet{}, QWobbleResponse))
	})

	t.Run("false for non-knowledge questions", func(t *testing.T) {
		answers := model.AnswerSet{QGear: {Selected: "full_gear"}}
		assert.False(t, bank.CorrectlyAnswered(answers, QGear))
	})
}
