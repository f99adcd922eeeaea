package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

func TestCheckConsistency(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	t.Run("clean answers raise no flags", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience:      {Selected: "over_7_years"},
			QSkillsClaimed:   {SelectedMany: []string{SkillEmergencyBraking150, SkillTrailBraking}},
			QStopDistance150: {Selected: correctStop150},
			QWobbleResponse:  {Selected: correctWobble},
			QGripStyle:       {Selected: correctGrip},
		}
		assert.Empty(t, CheckConsistency(bank, answers))
	})

	t.Run("braking claim without the knowledge behind it", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience:      {Selected: "over_7_years"},
			QSkillsClaimed:   {SelectedMany: []string{SkillEmergencyBraking150}},
			QStopDistance150: {Selected: "60_80m"},
		}
		flags := CheckConsistency(bank, answers)
		require.Len(t, flags, 1)
		assert.Contains(t, flags[0], "150 km/h")
	})

	t.Run("advanced claims in the first season", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience:    {Selected: "first_season"},
			QSkillsClaimed: {SelectedMany: []string{SkillTrailBraking, SkillUTurnNoFeet}},
		}
		flags := CheckConsistency(bank, answers)
		assert.Len(t, flags, 2)
	})

	t.Run("knee down without track days", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience:    {Selected: "3_7_years"},
			QSkillsClaimed: {SelectedMany: []string{SkillKneeDown}},
			QTraining:      {SelectedMany: []string{"gymkhana"}},
		}
		flags := CheckConsistency(bank, answers)
		require.Len(t, flags, 1)
		assert.Contains(t, flags[0], "knee-down")
	})

	t.Run("knee down with track days is consistent", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience:    {Selected: "3_7_years"},
			QSkillsClaimed: {SelectedMany: []string{SkillKneeDown}},
			QTraining:      {SelectedMany: []string{"track_days"}},
		}
		assert.Empty(t, CheckConsistency(bank, answers))
	})

	t.Run("dangerous reflexes are flagged", func(t *testing.T) {
		answers := model.AnswerSet{
			QWobbleResponse: {Selected: wrongWobbleBrake},
			QGripStyle:      {Selected: wrongGripTight},
		}
		flags := CheckConsistency(bank, answers)
		assert.Len(t, flags, 2)
	})

	t.Run("flags never alter the axis scores", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience:     {Selected: "1_3_years"},
			QWobbleResponse: {Selected: wrongWobbleBrake},
		}
		before := Score(bank, answers)
		_ = CheckConsistency(bank, answers)
		assert.Equal(t, before, Score(bank, answers))
	})
}
