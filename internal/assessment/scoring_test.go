package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

func mustBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := DefaultBank()
	require.NoError(t, err)
	return bank
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		bracket string
		years   float64
	}{
		{"first_season", 0.5},
		{"1_3_years", 2},
		{"3_7_years", 5},
		{"over_7_years", 8},
		{"", 0},
	}
	for _, tt := range tests {
		answers := model.AnswerSet{}
		if tt.bracket != "" {
			answers[QExperience] = model.AnswerValue{Selected: tt.bracket}
		}
		assert.Equal(t, tt.years, ExperienceYears(answers), tt.bracket)
	}
}

func TestSelfRating(t *testing.T) {
	assert.Equal(t, 7, SelfRating(model.AnswerSet{QSelfRating: {Selected: "7"}}))
	assert.Equal(t, 0, SelfRating(model.AnswerSet{}))
	assert.Equal(t, 0, SelfRating(model.AnswerSet{QSelfRating: {Selected: "eleven"}}))
}

func TestScoreClamping(t *testing.T) {
	bank := mustBank(t)

	t.Run("empty answer set stays inside bounds", func(t *testing.T) {
		scores := Score(bank, model.AnswerSet{})
		assert.GreaterOrEqual(t, scores.RiskTaking, 0.0)
		assert.LessOrEqual(t, scores.RiskTaking, 10.0)
		assert.GreaterOrEqual(t, scores.TechnicalSkills, 0.0)
		assert.LessOrEqual(t, scores.TechnicalSkills, 10.0)
		assert.GreaterOrEqual(t, scores.Adequacy, -5.0)
		assert.LessOrEqual(t, scores.Adequacy, 5.0)
	})

	t.Run("empty answer set sits at the baselines", func(t *testing.T) {
		scores := Score(bank, model.AnswerSet{})
		assert.Equal(t, 5.0, scores.RiskTaking)
		assert.Equal(t, 2.5, scores.TechnicalSkills)
	})

	t.Run("extreme answers clamp instead of overflowing", func(t *testing.T) {
		answers := model.AnswerSet{
			QAge:             {Selected: "under_18"},
			QProfession:      {Selected: "extreme_sports"},
			QExperience:      {Selected: "first_season"},
			QABS:             {Selected: "no"},
			QCitySpeed:       {Selected: "over_100"},
			QGear:            {Selected: "minimal"},
			QRidingStyle:     {Selected: "aggressive"},
			QLaneFiltering:   {Selected: "always"},
			QFilteringDelta:  {Selected: "over_20"},
			QScarySituations: {Selected: "over_6"},
			QCrashCount:      {Selected: "three_plus"},
			QCrashSeverity:   {Selected: "serious"},
			QRiskAttitude:    {Selected: "adrenaline"},
			QAlcohol:         {Selected: "sometimes"},
			QSelfRating:      {Selected: "10"},
			QGripStyle:       {Selected: wrongGripTight},
			QWobbleResponse:  {Selected: wrongWobbleBrake},
		}
		scores := Score(bank, answers)
		assert.Equal(t, 10.0, scores.RiskTaking)
		assert.Equal(t, 0.0, scores.TechnicalSkills)
		assert.Equal(t, 5.0, scores.Adequacy)
	})
}

func TestScoreDeterminism(t *testing.T) {
	bank := mustBank(t)
	answers := model.AnswerSet{
		QAge:           {Selected: "26_35"},
		QExperience:    {Selected: "3_7_years"},
		QRidingStyle:   {Selected: "moderate"},
		QLaneFiltering: {Selected: "careful"},
		QSelfRating:    {Selected: "6"},
		QSkillsClaimed: {SelectedMany: []string{SkillTrailBraking}},
		QTraining:      {SelectedMany: []string{"track_days"}},
	}

	first := Score(bank, answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(bank, answers))
	}
}

func TestScoreIsTotal(t *testing.T) {
	bank := mustBank(t)

	// A partial, oddly shaped answer set must still produce in-range scores.
	answers := model.AnswerSet{
		QSelfRating: {Selected: "10"},
		QTraining:   {SelectedMany: []string{"none"}},
		QMotivation: {Text: "fun"},
	}
	scores := Score(bank, answers)
	assert.GreaterOrEqual(t, scores.RiskTaking, 0.0)
	assert.LessOrEqual(t, scores.RiskTaking, 10.0)
	assert.GreaterOrEqual(t, scores.Adequacy, -5.0)
	assert.LessOrEqual(t, scores.Adequacy, 5.0)
}

func TestUncorroboratedBrakingClaimCostsSkill(t *testing.T) {
	bank := mustBank(t)

	base := model.AnswerSet{
		QExperience:     {Selected: "3_7_years"},
		QStopDistance60: {Selected: correctStop60},
		QSelfRating:     {Selected: "6"},
	}

	withClaim := base.Clone()
	withClaim[QSkillsClaimed] = model.AnswerValue{SelectedMany: []string{SkillEmergencyBraking150}}
	withClaim[QStopDistance150] = model.AnswerValue{Selected: "60_80m"}

	withoutClaim := base.Clone()
	withoutClaim[QSkillsClaimed] = model.AnswerValue{SelectedMany: []string{"none"}}

	assert.Less(t, TechnicalSkills(bank, withClaim), TechnicalSkills(bank, withoutClaim),
		"an uncorroborated braking claim must cost skill points")
}

func TestCorroboratedBrakingClaimEarnsSkill(t *testing.T) {
	bank := mustBank(t)

	wrong := model.AnswerSet{
		QExperience:      {Selected: "over_7_years"},
		QSkillsClaimed:   {SelectedMany: []string{SkillEmergencyBraking150}},
		QStopDistance150: {Selected: "60_80m"},
	}
	right := wrong.Clone()
	right[QStopDistance150] = model.AnswerValue{Selected: correctStop150}

	assert.Greater(t, TechnicalSkills(bank, right), TechnicalSkills(bank, wrong))
}

func TestFilteringStagnationPenalty(t *testing.T) {
	bank := mustBank(t)

	veteran := model.AnswerSet{
		QExperience:    {Selected: "over_7_years"},
		QLaneFiltering: {Selected: "never"},
	}
	novice := model.AnswerSet{
		QExperience:    {Selected: "first_season"},
		QLaneFiltering: {Selected: "never"},
	}

	// Experience alone gives the veteran +3.5 over the novice; the capped
	// stagnation penalty claws back exactly 2 of that.
	vs := TechnicalSkills(bank, veteran)
	ns := TechnicalSkills(bank, novice)
	assert.InDelta(t, 1.5, vs-ns, 0.001)
}

func TestAdequacyAsymmetry(t *testing.T) {
	bank := mustBank(t)

	t.Run("first season overestimation is half counted", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience: {Selected: "first_season"},
			QSelfRating: {Selected: "7"},
		}
		skills := TechnicalSkills(bank, answers)
		full := 7.0 - 3.0 // rating minus rounded skills (2.5 rounds to 3)
		require.InDelta(t, 2.5, skills, 0.001)
		assert.InDelta(t, full*0.5, Adequacy(bank, answers, skills), 0.001)
	})

	t.Run("extreme first season rating is not discounted", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience: {Selected: "first_season"},
			QSelfRating: {Selected: "9"},
		}
		skills := TechnicalSkills(bank, answers)
		// 9 - 3 = 6 undiscounted, clamped to the axis ceiling
		assert.InDelta(t, 5.0, Adequacy(bank, answers, skills), 0.001)
	})

	t.Run("veteran underconfidence is amplified", func(t *testing.T) {
		answers := model.AnswerSet{
			QExperience:     {Selected: "over_7_years"},
			QSelfRating:     {Selected: "3"},
			QTraining:       {SelectedMany: []string{"track_days", "gymkhana"}},
			QWobbleResponse: {Selected: correctWobble},
			QGripStyle:      {Selected: correctGrip},
		}
		skills := TechnicalSkills(bank, answers)
		require.Greater(t, skills, 7.0)
		// rating minus rounded skills lands below the floor once the extra
		// underconfidence penalty applies
		assert.InDelta(t, -5.0, Adequacy(bank, answers, skills), 0.001)
	})
}
