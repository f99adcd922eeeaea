package assessment

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// cautiousExpertAnswers is a veteran rider with strong verified knowledge and
// deliberately low exposure.
func cautiousExpertAnswers() model.AnswerSet {
	return model.AnswerSet{
		QAge:               {Selected: "36_45"},
		QProfession:        {Selected: "office"},
		QExperience:        {Selected: "over_7_years"},
		QSeasonDays:        {Selected: "50_100"},
		QABS:               {Selected: "yes"},
		QCitySpeed:         {Selected: "up_to_60"},
		QGear:              {Selected: "full_gear"},
		QRidingStyle:       {Selected: "calm"},
		QLaneFiltering:     {Selected: "careful"},
		QFilteringDelta:    {Selected: "up_to_10"},
		QLanePosition:      {Selected: "varies"},
		QScarySituations:   {Selected: "none"},
		QCrashCount:        {Selected: "none"},
		QRiskAttitude:      {Selected: "risk_managed"},
		QPassenger:         {Selected: "never"},
		QSelfRating:        {Selected: "6"},
		QSkillsClaimed:     {SelectedMany: []string{SkillEmergencyBraking150, SkillTrailBraking}},
		QStopDistance60:    {Selected: correctStop60},
		QStopDistance100:   {Selected: correctStop100},
		QStopDistance150:   {Selected: correctStop150},
		QWobbleResponse:    {Selected: correctWobble},
		QGripStyle:         {Selected: correctGrip},
		QTraining:          {SelectedMany: []string{"track_days", "advanced_course"}},
		QFears:             {SelectedMany: []string{"rain"}},
		QAlcohol:           {Selected: "never"},
		QMaintenanceChecks: {Selected: "before_every_ride"},
		QMotivation:        {Text: "quiet mountain roads"},
	}
}

// dangerousNoviceAnswers is a first-season rider with maximal exposure, wrong
// reflexes and an inflated self-rating.
func dangerousNoviceAnswers() model.AnswerSet {
	return model.AnswerSet{
		QAge:               {Selected: "18_25"},
		QProfession:        {Selected: "other"},
		QExperience:        {Selected: "first_season"},
		QSeasonDays:        {Selected: "over_100"},
		QABS:               {Selected: "no"},
		QCitySpeed:         {Selected: "over_100"},
		QGear:              {Selected: "minimal"},
		QRidingStyle:       {Selected: "aggressive"},
		QLaneFiltering:     {Selected: "always"},
		QFilteringDelta:    {Selected: "over_20"},
		QLanePosition:      {Selected: "center"},
		QScarySituations:   {Selected: "over_6"},
		QSituations:        {SelectedMany: []string{SitRearEndedCar, SitBalanceFall, SitSlipperyFall, SitCorneringWide}},
		QCrashCount:        {Selected: "three_plus"},
		QCrashSeverity:     {Selected: "serious"},
		QRiskAttitude:      {Selected: "adrenaline"},
		QPassenger:         {Selected: "often"},
		QPassengerWhen:     {Selected: "first_season"},
		QSelfRating:        {Selected: "9"},
		QSkillsClaimed:     {SelectedMany: []string{SkillEmergencyBraking150, SkillTrailBraking, SkillUTurnNoFeet, SkillKneeDown, SkillWheelie}},
		QStopDistance60:    {Selected: "10_15m"},
		QStopDistance100:   {Selected: "25_35m"},
		QStopDistance150:   {Selected: "60_80m"},
		QWobbleResponse:    {Selected: wrongWobbleBrake},
		QGripStyle:         {Selected: wrongGripTight},
		QTraining:          {SelectedMany: []string{"none"}},
		QFears:             {SelectedMany: []string{"none"}},
		QAlcohol:           {Selected: "sometimes"},
		QMaintenanceChecks: {Selected: "service_only"},
		QMotivation:        {Text: "speed"},
	}
}

func TestCautiousExpertScenario(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	profile := ScoreAndClassify(bank, cautiousExpertAnswers())

	assert.Less(t, profile.Scores.RiskTaking, 4.0)
	assert.Greater(t, profile.Scores.TechnicalSkills, 7.0)
	assert.Equal(t, model.ArchetypeCautiousExpert, profile.Archetype)
	assert.Equal(t, model.DangerLow, profile.DangerLevel)
	assert.Empty(t, profile.RedFlags)
}

func TestDangerousNoviceScenario(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	profile := ScoreAndClassify(bank, dangerousNoviceAnswers())

	assert.Greater(t, profile.Scores.RiskTaking, 7.0)
	assert.Less(t, profile.Scores.TechnicalSkills, 3.5)
	assert.Greater(t, profile.Scores.Adequacy, 2.0)
	assert.Equal(t, model.ArchetypeDangerousNovice, profile.Archetype)
	assert.Equal(t, model.DangerCritical, profile.DangerLevel)
	assert.NotEmpty(t, profile.RedFlags)

	// The braking trap pair fired: the claim is there, the knowledge is not.
	found := false
	for _, flag := range profile.RedFlags {
		if strings.Contains(flag, "150 km/h") {
			found = true
		}
	}
	assert.True(t, found, "expected the uncorroborated braking claim in the red flags")
}

func TestScoreAndClassifyDeterminism(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)
	answers := dangerousNoviceAnswers()

	first, err := json.Marshal(ScoreAndClassify(bank, answers))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(ScoreAndClassify(bank, answers))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestScoreAndClassifyDoesNotMutateAnswers(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	answers := cautiousExpertAnswers()
	snapshot := answers.Clone()
	_ = ScoreAndClassify(bank, answers)
	assert.Equal(t, snapshot, answers)
}

func TestProfileScoresAreRounded(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)

	p := ScoreAndClassify(bank, cautiousExpertAnswers())
	for _, v := range []float64{p.Scores.RiskTaking, p.Scores.TechnicalSkills, p.Scores.Adequacy, p.SafetyIndex, p.GrowthPotential} {
		assert.InDelta(t, math.Round(v*10), v*10, 1e-9)
	}
}
