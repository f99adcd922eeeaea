package assessment

import (
	"math"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// ScoreAndClassify turns a completed answer set into the final rider profile.
// It runs scoring, consistency checking, classification and narrative
// generation in that fixed order, never mutating the answer set. Calling it
// twice on the same answers yields an identical profile; ids and timestamps
// are the persistence layer's concern.
func ScoreAndClassify(bank *Bank, answers model.AnswerSet) *model.Profile {
	scores := Score(bank, answers)
	consistencyFlags := CheckConsistency(bank, answers)
	archetype := Classify(scores)
	danger := DangerLevelFor(scores)
	years := ExperienceYears(answers)

	characteristics, recommendations, redFlags := BuildNarrative(scores, archetype, danger, years, consistencyFlags)

	return &model.Profile{
		Scores: model.AxisScores{
			RiskTaking:      round1(scores.RiskTaking),
			TechnicalSkills: round1(scores.TechnicalSkills),
			Adequacy:        round1(scores.Adequacy),
		},
		SafetyIndex:     round1(SafetyIndex(scores)),
		GrowthPotential: round1(GrowthPotential(scores, years)),
		DangerLevel:     danger,
		Archetype:       archetype,
		Characteristics: characteristics,
		Recommendations: recommendations,
		RedFlags:        redFlags,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
