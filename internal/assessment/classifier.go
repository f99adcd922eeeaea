package assessment

import (
	"math"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// archetypeRule is one ordered classification predicate. Ranges overlap by
// design; the first matching rule wins, so the order of archetypeRules is
// part of the behavior and must not be reordered.
type archetypeRule struct {
	archetype model.Archetype
	matches   func(risk, skills, adequacy float64) bool
}

var archetypeRules = []archetypeRule{
	{model.ArchetypeDangerousNovice, func(r, s, a float64) bool {
		return r > 6 && s < 3.5 && a > 2
	}},
	{model.ArchetypeDunningKruger, func(r, s, a float64) bool {
		return s < 5 && a > 2.5
	}},
	{model.ArchetypeLuckySurvivor, func(r, s, a float64) bool {
		return r > 7 && s < 5
	}},
	{model.ArchetypeNervousBeginner, func(r, s, a float64) bool {
		return s < 3.5 && r < 4 && a < -1
	}},
	{model.ArchetypeCautiousExpert, func(r, s, a float64) bool {
		return s > 7 && r < 4
	}},
	{model.ArchetypeImpostorSyndrome, func(r, s, a float64) bool {
		return s >= 6 && a < -2.5
	}},
	{model.ArchetypeSkilledPessimist, func(r, s, a float64) bool {
		return s >= 5 && a < -1.5
	}},
	{model.ArchetypeCalculatedRiskTaker, func(r, s, a float64) bool {
		return r > 6.5 && s > 6.5 && a >= -1.5 && a <= 1.5
	}},
	{model.ArchetypeOverconfidentInter, func(r, s, a float64) bool {
		return s >= 4 && s <= 7 && a > 1.5
	}},
}

// Classify maps a 3-axis position onto exactly one archetype. Total: falls
// through to Balanced Rider when no rule matches.
func Classify(scores model.AxisScores) model.Archetype {
	for _, rule := range archetypeRules {
		if rule.matches(scores.RiskTaking, scores.TechnicalSkills, scores.Adequacy) {
			return rule.archetype
		}
	}
	return model.ArchetypeBalancedRider
}

// SafetyIndex is the derived scalar skills - risk - |adequacy|.
func SafetyIndex(scores model.AxisScores) float64 {
	return scores.TechnicalSkills - scores.RiskTaking - math.Abs(scores.Adequacy)
}

// DangerLevelFor buckets overall risk exposure. The critical combination is
// checked on absolute thresholds; the rest graduates on the safety index.
func DangerLevelFor(scores model.AxisScores) model.DangerLevel {
	if scores.RiskTaking > 7 && scores.TechnicalSkills < 4 && scores.Adequacy > 2 {
		return model.DangerCritical
	}
	switch safety := SafetyIndex(scores); {
	case safety < -3:
		return model.DangerHigh
	case safety < 1:
		return model.DangerMedium
	default:
		return model.DangerLow
	}
}

// GrowthPotential estimates remaining headroom: high for fresh low-skill
// riders, low for seasoned high-skill ones. Clamped to [0,10].
func GrowthPotential(scores model.AxisScores, years float64) float64 {
	return clamp(10-0.5*scores.TechnicalSkills-0.3*years, 0, 10)
}
