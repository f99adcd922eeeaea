package assessment

import "github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"

// archetypeText carries the fixed strings attached to each archetype.
type archetypeText struct {
	characteristic string
	recommendation string
}

var archetypeTexts = map[model.Archetype]archetypeText{
	model.ArchetypeDangerousNovice: {
		"New rider combining high risk appetite with untested skills",
		"Book a structured beginner course before the next season - not after",
	},
	model.ArchetypeDunningKruger: {
		"Confidence running well ahead of demonstrated skill",
		"Test your skills in a controlled environment: a gymkhana lot will recalibrate faster than traffic will",
	},
	model.ArchetypeLuckySurvivor: {
		"High exposure to risk survived so far without the skill margin to back it",
		"Treat past seasons as borrowed time: cut exposure and invest in emergency braking practice",
	},
	model.ArchetypeNervousBeginner: {
		"Careful, self-doubting start with skills still forming",
		"Ride more in low-stakes conditions; hours in the saddle will fix both skill and confidence",
	},
	model.ArchetypeCautiousExpert: {
		"Strong skills paired with deliberately low risk exposure",
		"Keep the habits that got you here; consider mentoring newer riders",
	},
	model.ArchetypeImpostorSyndrome: {
		"Demonstrated skill consistently underrated by its owner",
		"Your knowledge checks out - trust it, and validate it with an instructor if the doubt persists",
	},
	model.ArchetypeSkilledPessimist: {
		"Solid skills viewed through an overly critical lens",
		"Benchmark yourself against objective drills rather than worst-case memories",
	},
	model.ArchetypeCalculatedRiskTaker: {
		"Takes real risks, but with the skill and self-knowledge to price them",
		"Keep margins explicit: the profile works until fatigue or haste erodes it",
	},
	model.ArchetypeOverconfidentInter: {
		"Intermediate skills with self-belief a step ahead of them",
		"Close the gap with advanced training before the confidence writes checks the skills cannot cash",
	},
	model.ArchetypeBalancedRider: {
		"Risk, skill and self-assessment in reasonable balance",
		"Maintain the balance with a skills refresher each season",
	},
}

// expectedMinSkill is the floor a rider's skill axis should have reached for
// their experience. Used by the stagnation red flag.
func expectedMinSkill(years float64) float64 {
	switch {
	case years >= 5:
		return 5.0
	case years >= 3:
		return 4.0
	case years >= 1:
		return 3.0
	default:
		return 0
	}
}

// BuildNarrative derives characteristics, recommendations and red flags from
// the axis values, archetype and consistency output. Entries keep rule
// insertion order; callers must not assume any sorting.
func BuildNarrative(scores model.AxisScores, archetype model.Archetype, danger model.DangerLevel, years float64, consistencyFlags []string) (characteristics, recommendations, redFlags []string) {
	r, s, a := scores.RiskTaking, scores.TechnicalSkills, scores.Adequacy

	if r > 7 {
		characteristics = append(characteristics, "Seeks out situations most riders deliberately avoid")
	} else if r < 3 {
		characteristics = append(characteristics, "Structurally avoids risk on the road")
	}
	if s > 7 {
		characteristics = append(characteristics, "Technical skills in the top band for this questionnaire")
	} else if s < 3 {
		characteristics = append(characteristics, "Core machine-control skills still need deliberate work")
	}
	if a > 2 {
		characteristics = append(characteristics, "Rates own ability well above what the answers demonstrate")
	} else if a < -2 {
		characteristics = append(characteristics, "Rates own ability well below what the answers demonstrate")
	}
	if text, ok := archetypeTexts[archetype]; ok {
		characteristics = append(characteristics, text.characteristic)
	}

	if r > 7 {
		recommendations = append(recommendations, "Reduce exposure first: speed in traffic and gear discipline move the needle immediately")
	}
	if s < 4 {
		recommendations = append(recommendations, "Prioritize a practical training course over more street miles")
	}
	if a > 2 {
		recommendations = append(recommendations, "Get an objective skills assessment from an instructor")
	}
	if text, ok := archetypeTexts[archetype]; ok {
		recommendations = append(recommendations, text.recommendation)
	}

	redFlags = append(redFlags, consistencyFlags...)
	if min := expectedMinSkill(years); min > 0 && s < min-1 {
		if years > 5 && s < 4 {
			redFlags = append(redFlags, "Critical skill stagnation: years of riding without the skill growth that should come with them")
		} else {
			redFlags = append(redFlags, "Skill growth lagging behind riding experience")
		}
	}
	if danger == model.DangerCritical {
		redFlags = append(redFlags, "Critical danger level: high risk, low skill and overconfidence at the same time")
	}
	if r > 8 {
		redFlags = append(redFlags, "Extreme risk appetite")
	}
	if a > 4 {
		redFlags = append(redFlags, "Extreme overconfidence")
	}
	if r > 6 && s < 4 {
		redFlags = append(redFlags, "Risk exposure far above current skill level")
	}

	return characteristics, recommendations, redFlags
}
