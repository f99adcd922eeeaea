package model

import "time"

// Archetype is one of the ten named rider classifications
type Archetype string

const (
	ArchetypeDangerousNovice     Archetype = "Dangerous Novice"
	ArchetypeDunningKruger       Archetype = "Dunning-Kruger Rider"
	ArchetypeLuckySurvivor       Archetype = "Lucky Survivor"
	ArchetypeNervousBeginner     Archetype = "Nervous Beginner"
	ArchetypeCautiousExpert      Archetype = "Cautious Expert"
	ArchetypeImpostorSyndrome    Archetype = "Impostor Syndrome"
	ArchetypeSkilledPessimist    Archetype = "Skilled Pessimist"
	ArchetypeCalculatedRiskTaker Archetype = "Calculated Risk-Taker"
	ArchetypeOverconfidentInter  Archetype = "Overconfident Intermediate"
	ArchetypeBalancedRider       Archetype = "Balanced Rider"
)

// DangerLevel is the coarse risk-exposure bucket
type DangerLevel string

const (
	DangerLow      DangerLevel = "LOW"
	DangerMedium   DangerLevel = "MEDIUM"
	DangerHigh     DangerLevel = "HIGH"
	DangerCritical DangerLevel = "CRITICAL"
)

// AxisScores are the three independent rider dimensions.
// RiskTaking and TechnicalSkills are clamped to [0,10], Adequacy to [-5,5].
type AxisScores struct {
	RiskTaking      float64 `json:"riskTaking" bson:"riskTaking"`
	TechnicalSkills float64 `json:"technicalSkills" bson:"technicalSkills"`
	Adequacy        float64 `json:"adequacy" bson:"adequacy"`
}

// Profile is the terminal artifact of a completed assessment. Created once per
// answer set and never mutated afterwards.
type Profile struct {
	ID              string      `json:"id,omitempty" bson:"_id,omitempty"`
	AssessmentID    string      `json:"assessmentId,omitempty" bson:"assessmentId,omitempty"`
	RiderID         string      `json:"riderId,omitempty" bson:"riderId,omitempty"`
	Scores          AxisScores  `json:"scores" bson:"scores"`
	SafetyIndex     float64     `json:"safetyIndex" bson:"safetyIndex"`
	GrowthPotential float64     `json:"growthPotential" bson:"growthPotential"`
	DangerLevel     DangerLevel `json:"dangerLevel" bson:"dangerLevel"`
	Archetype       Archetype   `json:"archetype" bson:"archetype"`
	Characteristics []string    `json:"characteristics" bson:"characteristics"`
	Recommendations []string    `json:"recommendations" bson:"recommendations"`
	RedFlags        []string    `json:"redFlags" bson:"redFlags"`
	CreatedAt       time.Time   `json:"createdAt" bson:"createdAt"`
}
