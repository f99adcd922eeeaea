package assessment

import (
	"math"
	"strconv"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// Axis baselines and clamp bounds.
const (
	riskBaseline  = 5.0
	skillBaseline = 2.0

	riskMin, riskMax         = 0.0, 10.0
	skillMin, skillMax       = 0.0, 10.0
	adequacyMin, adequacyMax = -5.0, 5.0
)

// Tunable scoring parameters. The calibration behind these is product
// judgment carried over from the live questionnaire, not derived law.
const (
	expectedCrashesPerYear = 0.7

	filteringPenaltyEarly = 0.2 // 2-4 years not filtering
	filteringPenaltyMid   = 0.3 // 4-7 years
	filteringPenaltyLate  = 0.4 // 7+ years
	filteringPenaltyCap   = 2.0

	nearMissGrowthMid  = 0.1  // per year, 4-6 scary situations per season
	nearMissGrowthHigh = 0.15 // per year, 6+ scary situations per season
)

// scoreInput snapshots the answer set plus derived facts the rule tables
// read. Built once per assessment so all three axes see identical state.
type scoreInput struct {
	answers model.AnswerSet
	bank    *Bank

	years      float64
	selfRating int
	crashes    int
	fallCount  int
	skills     float64 // rounded technical skills, adequacy rules only
}

func newScoreInput(bank *Bank, answers model.AnswerSet) *scoreInput {
	return &scoreInput{
		answers:    answers,
		bank:       bank,
		years:      ExperienceYears(answers),
		selfRating: SelfRating(answers),
		crashes:    crashCount(answers),
		fallCount:  fallSituationCount(answers),
	}
}

func (in *scoreInput) trained(kind string) bool {
	return in.answers.Contains(QTraining, kind)
}

func (in *scoreInput) claims(skill string) bool {
	return in.answers.Contains(QSkillsClaimed, skill)
}

// ExperienceYears maps the experience bracket to representative years.
// Every experience-scaled rule reads this value.
func ExperienceYears(answers model.AnswerSet) float64 {
	switch answers[QExperience].Selected {
	case "first_season":
		return 0.5
	case "1_3_years":
		return 2
	case "3_7_years":
		return 5
	case "over_7_years":
		return 8
	}
	return 0
}

// SelfRating returns the 1-10 self-assessment, 0 if unanswered.
func SelfRating(answers model.AnswerSet) int {
	n, err := strconv.Atoi(answers[QSelfRating].Selected)
	if err != nil || n < 1 || n > 10 {
		return 0
	}
	return n
}

func crashCount(answers model.AnswerSet) int {
	switch answers[QCrashCount].Selected {
	case "one":
		return 1
	case "two":
		return 2
	case "three_plus":
		return 4
	}
	return 0
}

// fallSituationCount counts reported situations that ended with the bike on
// the ground, as opposed to survived near-misses.
func fallSituationCount(answers model.AnswerSet) int {
	return answers.CountOf(QSituations,
		SitPassengerFall, SitBalanceFall, SitSlipperyFall, SitCorneringWide)
}

// rule is one ordered (predicate, delta) entry in an axis table. Each rule
// returns its contribution; 0 means the rule did not fire.
type rule struct {
	name string
	eval func(in *scoreInput) float64
}

func sumRules(rules []rule, in *scoreInput) float64 {
	total := 0.0
	for _, r := range rules {
		total += r.eval(in)
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pick returns the delta for the selected option of a single-choice question.
// Unanswered or unmapped options contribute zero.
func pick(answers model.AnswerSet, questionID string, deltas map[string]float64) float64 {
	return deltas[answers[questionID].Selected]
}

// ── Risk-Taking ──────────────────────────────────────────────────────────────

var riskRules = []rule{
	{"age", func(in *scoreInput) float64 {
		return pick(in.answers, QAge, map[string]float64{
			"under_18": 1.5, "18_25": 1.0, "26_35": 0.3, "36_45": -0.3, "46_plus": -0.5,
		})
	}},
	{"profession", func(in *scoreInput) float64 {
		return pick(in.answers, QProfession, map[string]float64{
			"extreme_sports": 1.0, "military": 0.5, "driver": -0.5,
		})
	}},
	{"no_abs", func(in *scoreInput) float64 {
		if in.answers.Is(QABS, "no") {
			return 0.5
		}
		return 0
	}},
	{"city_speed", func(in *scoreInput) float64 {
		return pick(in.answers, QCitySpeed, map[string]float64{
			"up_to_60": -1.0, "80_100": 1.0, "over_100": 2.0,
		})
	}},
	{"gear", func(in *scoreInput) float64 {
		return pick(in.answers, QGear, map[string]float64{
			"full_gear": -1.0, "helmet_only": 1.0, "minimal": 2.0,
		})
	}},
	{"riding_style", func(in *scoreInput) float64 {
		return pick(in.answers, QRidingStyle, map[string]float64{
			"calm": -1.0, "aggressive": 1.5,
		})
	}},
	{"lane_filtering", func(in *scoreInput) float64 {
		d := pick(in.answers, QLaneFiltering, map[string]float64{
			"never": -0.5, "always": 1.0,
		})
		if in.answers.Is(QFilteringDelta, "over_20") {
			d += 0.5
		}
		return d
	}},
	{"scary_situations", func(in *scoreInput) float64 {
		// Near-misses should fade with experience. Persistent high frequency
		// at high experience is penalized more, not less.
		switch in.answers[QScarySituations].Selected {
		case "none":
			return -1.0
		case "1_3":
			return 0.5
		case "4_6":
			return 1.0 + nearMissGrowthMid*in.years
		case "over_6":
			return 2.0 + nearMissGrowthHigh*in.years
		}
		return 0
	}},
	{"crashes_vs_expected", func(in *scoreInput) float64 {
		expected := in.years * expectedCrashesPerYear
		excess := float64(in.crashes) - expected
		if excess > 0 {
			return math.Min(2.0, excess*0.5)
		}
		if in.crashes == 0 && in.years > 3 {
			return -0.5
		}
		return 0
	}},
	{"crash_severity", func(in *scoreInput) float64 {
		if in.answers.Is(QCrashSeverity, "serious") {
			return 0.5
		}
		return 0
	}},
	{"risk_attitude", func(in *scoreInput) float64 {
		return pick(in.answers, QRiskAttitude, map[string]float64{
			"avoid_risk": -1.0, "risk_managed": -0.5, "risk_part_of_ride": 1.0, "adrenaline": 2.0,
		})
	}},
	{"lane_position", func(in *scoreInput) float64 {
		return pick(in.answers, QLanePosition, map[string]float64{
			"center": 0.5, "left_track": -0.3, "varies": -0.5,
		})
	}},
	{"alcohol", func(in *scoreInput) float64 {
		return pick(in.answers, QAlcohol, map[string]float64{
			"rarely_small": 1.0, "sometimes": 2.0,
		})
	}},
	{"maintenance", func(in *scoreInput) float64 {
		if in.answers.Is(QMaintenanceChecks, "service_only") {
			return 0.3
		}
		return 0
	}},
	{"situations", func(in *scoreInput) float64 {
		d := 0.0
		if in.answers.Contains(QSituations, SitRearEndedCar) {
			d += 1.0
		}
		if in.answers.Contains(QSituations, SitPassengerFall) {
			d += 0.5
		}
		if in.fallCount >= 3 {
			d += 1.0
		}
		return d
	}},
}

// ── Technical Skills ─────────────────────────────────────────────────────────

var skillRules = []rule{
	{"experience", func(in *scoreInput) float64 {
		switch {
		case in.years < 1:
			return 0.5
		case in.years < 3:
			return 2.0
		case in.years < 7:
			return 3.0
		default:
			return 4.0
		}
	}},
	{"filtering_vs_experience", func(in *scoreInput) float64 {
		// Not filtering after two seasons signals stalled traffic craft;
		// the penalty grows with years, capped.
		if in.answers.Is(QLaneFiltering, "never") && in.years >= 2 {
			mult := filteringPenaltyEarly
			switch {
			case in.years >= 7:
				mult = filteringPenaltyLate
			case in.years >= 4:
				mult = filteringPenaltyMid
			}
			return -math.Min(filteringPenaltyCap, mult*in.years)
		}
		if in.years >= 1 {
			if in.answers.Is(QLaneFiltering, "careful") {
				return 0.5
			}
			if in.answers.Is(QLaneFiltering, "always") {
				return 0.3
			}
		}
		return 0
	}},
	{"training", func(in *scoreInput) float64 {
		d := 0.0
		if in.trained("gymkhana") {
			d += 0.8
		}
		if in.trained("track_days") {
			d += 1.0
		}
		if in.trained("motocross") {
			d += 0.7
		}
		if in.trained("enduro") {
			d += 0.5
		}
		if in.trained("advanced_course") {
			d += 0.5
		}
		return d
	}},
	{"stopping_distances", func(in *scoreInput) float64 {
		d := 0.0
		if in.bank.CorrectlyAnswered(in.answers, QStopDistance60) {
			d += 0.3
		}
		if in.bank.CorrectlyAnswered(in.answers, QStopDistance100) {
			d += 0.4
		}
		if in.bank.CorrectlyAnswered(in.answers, QStopDistance150) {
			d += 0.5
		}
		return d
	}},
	{"claimed_skills", func(in *scoreInput) float64 {
		// Claims count only when corroborated by knowledge, experience or
		// training. An uncorroborated braking claim costs points.
		d := 0.0
		if in.claims(SkillEmergencyBraking150) {
			if in.bank.CorrectlyAnswered(in.answers, QStopDistance150) {
				d += 0.5
			} else {
				d -= 0.5
			}
		}
		if in.claims(SkillTrailBraking) && in.years >= 1 {
			d += 0.5
		}
		if in.claims(SkillUTurnNoFeet) && in.years >= 1 {
			d += 0.4
		}
		if in.claims(SkillKneeDown) && in.trained("track_days") {
			d += 0.5
		}
		if in.claims(SkillSwerveHighSpeed) && in.years >= 3 {
			d += 0.4
		}
		return d
	}},
	{"wobble_response", func(in *scoreInput) float64 {
		// The single critical wrong answer: braking amplifies a wobble.
		if in.answers.Is(QWobbleResponse, wrongWobbleBrake) {
			return -1.0
		}
		if in.answers.Is(QWobbleResponse, correctWobble) {
			return 1.0
		}
		return 0
	}},
	{"grip_style", func(in *scoreInput) float64 {
		if in.answers.Is(QGripStyle, wrongGripTight) {
			return -2.0
		}
		if in.answers.Is(QGripStyle, correctGrip) {
			return 0.5
		}
		return 0
	}},
	{"situations", func(in *scoreInput) float64 {
		d := 0.0
		if in.answers.Contains(QSituations, SitFrontWheelLock) {
			d += 0.5 // survived a front lockup
		}
		if in.answers.Contains(QSituations, SitWobble) {
			d += 0.3
		}
		if in.answers.Contains(QSituations, SitPassengerFall) {
			d -= 0.3
		}
		if in.answers.Contains(QSituations, SitBalanceFall) {
			d -= 0.5 // basic balance gap
		}
		if in.answers.Contains(QSituations, SitSlipperyFall) {
			d -= 0.2
		}
		if in.answers.Contains(QSituations, SitCorneringWide) {
			d -= 0.3
		}
		if in.answers.Contains(QSituations, SitRearEndedCar) {
			d -= 0.4
		}
		return d
	}},
	{"maintenance", func(in *scoreInput) float64 {
		if in.answers.Is(QMaintenanceChecks, "before_every_ride") {
			return 0.2
		}
		return 0
	}},
}

// ── Self-Assessment Adequacy ─────────────────────────────────────────────────

var adequacyRules = []rule{
	{"age", func(in *scoreInput) float64 {
		return pick(in.answers, QAge, map[string]float64{
			"under_18": 0.5, "46_plus": -0.3,
		})
	}},
	{"profession", func(in *scoreInput) float64 {
		return pick(in.answers, QProfession, map[string]float64{
			"extreme_sports": 0.5, "military": 0.3,
		})
	}},
	{"scary_vs_expected", func(in *scoreInput) float64 {
		if in.answers.Is(QScarySituations, "none") && in.years < 2 {
			return 0.5 // a first-year rider who never gets scared is not looking
		}
		if in.answers.Is(QScarySituations, "over_6") {
			return -0.5
		}
		return 0
	}},
	{"fears_vs_expected", func(in *scoreInput) float64 {
		if in.answers.Contains(QFears, "none") && in.years < 3 {
			return 0.5
		}
		fears := len(in.answers.Selections(QFears))
		if in.answers.Contains(QFears, "none") {
			fears--
		}
		if fears >= 3 && in.years > 5 {
			return -0.5
		}
		return 0
	}},
	{"early_passenger", func(in *scoreInput) float64 {
		if in.answers.Is(QPassengerWhen, "first_season") {
			return 0.5
		}
		return 0
	}},
	{"falls_vs_rating", func(in *scoreInput) float64 {
		if in.fallCount >= 2 && in.selfRating >= 8 {
			return 1.0
		}
		return 0
	}},
}

// RiskTaking computes the risk axis, clamped to [0,10].
func RiskTaking(bank *Bank, answers model.AnswerSet) float64 {
	in := newScoreInput(bank, answers)
	return clamp(riskBaseline+sumRules(riskRules, in), riskMin, riskMax)
}

// TechnicalSkills computes the skill axis, clamped to [0,10].
func TechnicalSkills(bank *Bank, answers model.AnswerSet) float64 {
	in := newScoreInput(bank, answers)
	return clamp(skillBaseline+sumRules(skillRules, in), skillMin, skillMax)
}

// Adequacy computes the self-assessment axis from the self-rating and the
// already-computed skill axis, clamped to [-5,5].
func Adequacy(bank *Bank, answers model.AnswerSet, technicalSkills float64) float64 {
	in := newScoreInput(bank, answers)
	in.skills = math.Round(technicalSkills)

	acc := float64(in.selfRating) - in.skills
	acc += sumRules(adequacyRules, in)

	// Asymmetric experience rule. Overestimation in the first season is
	// normal and only half-counted, unless the self-rating is extreme.
	// Sustained underconfidence despite mastery is a problem of its own.
	if in.years < 1 && acc > 0 && in.selfRating < 9 {
		acc *= 0.5
	}
	if in.years > 7 && in.selfRating > 0 && in.selfRating < 5 && acc < 0 {
		acc -= 1.0
	}

	return clamp(acc, adequacyMin, adequacyMax)
}

// Score computes all three axes from the same immutable answer set.
func Score(bank *Bank, answers model.AnswerSet) model.AxisScores {
	risk := RiskTaking(bank, answers)
	skills := TechnicalSkills(bank, answers)
	return model.AxisScores{
		RiskTaking:      risk,
		TechnicalSkills: skills,
		Adequacy:        Adequacy(bank, answers, skills),
	}
}
