package assessment

import "github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"

// CheckConsistency cross-validates claimed capabilities against the knowledge
// checks behind them and returns human-readable contradiction strings. It
// never touches the axis scores; the red-flag generator consumes its output.
func CheckConsistency(bank *Bank, answers model.AnswerSet) []string {
	var flags []string
	firstSeason := ExperienceYears(answers) < 1

	if answers.Contains(QSkillsClaimed, SkillEmergencyBraking150) &&
		!bank.CorrectlyAnswered(answers, QStopDistance150) {
		flags = append(flags, "Claims confident emergency braking from 150 km/h but does not know the braking distance at that speed")
	}
	if answers.Contains(QSkillsClaimed, SkillTrailBraking) && firstSeason {
		flags = append(flags, "Claims trail braking in the first season of riding")
	}
	if answers.Contains(QSkillsClaimed, SkillUTurnNoFeet) && firstSeason {
		flags = append(flags, "Claims feet-up U-turns in the first season of riding")
	}
	if answers.Contains(QSkillsClaimed, SkillKneeDown) &&
		!answers.Contains(QTraining, "track_days") {
		flags = append(flags, "Claims knee-down cornering without any track-day training")
	}
	if answers.Is(QWobbleResponse, wrongWobbleBrake) {
		flags = append(flags, "Would brake during a handlebar wobble - the one response that makes it worse")
	}
	if answers.Is(QGripStyle, wrongGripTight) {
		flags = append(flags, "Holds the handlebar in a tight controlling grip instead of a light one")
	}

	return flags
}
