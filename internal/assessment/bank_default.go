package assessment

import "github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"

// Question ids referenced by the flow, scoring and consistency rules.
const (
	QAge                = "rider_age"
	QProfession         = "profession"
	QExperience         = "experience_years"
	QSeasonDays         = "riding_days_per_season"
	QABS                = "moto_abs"
	QCitySpeed          = "city_speed"
	QGear               = "gear_level"
	QRidingStyle        = "riding_style"
	QLaneFiltering      = "lane_filtering"
	QFilteringDelta     = "filtering_speed_delta"
	QLanePosition       = "lane_position"
	QScarySituations    = "scary_situations"
	QSituations         = "situations_experienced"
	QCrashCount         = "crash_count"
	QCrashSeverity      = "crash_severity"
	QRiskAttitude       = "risk_attitude"
	QPassenger          = "passenger"
	QPassengerWhen      = "passenger_when"
	QSelfRating         = "self_rating"
	QSkillsClaimed      = "skills_claimed"
	QStopDistance60     = "stopping_distance_60"
	QStopDistance100    = "stopping_distance_100"
	QStopDistance150    = "stopping_distance_150"
	QWobbleResponse     = "wobble_response"
	QGripStyle          = "grip_style"
	QTraining           = "training"
	QFears              = "fears"
	QAlcohol            = "alcohol"
	QMaintenanceChecks  = "maintenance_checks"
	QMotivation         = "motivation"
)

// Claimed-skill labels (multi-select options of skills_claimed).
const (
	SkillEmergencyBraking150 = "emergency_braking_150"
	SkillTrailBraking        = "trail_braking"
	SkillUTurnNoFeet         = "u_turn_no_feet"
	SkillKneeDown            = "knee_down"
	SkillSwerveHighSpeed     = "swerve_high_speed"
	SkillWheelie             = "wheelie"
)

// Situation labels (multi-select options of situations_experienced).
const (
	SitRearEndedCar   = "rear_ended_car"
	SitPassengerFall  = "passenger_fall"
	SitFrontWheelLock = "front_wheel_lock"
	SitWobble         = "wobble_shake"
	SitBalanceFall    = "balance_fall"
	SitSlipperyFall   = "slippery_fall"
	SitCorneringWide  = "cornering_wide"
)

// Correct answers for the knowledge checks.
const (
	correctStop60     = "20_25m"
	correctStop100    = "45_55m"
	correctStop150    = "100_120m"
	correctWobble     = "relax_grip_off_throttle"
	wrongWobbleBrake  = "brake_hard"
	correctGrip       = "light_grip"
	wrongGripTight    = "tight_control"
)

// DefaultBank returns the built-in rider questionnaire. The catalog is the
// single source of truth for ids, options and gating used by the engine.
func DefaultBank() (*Bank, error) {
	return NewBank(defaultQuestions())
}

func defaultQuestions() []model.Question {
	return []model.Question{
		{
			ID: QAge, Order: 10, Level: model.LevelBasic, Category: "profile",
			Type: model.QuestionTypeSingleChoice,
			Text: "How old are you?",
			Answers: []string{"under_18", "18_25", "26_35", "36_45", "46_plus"},
		},
		{
			ID: QProfession, Order: 20, Level: model.LevelBasic, Category: "profile",
			Type: model.QuestionTypeSingleChoice,
			Text: "What do you do for a living?",
			Answers: []string{"office", "it", "driver", "medical", "military", "extreme_sports", "other"},
		},
		{
			ID: QExperience, Order: 30, Level: model.LevelBasic, Category: "experience",
			Type: model.QuestionTypeSingleChoice, IsHubQuestion: true,
			Text: "How long have you been riding?",
			Answers: []string{"first_season", "1_3_years", "3_7_years", "over_7_years"},
		},
		{
			ID: QSeasonDays, Order: 40, Level: model.LevelBasic, Category: "experience",
			Type: model.QuestionTypeSingleChoice,
			Text: "How many days per season do you ride?",
			Answers: []string{"under_20", "20_50", "50_100", "over_100"},
		},
		{
			ID: QABS, Order: 50, Level: model.LevelBasic, Category: "bike",
			Type: model.QuestionTypeSingleChoice,
			Text: "Does your motorcycle have ABS?",
			Answers: []string{"yes", "no", "dont_know"},
		},
		{
			ID: QCitySpeed, Order: 60, Level: model.LevelBasic, Category: "riding",
			Type: model.QuestionTypeSingleChoice,
			Text: "At what speed do you usually move through city traffic?",
			Answers: []string{"up_to_60", "60_80", "80_100", "over_100"},
		},
		{
			ID: QGear, Order: 70, Level: model.LevelBasic, Category: "safety",
			Type: model.QuestionTypeSingleChoice,
			Text: "What protective gear do you normally wear?",
			Answers: []string{"full_gear", "jacket_helmet", "helmet_only", "minimal"},
		},
		{
			ID: QRidingStyle, Order: 80, Level: model.LevelBasic, Category: "riding",
			Type: model.QuestionTypeSingleChoice, IsHubQuestion: true,
			Text: "How would you describe your riding style?",
			Answers: []string{"calm", "moderate", "aggressive"},
		},
		{
			ID: QLaneFiltering, Order: 90, Level: model.LevelIntermediate, Category: "riding",
			Type: model.QuestionTypeSingleChoice, IsHubQuestion: true,
			Text: "Do you filter between lanes in traffic?",
			Answers: []string{"never", "careful", "always"},
		},
		{
			ID: QFilteringDelta, Order: 100, Level: model.LevelIntermediate, Category: "riding",
			Type: model.QuestionTypeSingleChoice,
			DependsOn: QLaneFiltering,
			ShowConditions: map[string][]string{
				QLaneFiltering: {"careful", "always"},
			},
			Text: "How much faster than the traffic do you filter?",
			Answers: []string{"up_to_10", "10_20", "over_20"},
		},
		{
			ID: QLanePosition, Order: 110, Level: model.LevelIntermediate, Category: "riding",
			Type: model.QuestionTypeSingleChoice,
			Text: "Which part of the lane do you prefer?",
			Answers: []string{"left_track", "center", "right_track", "varies"},
		},
		{
			ID: QScarySituations, Order: 120, Level: model.LevelIntermediate, Category: "experience",
			Type: model.QuestionTypeSingleChoice, IsHubQuestion: true,
			Text: "How many genuinely scary situations do you get into per season?",
			Answers: []string{"none", "1_3", "4_6", "over_6"},
		},
		{
			ID: QSituations, Order: 130, Level: model.LevelIntermediate, Category: "experience",
			Type: model.QuestionTypeMultipleChoice, MultiChoice: true,
			DependsOn: QScarySituations,
			ShowConditions: map[string][]string{
				QScarySituations: {"1_3", "4_6", "over_6"},
			},
			Text: "Which of these have happened to you?",
			Answers: []string{
				SitRearEndedCar, SitPassengerFall, SitFrontWheelLock,
				SitWobble, SitBalanceFall, SitSlipperyFall, SitCorneringWide,
			},
		},
		{
			ID: QCrashCount, Order: 140, Level: model.LevelIntermediate, Category: "experience",
			Type: model.QuestionTypeSingleChoice, IsHubQuestion: true,
			Text: "How many crashes have you had?",
			Answers: []string{"none", "one", "two", "three_plus"},
		},
		{
			ID: QCrashSeverity, Order: 150, Level: model.LevelIntermediate, Category: "experience",
			Type: model.QuestionTypeSingleChoice,
			DependsOn: QCrashCount,
			ShowConditions: map[string][]string{
				QCrashCount: {"one", "two", "three_plus"},
			},
			Text: "How serious was the worst one?",
			Answers: []string{"minor", "moderate", "serious"},
		},
		{
			ID: QRiskAttitude, Order: 160, Level: model.LevelIntermediate, Category: "psychology",
			Type: model.QuestionTypeSingleChoice,
			Text: "How do you think about risk on a motorcycle?",
			Answers: []string{"avoid_risk", "risk_managed", "risk_part_of_ride", "adrenaline"},
		},
		{
			ID: QPassenger, Order: 170, Level: model.LevelIntermediate, Category: "riding",
			Type: model.QuestionTypeSingleChoice, IsHubQuestion: true,
			Text: "Do you carry a passenger?",
			Answers: []string{"never", "rarely", "often"},
		},
		{
			ID: QPassengerWhen, Order: 180, Level: model.LevelIntermediate, Category: "riding",
			Type: model.QuestionTypeSingleChoice,
			DependsOn: QPassenger,
			ShowConditions: map[string][]string{
				QPassenger: {"rarely", "often"},
			},
			Text: "When did you first carry a passenger?",
			Answers: []string{"first_season", "second_season", "after_three_years"},
		},
		{
			ID: QSelfRating, Order: 190, Level: model.LevelIntermediate, Category: "psychology",
			Type: model.QuestionTypeSingleChoice, IsHubQuestion: true,
			Text: "Rate your riding skill from 1 to 10.",
			Answers: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		},
		{
			ID: QSkillsClaimed, Order: 200, Level: model.LevelAdvanced, Category: "skills",
			Type: model.QuestionTypeMultipleChoice, MultiChoice: true, IsHubQuestion: true,
			Text: "Which of these can you do confidently?",
			Answers: []string{
				SkillEmergencyBraking150, SkillTrailBraking, SkillUTurnNoFeet,
				SkillKneeDown, SkillSwerveHighSpeed, SkillWheelie, "none",
			},
		},
		{
			ID: QStopDistance60, Order: 210, Level: model.LevelIntermediate, Category: "knowledge",
			Type: model.QuestionTypeSingleChoice,
			Text: "Braking distance from 60 km/h on dry asphalt?",
			Answers: []string{"10_15m", "20_25m", "35_40m", "over_50m"},
			CorrectAnswer: correctStop60,
		},
		{
			ID: QStopDistance100, Order: 220, Level: model.LevelIntermediate, Category: "knowledge",
			Type: model.QuestionTypeSingleChoice,
			Text: "Braking distance from 100 km/h on dry asphalt?",
			Answers: []string{"25_35m", "45_55m", "70_80m", "over_100m"},
			CorrectAnswer: correctStop100,
		},
		{
			// Trap pair: only shown to riders who claim 150 km/h emergency braking.
			ID: QStopDistance150, Order: 230, Level: model.LevelAdvanced, Category: "knowledge",
			Type: model.QuestionTypeSingleChoice,
			DependsOn: QSkillsClaimed,
			ShowConditions: map[string][]string{
				QSkillsClaimed: {SkillEmergencyBraking150},
			},
			Text: "Braking distance from 150 km/h on dry asphalt?",
			Answers: []string{"60_80m", "100_120m", "150_180m", "over_200m"},
			CorrectAnswer: correctStop150,
		},
		{
			ID: QWobbleResponse, Order: 240, Level: model.LevelAdvanced, Category: "knowledge",
			Type: model.QuestionTypeSingleChoice,
			Text: "The handlebar starts to wobble at speed. What do you do?",
			Answers: []string{wrongWobbleBrake, "accelerate_out", correctWobble, "grab_tighter"},
			CorrectAnswer: correctWobble,
		},
		{
			ID: QGripStyle, Order: 250, Level: model.LevelIntermediate, Category: "knowledge",
			Type: model.QuestionTypeSingleChoice,
			Text: "How do you hold the handlebar?",
			Answers: []string{wrongGripTight, correctGrip, "depends"},
			CorrectAnswer: correctGrip,
		},
		{
			ID: QTraining, Order: 260, Level: model.LevelIntermediate, Category: "skills",
			Type: model.QuestionTypeMultipleChoice, MultiChoice: true,
			Text: "What supplementary training have you done?",
			Answers: []string{"gymkhana", "track_days", "motocross", "enduro", "advanced_course", "none"},
		},
		{
			ID: QFears, Order: 270, Level: model.LevelIntermediate, Category: "psychology",
			Type: model.QuestionTypeMultipleChoice, MultiChoice: true,
			Text: "What still scares you when riding?",
			Answers: []string{"cornering", "rain", "sand_gravel", "trucks_buses", "wind", "passengers", "none"},
		},
		{
			ID: QAlcohol, Order: 280, Level: model.LevelBasic, Category: "safety",
			Type: model.QuestionTypeSingleChoice,
			Text: "Do you ever ride after drinking?",
			Answers: []string{"never", "rarely_small", "sometimes"},
		},
		{
			ID: QMaintenanceChecks, Order: 290, Level: model.LevelBasic, Category: "safety",
			Type: model.QuestionTypeSingleChoice,
			Text: "How often do you check tires, chain and brakes?",
			Answers: []string{"before_every_ride", "weekly", "service_only"},
		},
		{
			ID: QMotivation, Order: 300, Level: model.LevelBasic, Category: "psychology",
			Type: model.QuestionTypeText,
			Text: "In a sentence or two: why do you ride?",
		},
	}
}
