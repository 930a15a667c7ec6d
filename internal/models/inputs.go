// internal/models/inputs.go
package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type Climate string

const (
	ClimateTemperate Climate = "temperate"
	ClimateHot       Climate = "hot"
	ClimateHumid     Climate = "humid"
)

type PregnancyState string

const (
	PregnancyNone          PregnancyState = "none"
	PregnancyPregnant      PregnancyState = "pregnant"
	PregnancyBreastfeeding PregnancyState = "breastfeeding"
)

// MedicalCondition is the single condition selected on the water calculator.
type MedicalCondition string

const (
	ConditionNone     MedicalCondition = "none"
	ConditionFever    MedicalCondition = "fever"
	ConditionDiabetes MedicalCondition = "diabetes"
	ConditionKidney   MedicalCondition = "kidney"
	ConditionHeart    MedicalCondition = "heart"
)

type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
	FitnessAthlete      FitnessLevel = "athlete"
)

type HeartMedication string

const (
	MedicationNone         HeartMedication = "none"
	MedicationBetaBlockers HeartMedication = "betaBlockers"
	MedicationStimulants   HeartMedication = "stimulants"
)

type Drug string

const (
	DrugParacetamol Drug = "paracetamol"
	DrugIbuprofen   Drug = "ibuprofen"
)

type WalkingIntensity string

const (
	IntensitySlow     WalkingIntensity = "slow"
	IntensityModerate WalkingIntensity = "moderate"
	IntensityFast     WalkingIntensity = "fast"
	IntensityVeryFast WalkingIntensity = "veryFast"
)

// BloodType is an ABO/Rh phenotype such as "AB+" or "O-".
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

// BloodTypes lists every phenotype in display order.
var BloodTypes = []BloodType{
	BloodAPos, BloodANeg, BloodBPos, BloodBNeg,
	BloodABPos, BloodABNeg, BloodOPos, BloodONeg,
}

type Severity string

const (
	SeverityMild       Severity = "mild"
	SeverityModerate   Severity = "moderate"
	SeveritySevere     Severity = "severe"
	SeverityUnbearable Severity = "unbearable"
)

type SymptomDuration string

const (
	DurationHours  SymptomDuration = "hours"
	DurationDays   SymptomDuration = "days"
	DurationWeeks  SymptomDuration = "weeks"
	DurationMonths SymptomDuration = "months"
)

// TriageInput is what the patient selects on the specialty finder.
type TriageInput struct {
	PrimarySymptom     string          `json:"primarySymptom"`
	Duration           SymptomDuration `json:"duration"`
	Severity           Severity        `json:"severity"`
	BodyPart           string          `json:"bodyPart"`
	AdditionalSymptoms string          `json:"additionalSymptoms"`
}
