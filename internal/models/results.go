// internal/models/results.go
package models

import (
	"time"
)

// RiskLevel is the ordinal outcome shared by every screener.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very-high"
)

type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyModerate  Urgency = "moderate"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type BMIResult struct {
	BMI             float64  `json:"bmi"`
	Category        string   `json:"category"`
	IdealWeight     Range    `json:"idealWeight"`
	Recommendations []string `json:"recommendations"`
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type CalorieResult struct {
	BMR            int      `json:"bmr"`
	TDEE           int      `json:"tdee"`
	TargetCalories int      `json:"targetCalories"`
	Macros         Macros   `json:"macros"`
	MealPlan       []string `json:"mealPlan"`
}

type WaterResult struct {
	DailyWater int      `json:"dailyWater"`
	Schedule   []string `json:"schedule"`
	Factors    []string `json:"factors"`
}

type HeartRateZones struct {
	FatBurn IntRange `json:"fatBurn"`
	Cardio  IntRange `json:"cardio"`
	Peak    IntRange `json:"peak"`
}

type HeartRateResult struct {
	MaxHR           int            `json:"maxHR"`
	RestingHR       string         `json:"restingHR"`
	TargetZones     HeartRateZones `json:"targetZones"`
	Recommendations []string       `json:"recommendations"`
}

type BloodTypeProbability struct {
	BloodType   BloodType `json:"bloodType"`
	Probability float64   `json:"probability"`
}

type BloodTypeResult struct {
	MostLikely      BloodType              `json:"mostLikely"`
	PossibleTypes   []BloodTypeProbability `json:"possibleTypes"`
	Explanation     string                 `json:"explanation"`
	Genetics        []string               `json:"genetics"`
	Recommendations []string               `json:"recommendations"`
}

type DrugDose struct {
	SingleDose   int     `json:"singleDose"`
	MaxDailyDose int     `json:"maxDailyDose"`
	SyrupML      float64 `json:"syrupMl"`
	DosesPerDay  int     `json:"dosesPerDay"`
}

// IbuprofenDose leaves the dose fields nil when AgeRestriction is set.
type IbuprofenDose struct {
	SingleDose     *int     `json:"singleDose,omitempty"`
	MaxDailyDose   *int     `json:"maxDailyDose,omitempty"`
	SyrupML        *float64 `json:"syrupMl,omitempty"`
	DosesPerDay    *int     `json:"dosesPerDay,omitempty"`
	AgeRestriction bool     `json:"ageRestriction"`
}

type MedicationDosageResult struct {
	Medication      Drug          `json:"medication"`
	Paracetamol     DrugDose      `json:"paracetamol"`
	Ibuprofen       IbuprofenDose `json:"ibuprofen"`
	Warnings        []string      `json:"warnings"`
	Recommendations []string      `json:"recommendations"`
	EmergencyInfo   []string      `json:"emergencyInfo"`
}

type VaccineCategory string

const (
	VaccineMandatory VaccineCategory = "mandatory"
	VaccineOptional  VaccineCategory = "optional"
)

type VaccineEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ArabicName  string          `json:"arabicName"`
	Description string          `json:"description"`
	AgeDisplay  string          `json:"ageDisplay"`
	DueDate     time.Time       `json:"dueDate"`
	Category    VaccineCategory `json:"category"`
	IsDue       bool            `json:"isDue"`
	IsOverdue   bool            `json:"isOverdue"`
	IsCompleted bool            `json:"isCompleted"`
}

type VaccinationResult struct {
	Schedule        []VaccineEntry `json:"schedule"`
	CompletedCount  int            `json:"completedCount"`
	TotalCount      int            `json:"totalCount"`
	NextDue         *VaccineEntry  `json:"nextDue,omitempty"`
	Warnings        []string       `json:"warnings"`
	Recommendations []string       `json:"recommendations"`
}

// ByCategory returns the schedule entries of one category, in schedule order.
func (r *VaccinationResult) ByCategory(category VaccineCategory) []VaccineEntry {
	var entries []VaccineEntry
	for _, e := range r.Schedule {
		if e.Category == category {
			entries = append(entries, e)
		}
	}
	return entries
}

type WaistResult struct {
	WaistToHeightRatio float64   `json:"waistToHeightRatio"`
	RiskLevel          RiskLevel `json:"riskLevel"`
	IdealRange         Range     `json:"idealRange"`
	Recommendations    []string  `json:"recommendations"`
}

type DayProgress struct {
	Day   string `json:"day"`
	Steps int    `json:"steps"`
}

type StepsCaloriesResult struct {
	CaloriesBurned  int           `json:"caloriesBurned"`
	Distance        float64       `json:"distance"`
	ActiveMinutes   int           `json:"activeMinutes"`
	Recommendations []string      `json:"recommendations"`
	WeeklyProgress  []DayProgress `json:"weeklyProgress"`
}

// ScreeningResult is returned by every questionnaire-based screener.
type ScreeningResult struct {
	Screener        string    `json:"screener"`
	Score           int       `json:"score"`
	MaxScore        int       `json:"maxScore"`
	Category        string    `json:"category"`
	Level           RiskLevel `json:"level"`
	Recommendations []string  `json:"recommendations"`
	NeedsAttention  bool      `json:"needsAttention"`
	WarningSign     bool      `json:"warningSign"`
}

type PregnancyResult struct {
	DueDate       time.Time `json:"dueDate"`
	WeeksPregnant int       `json:"weeksPregnant"`
	ExtraDays     int       `json:"extraDays"`
	Trimester     int       `json:"trimester"`
	DaysRemaining int       `json:"daysRemaining"`
	OvulationDate time.Time `json:"ovulationDate"`
	Milestones    []string  `json:"milestones"`
	Tips          []string  `json:"tips"`
}

type OvulationResult struct {
	OvulationDate   time.Time `json:"ovulationDate"`
	FertilityWindow DateRange `json:"fertilityWindow"`
	NextPeriod      time.Time `json:"nextPeriod"`
	PeriodEnd       time.Time `json:"periodEnd"`
	IrregularCycle  bool      `json:"irregularCycle"`
	Tips            []string  `json:"tips"`
}

type MedicalSpecialtyResult struct {
	RecommendedSpecialty string   `json:"recommendedSpecialty"`
	Urgency              Urgency  `json:"urgency"`
	Reasoning            string   `json:"reasoning"`
	QuestionsForDoctor   []string `json:"questionsForDoctor,omitempty"`
	FirstAid             []string `json:"firstAid,omitempty"`
}
