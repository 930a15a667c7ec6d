// internal/server/tools.go
package server

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"taafi-health-tools/internal/catalog"
	"taafi-health-tools/internal/healthcalc"
	"taafi-health-tools/internal/models"
)

const (
	dateLayout          = "2006-01-02"
	defaultCycleLength  = 28
	defaultPeriodLength = 5
	defaultRecommend    = 3
)

type toolHandler func(args map[string]interface{}) (interface{}, error)

type BMIParams struct {
	Weight float64 `json:"weight" description:"Weight in kilograms"`
	Height float64 `json:"height" description:"Height in centimetres"`
}

type CaloriesParams struct {
	Weight        float64              `json:"weight"`
	Height        float64              `json:"height"`
	Age           int                  `json:"age"`
	Gender        models.Gender        `json:"gender"`
	ActivityLevel models.ActivityLevel `json:"activityLevel"`
	Goal          models.Goal          `json:"goal"`
}

type WaterParams struct {
	Weight           float64                 `json:"weight"`
	Age              int                     `json:"age"`
	ActivityLevel    models.ActivityLevel    `json:"activityLevel"`
	Climate          models.Climate          `json:"climate"`
	Pregnancy        models.PregnancyState   `json:"pregnancy"`
	MedicalCondition models.MedicalCondition `json:"medicalCondition"`
}

type HeartRateParams struct {
	Age          int                    `json:"age"`
	FitnessLevel models.FitnessLevel    `json:"fitnessLevel"`
	RestingHR    int                    `json:"restingHR,omitempty" description:"Resting heart rate, defaults to 60"`
	Medication   models.HeartMedication `json:"medication"`
}

type BloodTypeParams struct {
	FatherBloodType string `json:"fatherBloodType"`
	MotherBloodType string `json:"motherBloodType"`
}

type DosageParams struct {
	Weight     float64     `json:"weight"`
	AgeMonths  int         `json:"ageMonths"`
	Medication models.Drug `json:"medication"`
}

type VaccinationParams struct {
	BirthDate         string   `json:"birthDate" description:"Child birth date (YYYY-MM-DD)"`
	CompletedVaccines []string `json:"completedVaccines,omitempty"`
}

type WaistParams struct {
	Waist  float64       `json:"waist"`
	Height float64       `json:"height"`
	Age    int           `json:"age"`
	Gender models.Gender `json:"gender"`
}

type StepsParams struct {
	Steps     int                     `json:"steps"`
	Weight    float64                 `json:"weight"`
	Height    float64                 `json:"height"`
	Age       int                     `json:"age"`
	Gender    models.Gender           `json:"gender"`
	Intensity models.WalkingIntensity `json:"intensity"`
}

type RiskAnswersParams struct {
	Answers map[string]string `json:"answers"`
}

type ScaleAnswersParams struct {
	Answers []int `json:"answers"`
}

type PregnancyParams struct {
	LastPeriod  string `json:"lastPeriod" description:"First day of the last period (YYYY-MM-DD)"`
	CycleLength int    `json:"cycleLength,omitempty"`
}

type OvulationParams struct {
	LastPeriod   string `json:"lastPeriod"`
	CycleLength  int    `json:"cycleLength,omitempty"`
	PeriodLength int    `json:"periodLength,omitempty"`
}

type RecommendParams struct {
	Text  string `json:"text"`
	Limit int    `json:"limit,omitempty"`
}

// extractParams converts the loose argument map into a typed params struct.
func extractParams(args map[string]interface{}, target interface{}) error {
	jsonBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal arguments: %w", healthcalc.ErrInvalidInput, err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: failed to unmarshal parameters: %w", healthcalc.ErrInvalidInput, err)
	}

	return nil
}

func invalidParam(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", healthcalc.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalidParam("%s must be greater than zero", name)
	}
	return nil
}

func requireNonNegative(name string, v int) error {
	if v < 0 {
		return invalidParam("%s must not be negative", name)
	}
	return nil
}

func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, invalidParam("%s is required", name)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, invalidParam("%s must be YYYY-MM-DD: %v", name, err)
	}
	return t, nil
}

func checkVaccineIDs(completed []string) error {
	known := make(map[string]bool)
	for _, id := range healthcalc.VaccineIDs() {
		known[id] = true
	}
	for _, id := range completed {
		if !known[id] {
			return invalidParam("unknown vaccine id %q in completedVaccines", id)
		}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *HealthToolsServer) registerTools() map[string]toolHandler {
	return map[string]toolHandler{
		"calculate_bmi":        s.handleBMI,
		"calculate_calories":   s.handleCalories,
		"calculate_water":      s.handleWater,
		"calculate_heart_rate": s.handleHeartRate,
		"predict_blood_type":   s.handleBloodType,
		"calculate_dosage":     s.handleDosage,
		"vaccination_schedule": s.handleVaccination,
		"waist_to_height":      s.handleWaist,
		"steps_to_calories":    s.handleSteps,
		"diabetes_risk":        s.handleDiabetesRisk,
		"dental_risk":          s.handleDentalRisk,
		"anxiety_screening":    s.handleAnxiety,
		"depression_screening": s.handleDepression,
		"pregnancy_dates":      s.handlePregnancy,
		"ovulation_dates":      s.handleOvulation,
		"specialty_triage":     s.handleTriage,
		"recommend_tool":       s.handleRecommendTool,
	}
}

func (s *HealthToolsServer) handleBMI(args map[string]interface{}) (interface{}, error) {
	var params BMIParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if err := firstError(requirePositive("weight", params.Weight), requirePositive("height", params.Height)); err != nil {
		return nil, err
	}
	return healthcalc.CalculateBMI(params.Weight, params.Height), nil
}

func (s *HealthToolsServer) handleCalories(args map[string]interface{}) (interface{}, error) {
	var params CaloriesParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if err := firstError(
		requirePositive("weight", params.Weight),
		requirePositive("height", params.Height),
		requireNonNegative("age", params.Age),
	); err != nil {
		return nil, err
	}
	return healthcalc.CalculateCalories(params.Weight, params.Height, params.Age,
		params.Gender, params.ActivityLevel, params.Goal), nil
}

func (s *HealthToolsServer) handleWater(args map[string]interface{}) (interface{}, error) {
	var params WaterParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if err := firstError(requirePositive("weight", params.Weight), requireNonNegative("age", params.Age)); err != nil {
		return nil, err
	}
	return healthcalc.CalculateWater(params.Weight, params.Age, params.ActivityLevel,
		params.Climate, params.Pregnancy, params.MedicalCondition), nil
}

func (s *HealthToolsServer) handleHeartRate(args map[string]interface{}) (interface{}, error) {
	var params HeartRateParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if err := firstError(requireNonNegative("age", params.Age), requireNonNegative("restingHR", params.RestingHR)); err != nil {
		return nil, err
	}
	return healthcalc.CalculateHeartRate(params.Age, params.FitnessLevel, params.RestingHR, params.Medication)
}

func (s *HealthToolsServer) handleBloodType(args map[string]interface{}) (interface{}, error) {
	var params BloodTypeParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	return healthcalc.PredictBloodType(models.BloodType(params.FatherBloodType), models.BloodType(params.MotherBloodType))
}

func (s *HealthToolsServer) handleDosage(args map[string]interface{}) (interface{}, error) {
	var params DosageParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if err := firstError(requirePositive("weight", params.Weight), requireNonNegative("ageMonths", params.AgeMonths)); err != nil {
		return nil, err
	}
	return healthcalc.CalculateDosage(params.Weight, params.AgeMonths, params.Medication)
}

func (s *HealthToolsServer) vaccinationResult(args map[string]interface{}) (models.VaccinationResult, error) {
	var params VaccinationParams
	if err := extractParams(args, &params); err != nil {
		return models.VaccinationResult{}, err
	}
	birth, err := parseDate("birthDate", params.BirthDate)
	if err != nil {
		return models.VaccinationResult{}, err
	}
	if err := checkVaccineIDs(params.CompletedVaccines); err != nil {
		return models.VaccinationResult{}, err
	}
	return healthcalc.GenerateVaccinationSchedule(birth, s.now(), params.CompletedVaccines)
}

func (s *HealthToolsServer) handleVaccination(args map[string]interface{}) (interface{}, error) {
	return s.vaccinationResult(args)
}

func (s *HealthToolsServer) handleWaist(args map[string]interface{}) (interface{}, error) {
	var params WaistParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if err := firstError(requirePositive("waist", params.Waist), requirePositive("height", params.Height)); err != nil {
		return nil, err
	}
	return healthcalc.CalculateWaistToHeight(params.Waist, params.Height, params.Age, params.Gender), nil
}

func (s *HealthToolsServer) handleSteps(args map[string]interface{}) (interface{}, error) {
	var params StepsParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if err := firstError(
		requireNonNegative("steps", params.Steps),
		requirePositive("weight", params.Weight),
		requirePositive("height", params.Height),
	); err != nil {
		return nil, err
	}
	return healthcalc.CalculateStepsCalories(params.Steps, params.Weight, params.Height,
		params.Age, params.Gender, params.Intensity), nil
}

func (s *HealthToolsServer) handleDiabetesRisk(args map[string]interface{}) (interface{}, error) {
	var params RiskAnswersParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	return healthcalc.AssessDiabetesRisk(params.Answers)
}

func (s *HealthToolsServer) handleDentalRisk(args map[string]interface{}) (interface{}, error) {
	var params RiskAnswersParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	return healthcalc.AssessDentalRisk(params.Answers)
}

func (s *HealthToolsServer) handleAnxiety(args map[string]interface{}) (interface{}, error) {
	var params ScaleAnswersParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	return healthcalc.ScreenAnxiety(params.Answers)
}

func (s *HealthToolsServer) handleDepression(args map[string]interface{}) (interface{}, error) {
	var params ScaleAnswersParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	return healthcalc.ScreenDepression(params.Answers)
}

func (s *HealthToolsServer) handlePregnancy(args map[string]interface{}) (interface{}, error) {
	var params PregnancyParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	lastPeriod, err := parseDate("lastPeriod", params.LastPeriod)
	if err != nil {
		return nil, err
	}
	if params.CycleLength == 0 {
		params.CycleLength = defaultCycleLength
	}
	if err := requirePositive("cycleLength", float64(params.CycleLength)); err != nil {
		return nil, err
	}
	return healthcalc.CalculatePregnancy(lastPeriod, s.now(), params.CycleLength)
}

func (s *HealthToolsServer) handleOvulation(args map[string]interface{}) (interface{}, error) {
	var params OvulationParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	lastPeriod, err := parseDate("lastPeriod", params.LastPeriod)
	if err != nil {
		return nil, err
	}
	if params.CycleLength == 0 {
		params.CycleLength = defaultCycleLength
	}
	if params.PeriodLength == 0 {
		params.PeriodLength = defaultPeriodLength
	}
	if err := firstError(
		requirePositive("cycleLength", float64(params.CycleLength)),
		requirePositive("periodLength", float64(params.PeriodLength)),
	); err != nil {
		return nil, err
	}
	return healthcalc.CalculateOvulation(lastPeriod, params.CycleLength, params.PeriodLength), nil
}

func (s *HealthToolsServer) handleTriage(args map[string]interface{}) (interface{}, error) {
	var params models.TriageInput
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if params.PrimarySymptom == "" {
		return nil, invalidParam("primarySymptom is required")
	}
	return healthcalc.RecommendSpecialty(params), nil
}

func (s *HealthToolsServer) handleRecommendTool(args map[string]interface{}) (interface{}, error) {
	var params RecommendParams
	if err := extractParams(args, &params); err != nil {
		return nil, err
	}
	if params.Limit <= 0 {
		params.Limit = defaultRecommend
	}
	return catalog.Recommend(params.Text, params.Limit), nil
}
