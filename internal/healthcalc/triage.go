package healthcalc

import (
	"fmt"
	"strings"

	"taafi-health-tools/internal/models"
)

const (
	SpecialtyEmergency = "الطوارئ"
	SpecialtyFamily    = "طب الأسرة"
)

var unconsciousKeywords = []string{
	"فقدان الوعي", "فقد الوعي", "إغماء", "اغماء", "غيبوبة",
	"unconscious", "fainted", "passed out", "loss of consciousness",
}

type specialtyRoute struct {
	specialty string
	reasoning string
}

// Routes by symptom and body part, then by body part, then by symptom.
var symptomPartRoutes = map[[2]string]specialtyRoute{
	{"pain", "chest"}:      {"أمراض القلب", "ألم الصدر يحتاج تقييم القلب أولاً"},
	{"pain", "abdomen"}:    {"الجهاز الهضمي", "ألم البطن غالباً مرتبط بالجهاز الهضمي"},
	{"pain", "back"}:       {"العظام", "آلام الظهر ترتبط عادة بالعمود الفقري والعضلات"},
	{"pain", "joints"}:     {"العظام", "آلام المفاصل تحتاج تقييم طبيب العظام أو الروماتيزم"},
	{"pain", "teeth"}:      {"طب الأسنان", "ألم الأسنان يحتاج فحص طبيب الأسنان"},
	{"breathing", "chest"}: {"الأمراض الصدرية", "ضيق التنفس مع أعراض صدرية يحتاج تقييم الرئة"},
	{"cough", "chest"}:     {"الأمراض الصدرية", "السعال المستمر يحتاج تقييم الجهاز التنفسي"},
	{"rash", "skin"}:       {"الجلدية", "الطفح الجلدي يحتاج تقييم طبيب الجلدية"},
}

var bodyPartRoutes = map[string]specialtyRoute{
	"head":    {"المخ والأعصاب", "أعراض الرأس قد ترتبط بالجهاز العصبي"},
	"eyes":    {"طب العيون", "أعراض العين تحتاج فحص طبيب العيون"},
	"ears":    {"الأنف والأذن والحنجرة", "أعراض الأذن يتابعها طبيب الأنف والأذن والحنجرة"},
	"throat":  {"الأنف والأذن والحنجرة", "أعراض الحلق يتابعها طبيب الأنف والأذن والحنجرة"},
	"skin":    {"الجلدية", "أعراض الجلد يتابعها طبيب الجلدية"},
	"teeth":   {"طب الأسنان", "أعراض الفم والأسنان يتابعها طبيب الأسنان"},
	"chest":   {"الباطنة", "أعراض الصدر تحتاج تقييماً باطنياً مبدئياً"},
	"abdomen": {"الجهاز الهضمي", "أعراض البطن ترتبط غالباً بالجهاز الهضمي"},
	"joints":  {"العظام", "أعراض المفاصل يتابعها طبيب العظام"},
	"back":    {"العظام", "أعراض الظهر يتابعها طبيب العظام"},
	"urinary": {"المسالك البولية", "أعراض المسالك البولية يتابعها طبيب المسالك"},
}

var symptomRoutes = map[string]specialtyRoute{
	"fever":     {"الباطنة", "الحمى تحتاج تقييماً باطنياً لتحديد السبب"},
	"headache":  {"المخ والأعصاب", "الصداع المتكرر يحتاج تقييم طبيب الأعصاب"},
	"dizziness": {"المخ والأعصاب", "الدوخة قد ترتبط بالأعصاب أو الأذن الداخلية"},
	"digestive": {"الجهاز الهضمي", "اضطرابات الهضم يتابعها طبيب الجهاز الهضمي"},
	"anxiety":   {"الطب النفسي", "الأعراض النفسية يتابعها الطبيب النفسي"},
	"vision":    {"طب العيون", "مشاكل النظر تحتاج فحص طبيب العيون"},
	"hearing":   {"الأنف والأذن والحنجرة", "مشاكل السمع يتابعها طبيب الأنف والأذن والحنجرة"},
	"urinary":   {"المسالك البولية", "أعراض التبول يتابعها طبيب المسالك البولية"},
	"breathing": {"الأمراض الصدرية", "ضيق التنفس يحتاج تقييم طبيب الصدرية"},
	"cough":     {"الأمراض الصدرية", "السعال يحتاج تقييم طبيب الصدرية"},
	"rash":      {"الجلدية", "الطفح الجلدي يتابعه طبيب الجلدية"},
}

func emergencyReason(in models.TriageInput) (string, bool) {
	switch {
	case in.Severity == models.SeverityUnbearable:
		return "شدة الأعراض لا تحتمل وتحتاج تقييماً فورياً", true
	case in.PrimarySymptom == "breathing" && in.Severity == models.SeveritySevere:
		return "ضيق التنفس الشديد حالة طارئة", true
	case in.PrimarySymptom == "pain" && in.BodyPart == "chest" && in.Severity == models.SeveritySevere:
		return "ألم الصدر الشديد قد يدل على مشكلة قلبية طارئة", true
	}
	text := strings.ToLower(in.AdditionalSymptoms)
	for _, kw := range unconsciousKeywords {
		if strings.Contains(text, kw) {
			return "فقدان الوعي علامة خطر تستدعي الطوارئ", true
		}
	}
	return "", false
}

func triageUrgency(severity models.Severity, duration models.SymptomDuration) models.Urgency {
	switch {
	case severity == models.SeveritySevere:
		return models.UrgencyHigh
	case severity == models.SeverityModerate || duration == models.DurationWeeks || duration == models.DurationMonths:
		return models.UrgencyModerate
	default:
		return models.UrgencyLow
	}
}

// RecommendSpecialty routes symptoms to a specialty. Emergency conditions
// are checked first and bypass routing.
func RecommendSpecialty(in models.TriageInput) models.MedicalSpecialtyResult {
	if reason, ok := emergencyReason(in); ok {
		return models.MedicalSpecialtyResult{
			RecommendedSpecialty: SpecialtyEmergency,
			Urgency:              models.UrgencyEmergency,
			Reasoning:            reason,
			FirstAid:             copyStrings(emergencyFirstAid),
		}
	}

	route, ok := symptomPartRoutes[[2]string{in.PrimarySymptom, in.BodyPart}]
	if !ok {
		route, ok = bodyPartRoutes[in.BodyPart]
	}
	if !ok {
		route, ok = symptomRoutes[in.PrimarySymptom]
	}
	if !ok {
		route = specialtyRoute{SpecialtyFamily, "طبيب الأسرة يقيّم الأعراض العامة ويحولك للتخصص المناسب"}
	}

	reasoning := route.reasoning
	if in.Duration == models.DurationWeeks || in.Duration == models.DurationMonths {
		reasoning = fmt.Sprintf("%s، واستمرار الأعراض لفترة طويلة يستدعي المتابعة", reasoning)
	}

	return models.MedicalSpecialtyResult{
		RecommendedSpecialty: route.specialty,
		Urgency:              triageUrgency(in.Severity, in.Duration),
		Reasoning:            reasoning,
		QuestionsForDoctor:   copyStrings(questionsForDoctor),
	}
}
