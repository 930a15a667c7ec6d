// Package catalog lists the calculators the clinic exposes and matches free
// text to them, so the chatbot can suggest a tool.
package catalog

import (
	"sort"
	"strings"
)

type Tool struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

var tools = []Tool{
	{"calculate_bmi", "حاسبة مؤشر كتلة الجسم", "يحسب مؤشر كتلة الجسم والوزن المثالي", []string{"كتلة الجسم", "الوزن المثالي", "وزني", "سمنة", "نحافة", "bmi", "weight"}},
	{"calculate_calories", "حاسبة السعرات الحرارية", "يحسب احتياجك اليومي من السعرات وتوزيع البروتين والكربوهيدرات والدهون", []string{"سعرات", "رجيم", "دايت", "بروتين", "تخسيس", "calories", "diet"}},
	{"calculate_water", "حاسبة شرب الماء", "يحسب احتياجك اليومي من الماء", []string{"ماء", "مياه", "شرب", "جفاف", "water"}},
	{"calculate_heart_rate", "حاسبة نبضات القلب", "يحدد مناطق النبض المناسبة للتمرين", []string{"نبض", "نبضات", "قلب", "تمرين", "heart rate", "pulse"}},
	{"predict_blood_type", "توقع فصيلة دم الطفل", "يتوقع فصيلة دم الطفل من فصيلتي الأب والأم", []string{"فصيلة", "فصيلة الدم", "زمرة", "blood type"}},
	{"calculate_dosage", "حاسبة جرعات الأطفال", "يحسب جرعة خافض الحرارة المناسبة لوزن الطفل", []string{"جرعة", "باراسيتامول", "بنادول", "ايبوبروفين", "خافض حرارة", "dose", "paracetamol", "ibuprofen"}},
	{"vaccination_schedule", "جدول تطعيمات الأطفال", "يعرض مواعيد تطعيمات الطفل حسب تاريخ الميلاد", []string{"تطعيم", "تطعيمات", "لقاح", "vaccine", "vaccination"}},
	{"waist_to_height", "نسبة الخصر إلى الطول", "يقيّم خطر تراكم الدهون حول البطن", []string{"خصر", "كرش", "بطن", "waist"}},
	{"steps_to_calories", "حاسبة الخطوات", "يحول عدد الخطوات إلى سعرات ومسافة", []string{"خطوات", "مشي", "steps", "walking"}},
	{"diabetes_risk", "تقييم خطر السكري", "يقيّم احتمال الإصابة بالسكري من النوع الثاني", []string{"سكري", "السكر", "diabetes"}},
	{"dental_risk", "تقييم خطر التسوس", "يقيّم خطر تسوس الأسنان", []string{"أسنان", "اسنان", "تسوس", "dental", "teeth"}},
	{"anxiety_screening", "مقياس القلق", "اختبار قصير لتقييم مستوى القلق", []string{"قلق", "توتر", "anxiety", "stress"}},
	{"depression_screening", "مقياس الاكتئاب", "اختبار قصير لتقييم أعراض الاكتئاب", []string{"اكتئاب", "حزن", "مزاج", "depression"}},
	{"pregnancy_dates", "حاسبة الحمل والولادة", "يحسب موعد الولادة وأسبوع الحمل", []string{"حمل", "حامل", "ولادة", "pregnancy", "due date"}},
	{"ovulation_dates", "حاسبة التبويض", "يحدد يوم التبويض والأيام الخصبة", []string{"تبويض", "إباضة", "اباضة", "خصوبة", "ovulation"}},
	{"specialty_triage", "دليل التخصص المناسب", "يقترح التخصص الطبي المناسب لأعراضك", []string{"أعراض", "اعراض", "ألم", "أي دكتور", "تخصص", "symptoms"}},
}

// Tools returns a copy of the catalog in display order.
func Tools() []Tool {
	return append([]Tool(nil), tools...)
}

// Lookup finds a catalog entry by tool name.
func Lookup(name string) (Tool, bool) {
	for _, t := range tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Recommend ranks tools by how many of their keywords occur in text.
// limit <= 0 returns every match.
func Recommend(text string, limit int) []Tool {
	text = strings.ToLower(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	type hit struct {
		tool  Tool
		count int
		order int
	}
	var hits []hit
	for i, t := range tools {
		n := 0
		for _, kw := range t.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, hit{t, n, i})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].order < hits[j].order
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	result := make([]Tool, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.tool)
	}
	return result
}
