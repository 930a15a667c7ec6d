package healthcalc

import (
	"math"
	"sort"

	"taafi-health-tools/internal/models"
)

// Screener scores a questionnaire as a weighted sum and maps the total to a
// band. Bands are ordered by ascending inclusive Max.
type Screener struct {
	Name      string
	Questions []Question
	Bands     []Band
}

type Question struct {
	ID      string
	Text    string
	Options map[string]int
}

type Band struct {
	Max             int
	Level           models.RiskLevel
	Category        string
	NeedsAttention  bool
	WarningSign     bool
	Recommendations []string
}

func (s Screener) band(score int) Band {
	for _, b := range s.Bands {
		if score <= b.Max {
			return b
		}
	}
	return s.Bands[len(s.Bands)-1]
}

func (s Screener) maxScore() int {
	total := 0
	for _, q := range s.Questions {
		best := 0
		for _, points := range q.Options {
			if points > best {
				best = points
			}
		}
		total += best
	}
	return total
}

func (s Screener) result(score, maxScore int) models.ScreeningResult {
	b := s.band(score)
	return models.ScreeningResult{
		Screener:        s.Name,
		Score:           score,
		MaxScore:        maxScore,
		Category:        b.Category,
		Level:           b.Level,
		Recommendations: copyStrings(b.Recommendations),
		NeedsAttention:  b.NeedsAttention,
		WarningSign:     b.WarningSign,
	}
}

// Score sums the points of each answered option. Every question must be
// answered with one of its option keys.
func (s Screener) Score(answers map[string]string) (models.ScreeningResult, error) {
	score := 0
	for _, q := range s.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			return models.ScreeningResult{}, invalidf("%s: missing answer for %q", s.Name, q.ID)
		}
		points, ok := q.Options[answer]
		if !ok {
			return models.ScreeningResult{}, invalidf("%s: unknown answer %q for %q", s.Name, answer, q.ID)
		}
		score += points
	}
	return s.result(score, s.maxScore()), nil
}

// OptionKeys returns a question's accepted answers, cheapest first.
func (q Question) OptionKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for k := range q.Options {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if q.Options[keys[i]] != q.Options[keys[j]] {
			return q.Options[keys[i]] < q.Options[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// likertMax is the highest value of a 0-3 frequency item.
const likertMax = 3

func (s Screener) scoreLikert(items int, answers []int) (models.ScreeningResult, error) {
	if len(answers) != items {
		return models.ScreeningResult{}, invalidf("%s: expected %d answers, got %d", s.Name, items, len(answers))
	}
	score := 0
	for i, a := range answers {
		if a < 0 || a > likertMax {
			return models.ScreeningResult{}, invalidf("%s: answer %d out of range 0-%d", s.Name, i+1, likertMax)
		}
		score += a
	}
	return s.result(score, items*likertMax), nil
}

var DiabetesRisk = Screener{
	Name: "diabetes",
	Questions: []Question{
		{ID: "age", Text: "الفئة العمرية", Options: map[string]int{"under45": 0, "45-54": 2, "55-64": 3, "over64": 4}},
		{ID: "bmi", Text: "مؤشر كتلة الجسم", Options: map[string]int{"under25": 0, "25-30": 1, "over30": 3}},
		{ID: "waist", Text: "محيط الخصر", Options: map[string]int{"normal": 0, "elevated": 3, "high": 4}},
		{ID: "physicalActivity", Text: "هل تمارس نشاطاً بدنياً 30 دقيقة يومياً؟", Options: map[string]int{"yes": 0, "no": 2}},
		{ID: "vegetables", Text: "هل تتناول الخضروات والفواكه يومياً؟", Options: map[string]int{"daily": 0, "notDaily": 1}},
		{ID: "bpMedication", Text: "هل تتناول أدوية لضغط الدم؟", Options: map[string]int{"no": 0, "yes": 2}},
		{ID: "highGlucose", Text: "هل سبق أن ظهر ارتفاع في سكر الدم؟", Options: map[string]int{"no": 0, "yes": 5}},
		{ID: "familyHistory", Text: "هل يوجد تاريخ عائلي للسكري؟", Options: map[string]int{"none": 0, "secondDegree": 3, "firstDegree": 5}},
	},
	Bands: []Band{
		{Max: 5, Level: models.RiskLow, Category: "خطر منخفض", Recommendations: []string{
			"حافظ على نمط حياتك الصحي",
			"أعد التقييم كل 3 سنوات",
		}},
		{Max: 10, Level: models.RiskModerate, Category: "خطر متوسط", Recommendations: []string{
			"زد نشاطك البدني وقلل السكريات",
			"افحص سكر الدم الصائم مرة سنوياً",
		}},
		{Max: 15, Level: models.RiskHigh, Category: "خطر مرتفع", NeedsAttention: true, Recommendations: []string{
			"راجع الطبيب لإجراء تحليل السكر التراكمي",
			"ابدأ برنامجاً لإنقاص الوزن إذا كان وزنك زائداً",
			"راقب ضغط الدم والدهون",
		}},
		{Max: math.MaxInt, Level: models.RiskVeryHigh, Category: "خطر مرتفع جداً", NeedsAttention: true, WarningSign: true, Recommendations: []string{
			"احجز موعداً مع طبيب الغدد الصماء في أقرب وقت",
			"أجرِ تحليل السكر التراكمي وسكر الصائم",
			"تغيير نمط الحياة الآن يمكن أن يؤخر أو يمنع الإصابة",
		}},
	},
}

var DentalRisk = Screener{
	Name: "dental",
	Questions: []Question{
		{ID: "brushing", Text: "كم مرة تنظف أسنانك بالفرشاة يومياً؟", Options: map[string]int{"twicePlus": 0, "once": 2, "rarely": 4}},
		{ID: "flossing", Text: "هل تستخدم خيط الأسنان؟", Options: map[string]int{"daily": 0, "sometimes": 1, "never": 2}},
		{ID: "sugaryFood", Text: "كم مرة تتناول السكريات والمشروبات الغازية؟", Options: map[string]int{"rarely": 0, "daily": 2, "severalTimes": 4}},
		{ID: "fluoride", Text: "هل تستخدم معجوناً يحتوي على الفلورايد؟", Options: map[string]int{"yes": 0, "no": 2}},
		{ID: "lastVisit", Text: "متى كانت آخر زيارة لطبيب الأسنان؟", Options: map[string]int{"under6Months": 0, "under1Year": 1, "over1Year": 3}},
		{ID: "dryMouth", Text: "هل تعاني من جفاف الفم؟", Options: map[string]int{"no": 0, "yes": 2}},
		{ID: "previousCavities", Text: "هل أصبت بتسوس سابقاً؟", Options: map[string]int{"none": 0, "few": 2, "many": 3}},
	},
	Bands: []Band{
		{Max: 4, Level: models.RiskLow, Category: "خطر تسوس منخفض", Recommendations: []string{
			"استمر على عاداتك الجيدة في العناية بالفم",
			"زر طبيب الأسنان كل 6 أشهر",
		}},
		{Max: 8, Level: models.RiskModerate, Category: "خطر تسوس متوسط", Recommendations: []string{
			"نظف أسنانك مرتين يومياً على الأقل",
			"قلل الوجبات السكرية بين الوجبات",
		}},
		{Max: 12, Level: models.RiskHigh, Category: "خطر تسوس مرتفع", NeedsAttention: true, Recommendations: []string{
			"احجز موعداً للكشف والتنظيف",
			"اسأل طبيبك عن تطبيق الفلورايد الموضعي",
			"استخدم خيط الأسنان يومياً",
		}},
		{Max: math.MaxInt, Level: models.RiskVeryHigh, Category: "خطر تسوس مرتفع جداً", NeedsAttention: true, WarningSign: true, Recommendations: []string{
			"راجع طبيب الأسنان خلال أسبوعين",
			"قد تحتاج إلى حشوات وقائية أو علاج للتسوس الحالي",
			"قلل السكريات بشكل كبير واشرب الماء بعد الأكل",
		}},
	},
}

const (
	anxietyItems    = 7
	depressionItems = 9
	selfHarmItem    = 8
)

var Anxiety = Screener{
	Name: "anxiety",
	Bands: []Band{
		{Max: 5, Level: models.RiskLow, Category: "قلق طبيعي", Recommendations: []string{
			"مستوى القلق لديك ضمن الطبيعي",
			"حافظ على النوم المنتظم والنشاط البدني",
		}},
		{Max: 10, Level: models.RiskModerate, Category: "قلق خفيف", Recommendations: []string{
			"جرّب تمارين التنفس العميق والاسترخاء",
			"قلل الكافيين وخصص وقتاً للراحة",
		}},
		{Max: 15, Level: models.RiskHigh, Category: "قلق متوسط", NeedsAttention: true, Recommendations: []string{
			"يُنصح باستشارة أخصائي نفسي",
			"العلاج السلوكي المعرفي فعال في علاج القلق",
		}},
		{Max: math.MaxInt, Level: models.RiskVeryHigh, Category: "قلق شديد", NeedsAttention: true, WarningSign: true, Recommendations: []string{
			"احجز موعداً مع الطبيب النفسي في أقرب وقت",
			"لا تتردد في طلب الدعم من المقربين",
		}},
	},
}

var Depression = Screener{
	Name: "depression",
	Bands: []Band{
		{Max: 4, Level: models.RiskLow, Category: "لا توجد مؤشرات اكتئاب", Recommendations: []string{
			"حالتك المزاجية مستقرة",
			"استمر في ممارسة الأنشطة التي تستمتع بها",
		}},
		{Max: 9, Level: models.RiskModerate, Category: "اكتئاب خفيف", Recommendations: []string{
			"راقب حالتك المزاجية خلال الأسبوعين القادمين",
			"مارس الرياضة وتواصل مع الأصدقاء",
		}},
		{Max: 14, Level: models.RiskHigh, Category: "اكتئاب متوسط", NeedsAttention: true, Recommendations: []string{
			"يُنصح بمراجعة أخصائي الصحة النفسية",
			"العلاج النفسي يساعد بشكل كبير في هذه المرحلة",
		}},
		{Max: math.MaxInt, Level: models.RiskVeryHigh, Category: "اكتئاب شديد", NeedsAttention: true, WarningSign: true, Recommendations: []string{
			"راجع الطبيب النفسي في أقرب وقت ممكن",
			"قد تحتاج إلى خطة علاجية تجمع بين العلاج النفسي والدوائي",
		}},
	},
}

// AssessDiabetesRisk scores the type 2 diabetes questionnaire.
func AssessDiabetesRisk(answers map[string]string) (models.ScreeningResult, error) {
	return DiabetesRisk.Score(answers)
}

// AssessDentalRisk scores the tooth decay questionnaire.
func AssessDentalRisk(answers map[string]string) (models.ScreeningResult, error) {
	return DentalRisk.Score(answers)
}

// ScreenAnxiety takes seven 0-3 frequency answers.
func ScreenAnxiety(answers []int) (models.ScreeningResult, error) {
	return Anxiety.scoreLikert(anxietyItems, answers)
}

// ScreenDepression takes nine 0-3 frequency answers. Any positive answer to
// the self-harm item raises the warning sign whatever the total.
func ScreenDepression(answers []int) (models.ScreeningResult, error) {
	result, err := Depression.scoreLikert(depressionItems, answers)
	if err != nil {
		return result, err
	}
	if answers[selfHarmItem] > 0 {
		result.WarningSign = true
		result.NeedsAttention = true
		result.Recommendations = append(result.Recommendations,
			"إذا راودتك أفكار لإيذاء نفسك تواصل فوراً مع الطوارئ أو خط الدعم النفسي 920033360")
	}
	return result, nil
}
