package healthcalc

// Presentation content returned alongside computed values. None of it depends
// on the inputs.

var sampleMealPlan = []string{
	"الإفطار: شوفان بالحليب مع موزة وملعقة عسل",
	"وجبة خفيفة: حفنة من المكسرات النيئة",
	"الغداء: صدر دجاج مشوي مع أرز بني وسلطة خضراء",
	"وجبة خفيفة: زبادي يوناني مع فاكهة موسمية",
	"العشاء: سمك مشوي مع خضروات سوتيه",
}

var drinkingSchedule = []string{
	"7:00 صباحاً - كوب ماء عند الاستيقاظ",
	"9:00 صباحاً - كوب ماء بعد الإفطار",
	"12:00 ظهراً - كوب ماء قبل الغداء",
	"3:00 عصراً - كوب ماء",
	"6:00 مساءً - كوب ماء قبل العشاء",
	"9:00 مساءً - كوب ماء قبل النوم بساعة",
}

// weekdayStepFactors projects a week of steps from a single day's count,
// starting on Saturday.
var weekdayStepFactors = []struct {
	Day    string
	Factor float64
}{
	{"السبت", 0.9},
	{"الأحد", 1.0},
	{"الاثنين", 1.1},
	{"الثلاثاء", 0.95},
	{"الأربعاء", 1.05},
	{"الخميس", 1.2},
	{"الجمعة", 0.8},
}

var stepsAdvice = []string{
	"استهدف 10,000 خطوة يومياً للحفاظ على صحة القلب",
	"قسّم المشي على فترات قصيرة خلال اليوم",
	"استخدم الدرج بدلاً من المصعد",
	"ارتدِ حذاءً مريحاً مناسباً للمشي",
}

var questionsForDoctor = []string{
	"ما هو السبب المحتمل للأعراض التي أعاني منها؟",
	"ما الفحوصات أو التحاليل التي أحتاجها؟",
	"ما خيارات العلاج المتاحة وما آثارها الجانبية؟",
	"متى يجب أن أعود للمتابعة؟",
	"ما العلامات التي تستدعي التوجه للطوارئ فوراً؟",
}

var emergencyFirstAid = []string{
	"اتصل بالإسعاف فوراً على الرقم 997",
	"لا تقد السيارة بنفسك إلى المستشفى",
	"اجلس أو استلقِ في وضع مريح وحافظ على هدوئك",
	"إذا فقد المريض وعيه ولم يتنفس ابدأ الإنعاش القلبي الرئوي",
	"جهّز قائمة بالأدوية التي يتناولها المريض",
}

var dosageWarnings = []string{
	"لا تتجاوز الجرعة اليومية القصوى تحت أي ظرف",
	"لا تجمع بين أكثر من دواء يحتوي على باراسيتامول",
	"الجرعات المحسوبة استرشادية ولا تغني عن استشارة الطبيب أو الصيدلي",
}

var dosageAdvice = []string{
	"استخدم المحقنة أو الكوب المرفق مع الدواء لقياس الجرعة بدقة",
	"احسب الجرعة حسب الوزن وليس العمر",
	"سجّل وقت كل جرعة لتجنب التكرار",
	"راجع الطبيب إذا استمرت الحرارة أكثر من 48 ساعة",
}

var dosageEmergencyInfo = []string{
	"في حال تناول جرعة زائدة توجه للطوارئ فوراً حتى لو لم تظهر أعراض",
	"مركز السموم: اتصل بالرقم الموحد 937",
	"راجع الطوارئ إذا ظهر طفح جلدي أو صعوبة في التنفس بعد الدواء",
	"الحرارة فوق 38 درجة لرضيع عمره أقل من 3 أشهر تستدعي مراجعة الطبيب فوراً",
}

var vaccinationAdvice = []string{
	"احتفظ ببطاقة التطعيم وأحضرها في كل زيارة",
	"من الطبيعي ظهور حرارة خفيفة أو احمرار مكان الحقنة",
	"أجّل التطعيم عند وجود حرارة مرتفعة واستشر الطبيب",
	"التطعيمات الاختيارية تُناقش مع طبيب الأطفال حسب حالة الطفل",
}

var pregnancyTips = []string{
	"تناولي حمض الفوليك يومياً خاصة في الأشهر الأولى",
	"التزمي بمواعيد المتابعة الدورية",
	"اشربي كمية كافية من الماء وتجنبي الكافيين الزائد",
	"مارسي المشي الخفيف بعد استشارة الطبيب",
}

var ovulationTips = []string{
	"سجّلي مواعيد الدورة شهرياً لتحسين دقة التوقع",
	"قد تلاحظين ارتفاعاً طفيفاً في حرارة الجسم بعد الإباضة",
	"الأيام الخصبة تشمل الأيام الخمسة السابقة ليوم الإباضة",
}

var irregularCycleTip = "دورتك خارج المدى الطبيعي (21-35 يوماً)، يُنصح بمراجعة طبيبة النساء"

var bloodTypeAdvice = []string{
	"التوقع احتمالي ولا يغني عن تحليل فصيلة الدم بعد الولادة",
	"إذا كانت الأم سالبة العامل الريسوسي يجب متابعة الحمل لتجنب عدم التوافق",
	"قد تحتاج الأم سالبة الريسوس إلى حقنة Anti-D خلال الحمل أو بعد الولادة",
}
