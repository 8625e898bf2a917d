package chatbot

import "strings"

// Usecase is the rule-based chatbot: keyword lookup over a static table,
// bilingual canned answers, default fallback.
type Usecase struct{}

func NewUsecase() *Usecase { return &Usecase{} }

type Reply struct {
	AnswerEn string `json:"answer_en"`
	AnswerAr string `json:"answer_ar"`
	Matched  bool   `json:"matched"`
}

type rule struct {
	keywords []string
	en       string
	ar       string
}

var rules = []rule{
	{
		keywords: []string{"donate", "donation", "تبرع"},
		en:       "You can donate directly to any verified organization from its page, or a share of every purchase goes to the organization linked to the product.",
		ar:       "يمكنك التبرع مباشرة لأي منظمة موثقة من صفحتها، كما يذهب جزء من كل عملية شراء إلى المنظمة المرتبطة بالمنتج.",
	},
	{
		keywords: []string{"order", "track", "shipping", "طلب", "شحن"},
		en:       "Your orders and their status are listed under your order history. A pending unpaid order can still be cancelled.",
		ar:       "تجد طلباتك وحالتها في سجل الطلبات. يمكن إلغاء الطلب ما دام معلقاً وغير مدفوع.",
	},
	{
		keywords: []string{"refund", "cancel", "إلغاء", "استرجاع"},
		en:       "Orders can only be cancelled while pending and unpaid. For paid orders contact support.",
		ar:       "يمكن إلغاء الطلبات فقط وهي معلقة وغير مدفوعة. للطلبات المدفوعة تواصل مع الدعم.",
	},
	{
		keywords: []string{"seller", "sell", "product", "بائع", "منتج"},
		en:       "Sellers submit products for review; a product appears publicly once an admin approves and activates it.",
		ar:       "يرسل البائعون منتجاتهم للمراجعة؛ يظهر المنتج للعامة بعد موافقة المشرف وتفعيله.",
	},
	{
		keywords: []string{"organization", "verified", "منظمة"},
		en:       "Organizations are verified by the platform team. Donation totals for each verified organization are public.",
		ar:       "يتم توثيق المنظمات من قبل فريق المنصة. إجمالي التبرعات لكل منظمة موثقة معلن.",
	},
}

const (
	fallbackEn = "Sorry, I did not understand. Try asking about donations, orders, products or organizations."
	fallbackAr = "عذراً، لم أفهم سؤالك. جرب السؤال عن التبرعات أو الطلبات أو المنتجات أو المنظمات."
)

func (u *Usecase) Answer(message string) Reply {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return Reply{AnswerEn: r.en, AnswerAr: r.ar, Matched: true}
			}
		}
	}
	return Reply{AnswerEn: fallbackEn, AnswerAr: fallbackAr}
}
