package awareness

import (
	"errors"

	"sillah/internal/message"
)

var ErrTopicNotFound = errors.New("topic not found")

// Topic is a short educational article.
type Topic struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type localized struct {
	en, ar string
}

func (l localized) in(lang message.Lang) string {
	if lang == message.AR {
		return l.ar
	}
	return l.en
}

var topics = []struct {
	id          int
	title, body localized
}{
	{
		id: 1,
		title: localized{
			en: "Understanding Sickle Cell Disease",
			ar: "فهم مرض فقر الدم المنجلي",
		},
		body: localized{
			en: "SCD affects red blood cells and can be hereditary.",
			ar: "يؤثر فقر الدم المنجلي على خلايا الدم الحمراء ويمكن أن يكون وراثيًا.",
		},
	},
	{
		id: 2,
		title: localized{
			en: "Importance of Genetic Screening",
			ar: "أهمية الفحص الجيني",
		},
		body: localized{
			en: "Genetic screening helps detect hereditary risks early.",
			ar: "يساعد الفحص الجيني على اكتشاف المخاطر الوراثية مبكرًا.",
		},
	},
	{
		id: 3,
		title: localized{
			en: "Healthy Heart Tips",
			ar: "نصائح لقلب سليم",
		},
		body: localized{
			en: "Maintain a balanced diet, exercise, and regular checkups.",
			ar: "حافظ على نظام غذائي متوازن وممارسة الرياضة والفحوصات الدورية.",
		},
	},
}

// Topics lists every topic in lang, ordered by ID.
func Topics(lang message.Lang) []Topic {
	out := make([]Topic, 0, len(topics))
	for _, t := range topics {
		out = append(out, Topic{ID: t.id, Title: t.title.in(lang), Body: t.body.in(lang)})
	}
	return out
}

// FindTopic returns the topic with id in lang.
func FindTopic(lang message.Lang, id int) (Topic, error) {
	for _, t := range Topics(lang) {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, ErrTopicNotFound
}
