package message

import (
	"fmt"
	"strings"

	"sillah/internal/risk"
)

// Lang selects the language of user-facing text.
type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"
)

// ParseLang accepts "en" or "ar" in any case.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case EN:
		return EN, nil
	case AR:
		return AR, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Catalog renders text in one language.
type Catalog struct {
	lang Lang
}

// New creates a catalog for lang. Anything other than AR falls back to EN.
func New(lang Lang) *Catalog {
	if lang != AR {
		lang = EN
	}
	return &Catalog{lang: lang}
}

func (c *Catalog) Lang() Lang { return c.lang }

func (c *Catalog) pick(en, ar string) string {
	if c.lang == AR {
		return ar
	}
	return en
}

func (c *Catalog) Title() string {
	return c.pick("=== Sillah (صلة) Preventive Health System ===", "=== صلة: نظام الصحة الوقائية ===")
}

// Risk returns the advice text for a risk level.
func (c *Catalog) Risk(level risk.Level) string {
	switch level {
	case risk.HighRisk:
		return c.pick("High Risk: Please schedule a preventive screening.", "مخاطر عالية: يرجى حجز فحص وقائي.")
	case risk.ModerateRisk:
		return c.pick("Moderate Risk: Consider a medical consultation.", "مخاطر متوسطة: يُنصح باستشارة طبية.")
	default:
		return c.pick("No immediate hereditary risk detected.", "لا توجد مخاطر وراثية فورية.")
	}
}

func (c *Catalog) RecommendedClinic() string {
	return c.pick("Recommended Clinic: ", "العيادة الموصى بها: ")
}

func (c *Catalog) AppointmentBooked(userName, clinicName string) string {
	if c.lang == AR {
		return fmt.Sprintf("تم حجز موعد لـ %s في %s", userName, clinicName)
	}
	return fmt.Sprintf("Appointment booked for %s at %s", userName, clinicName)
}

func (c *Catalog) End() string {
	return c.pick("=== End of Simulation ===", "=== نهاية المحاكاة ===")
}
