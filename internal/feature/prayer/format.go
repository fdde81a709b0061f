package prayer

import (
	"fmt"
	"strings"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/i18n"
)

// Format renders one day of prayer times as an HTML message.
func Format(t domain.PrayerTimes, lang domain.Language) string {
	label := func(field string) string {
		return i18n.Text(i18n.FeaturePrayer, field, lang)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf(label("title"), t.Region))
	if weekday := i18n.WeekdayName(t.Weekday, lang); weekday != "" {
		b.WriteString(", " + weekday)
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %s\n", label("date"), t.Date))
	b.WriteString(fmt.Sprintf("%s: %s\n\n", label("hijri"), t.HijriDate))

	times := []struct {
		field string
		value string
	}{
		{"fajr", t.Fajr},
		{"sunrise", t.Sunrise},
		{"dhuhr", t.Dhuhr},
		{"asr", t.Asr},
		{"maghrib", t.Maghrib},
		{"isha", t.Isha},
	}
	for _, entry := range times {
		b.WriteString(fmt.Sprintf("%s: <b>%s</b>\n", label(entry.field), entry.value))
	}

	b.WriteString("\n")
	b.WriteString(label("footer") + "\n")
	b.WriteString(label("accuracy"))

	return b.String()
}

// FormatFasting renders the fasting boundaries plus the Suhoor and Iftar duas.
func FormatFasting(t domain.FastingTimes, lang domain.Language) string {
	label := func(field string) string {
		return i18n.Text(i18n.FeatureFasting, field, lang)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf(label("title"), t.Region))
	if weekday := i18n.WeekdayName(t.Weekday, lang); weekday != "" {
		b.WriteString(", " + weekday)
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %s\n", i18n.Text(i18n.FeaturePrayer, "date", lang), t.Date))
	b.WriteString(fmt.Sprintf("%s: %s\n\n", i18n.Text(i18n.FeaturePrayer, "hijri", lang), t.HijriDate))

	b.WriteString(fmt.Sprintf("%s: <b>%s</b>\n", label("suhoor"), t.Suhoor))
	b.WriteString(fmt.Sprintf("%s: <b>%s</b>\n\n", label("iftar"), t.Iftar))

	b.WriteString(label("suhoor_dua") + "\n\n")
	b.WriteString(label("iftar_dua") + "\n\n")

	b.WriteString(i18n.Text(i18n.FeaturePrayer, "footer", lang) + "\n")
	b.WriteString(i18n.Text(i18n.FeaturePrayer, "accuracy", lang) + "\n\n")
	b.WriteString(label("blessing"))

	return b.String()
}
