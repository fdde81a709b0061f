package weather

import (
	"fmt"
	"strings"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/i18n"
)

// conditionEmojis maps provider condition keywords to an emoji, matched by
// substring against the lowercased description.
var conditionEmojis = []struct {
	keyword string
	emoji   string
}{
	{"clear", "☀️"},
	{"clouds", "☁️"},
	{"rain", "🌧️"},
	{"drizzle", "🌦️"},
	{"thunderstorm", "⛈️"},
	{"snow", "❄️"},
	{"mist", "🌫️"},
	{"fog", "🌫️"},
}

func conditionEmoji(condition string) string {
	lowered := strings.ToLower(condition)
	for _, entry := range conditionEmojis {
		if strings.Contains(lowered, entry.keyword) {
			return entry.emoji
		}
	}

	return "🌤️"
}

// Format renders the current weather as an HTML message.
func Format(w domain.Weather, lang domain.Language) string {
	label := func(field string) string {
		return i18n.Text(i18n.FeatureWeather, field, lang)
	}

	emoji := conditionEmoji(w.Condition)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(label("title"), w.Location, emoji))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %s %s\n", label("condition"), capitalize(w.Condition), emoji))
	b.WriteString(fmt.Sprintf("%s: %d°C\n", label("temperature"), w.Temperature))
	b.WriteString(fmt.Sprintf("%s: %d°C\n", label("feels_like"), w.FeelsLike))
	b.WriteString(fmt.Sprintf("%s: %d%%\n", label("humidity"), w.Humidity))
	b.WriteString(fmt.Sprintf("%s: %.1f m/s\n", label("wind"), w.WindSpeed))
	b.WriteString(fmt.Sprintf("%s: %d hPa\n", label("pressure"), w.Pressure))
	b.WriteString(fmt.Sprintf("%s: %s\n", label("sunrise"), w.Sunrise))
	b.WriteString(fmt.Sprintf("%s: %s", label("sunset"), w.Sunset))

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
