package mosque

import (
	"fmt"
	"strconv"
	"strings"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/i18n"
)

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// DisplayName returns the mosque's name, or a localized placeholder when the
// provider supplied none.
func DisplayName(m domain.Mosque, lang domain.Language) string {
	if m.Name != "" {
		return m.Name
	}

	return i18n.Text(i18n.FeatureMosque, "placeholder_name", lang)
}

// FormatList renders the search results as a numbered HTML list.
func FormatList(mosques []domain.Mosque, lang domain.Language) string {
	if len(mosques) == 0 {
		return i18n.Text(i18n.FeatureMosque, "none_found", lang)
	}

	var b strings.Builder
	b.WriteString(i18n.Text(i18n.FeatureMosque, "list_title", lang) + "\n\n")

	for i, m := range mosques {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b>\n", i+1, htmlEscaper.Replace(DisplayName(m, lang))))
		b.WriteString(fmt.Sprintf("   📏 %s\n", formatDistance(m.DistanceMeters)))
		if m.Address != "" {
			b.WriteString(fmt.Sprintf("   📍 %s\n", htmlEscaper.Replace(m.Address)))
		}
		b.WriteString("\n")
	}

	b.WriteString(i18n.Text(i18n.FeatureMosque, "list_hint", lang))

	return b.String()
}

// FormatDetail renders one mosque with its address and a Google Maps
// directions link carrying the exact coordinates.
func FormatDetail(m domain.Mosque, lang domain.Language) string {
	address := m.Address
	if address == "" {
		address = i18n.Text(i18n.FeatureMosque, "no_address", lang)
	}

	mapsURL := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s,%s",
		strconv.FormatFloat(m.Lat, 'f', -1, 64),
		strconv.FormatFloat(m.Lon, 'f', -1, 64))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏢 <b>%s</b>\n\n", htmlEscaper.Replace(DisplayName(m, lang))))
	b.WriteString(fmt.Sprintf("%s %s\n", i18n.Text(i18n.FeatureMosque, "address", lang), htmlEscaper.Replace(address)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", i18n.Text(i18n.FeatureMosque, "distance", lang), formatDistance(m.DistanceMeters)))
	b.WriteString(fmt.Sprintf(`🗺 <a href="%s">%s</a>`, mapsURL, i18n.Text(i18n.FeatureMosque, "directions", lang)))

	return b.String()
}

func formatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}

	return fmt.Sprintf("%.2f km", float64(meters)/1000)
}
