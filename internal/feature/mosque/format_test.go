package mosque

import (
	"strings"
	"testing"

	"taqvim_bot/internal/domain"
)

var sampleMosques = []domain.Mosque{
	{Name: "Minor Mosque", Lat: 41.3265, Lon: 69.2922, DistanceMeters: 450, Address: "Navoi 12, Tashkent"},
	{Name: "", Lat: 41.3301, Lon: 69.2800, DistanceMeters: 1250, Address: ""},
}

func TestFormatListNonEmptyForEveryLanguage(t *testing.T) {
	for _, lang := range domain.Languages {
		out := FormatList(sampleMosques, lang)

		if out == "" {
			t.Fatalf("expected non-empty list for %s", lang)
		}
		if !strings.Contains(out, "Minor Mosque") {
			t.Fatalf("expected mosque name in %s output", lang)
		}
		if !strings.Contains(out, "450 m") {
			t.Fatalf("expected sub-kilometer distance in meters, got:\n%s", out)
		}
		if !strings.Contains(out, "1.25 km") {
			t.Fatalf("expected kilometer distance, got:\n%s", out)
		}
	}
}

func TestFormatListEmptyResults(t *testing.T) {
	out := FormatList(nil, domain.LangEnglish)
	if !strings.Contains(out, "No mosques found") {
		t.Fatalf("expected none-found message, got %q", out)
	}
}

func TestFormatDetailContainsCoordinatesLink(t *testing.T) {
	out := FormatDetail(sampleMosques[0], domain.LangEnglish)

	if !strings.Contains(out, "destination=41.3265,69.2922") {
		t.Fatalf("expected maps link with exact coordinates, got:\n%s", out)
	}
	if !strings.Contains(out, "Minor Mosque") || !strings.Contains(out, "Navoi 12, Tashkent") {
		t.Fatalf("expected name and address, got:\n%s", out)
	}
}

func TestFormatDetailNoAddressSentinel(t *testing.T) {
	out := FormatDetail(sampleMosques[1], domain.LangEnglish)

	if !strings.Contains(out, "No address available") {
		t.Fatalf("expected no-address sentinel, got:\n%s", out)
	}
	if !strings.Contains(out, "🏢 Mosque") {
		t.Fatalf("expected placeholder name, got:\n%s", out)
	}
}

func TestFormatListEscapesHTML(t *testing.T) {
	mosques := []domain.Mosque{{Name: "<b>bold</b>", DistanceMeters: 10}}
	out := FormatList(mosques, domain.LangEnglish)

	if strings.Contains(out, "<b>bold</b>") {
		t.Fatalf("expected name markup to be escaped, got:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Fatalf("expected escaped name, got:\n%s", out)
	}
}
