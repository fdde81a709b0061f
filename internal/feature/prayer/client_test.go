package prayer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const timingsBody = `{
	"code": 200,
	"data": {
		"timings": {
			"Fajr": "05:41 (+05)",
			"Sunrise": "07:02",
			"Dhuhr": "12:41",
			"Asr": "15:40",
			"Maghrib": "18:14",
			"Isha": "19:30"
		},
		"date": {
			"readable": "19 Feb 2026",
			"hijri": {
				"day": "2",
				"year": "1447",
				"month": {"en": "Ramadan"},
				"weekday": {"en": "Thursday"}
			}
		}
	}
}`

func testLogger() *logrus.Entry {
	logger, _ := logtest.NewNullLogger()
	return logrus.NewEntry(logger)
}

func TestTimesParsesProviderResponse(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/timingsByCity" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"city":    q.Get("city"),
			"country": q.Get("country"),
			"method":  q.Get("method"),
			"school":  q.Get("school"),
		}
		w.Write([]byte(timingsBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	times, err := client.Times(context.Background(), "Toshkent")
	if err != nil {
		t.Fatalf("Times returned error: %v", err)
	}

	if gotQuery["city"] != "Tashkent" || gotQuery["country"] != "Uzbekistan" ||
		gotQuery["method"] != "2" || gotQuery["school"] != "1" {
		t.Fatalf("unexpected query params: %+v", gotQuery)
	}

	if times.Region != "Toshkent" {
		t.Fatalf("expected region Toshkent, got %s", times.Region)
	}
	if times.Fajr != "05:41" {
		t.Fatalf("expected Fajr 05:41 with timezone suffix trimmed, got %q", times.Fajr)
	}
	if times.Isha != "19:30" || times.Maghrib != "18:14" {
		t.Fatalf("unexpected times: %+v", times)
	}
	if times.HijriDate != "2 Ramadan 1447" {
		t.Fatalf("expected hijri date '2 Ramadan 1447', got %q", times.HijriDate)
	}
	if times.Weekday != "Thursday" {
		t.Fatalf("expected weekday Thursday, got %q", times.Weekday)
	}
}

func TestFastingTimesMapsFajrAndMaghrib(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(timingsBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	fasting, err := client.FastingTimes(context.Background(), "Buxoro")
	if err != nil {
		t.Fatalf("FastingTimes returned error: %v", err)
	}

	if fasting.Suhoor != "05:41" {
		t.Fatalf("expected Suhoor to equal Fajr time, got %q", fasting.Suhoor)
	}
	if fasting.Iftar != "18:14" {
		t.Fatalf("expected Iftar to equal Maghrib time, got %q", fasting.Iftar)
	}
}

func TestTimesProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code": 400, "data": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.Times(context.Background(), "Toshkent")
	if !errors.Is(err, ErrProviderRejected) {
		t.Fatalf("expected ErrProviderRejected, got %v", err)
	}
}

func TestTimesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, testLogger())

	if _, err := client.Times(context.Background(), "Toshkent"); err == nil {
		t.Fatalf("expected transport error for unreachable provider")
	}
}

func TestAPICityTotalLookup(t *testing.T) {
	for _, region := range Regions {
		if city := APICity(region); city == "" {
			t.Fatalf("expected non-empty provider spelling for %s", region)
		}
	}

	if len(Regions) != 14 {
		t.Fatalf("expected 14 regions, got %d", len(Regions))
	}

	if city := APICity("No Such Region"); city != "Tashkent" {
		t.Fatalf("expected capital fallback for unknown region, got %q", city)
	}
}

func TestClockHHMM(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"05:41 (+05)", "05:41"},
		{"05:41", "05:41"},
		{" 18:14 ", "18:14"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := clockHHMM(tt.raw); got != tt.want {
			t.Fatalf("clockHHMM(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
