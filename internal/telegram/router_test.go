package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/feature/imagepdf"
)

type fakeSender struct {
	sent     []*bot.SendMessageParams
	edits    []*bot.EditMessageTextParams
	answered []string
	docs     []*bot.SendDocumentParams
	deleted  []*bot.DeleteMessageParams
	fileLink string
	nextID   int
}

func (f *fakeSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, params)
	f.nextID++
	return &models.Message{ID: f.nextID}, nil
}

func (f *fakeSender) EditMessageText(_ context.Context, params *bot.EditMessageTextParams) (*models.Message, error) {
	f.edits = append(f.edits, params)
	return &models.Message{}, nil
}

func (f *fakeSender) AnswerCallbackQuery(_ context.Context, params *bot.AnswerCallbackQueryParams) (bool, error) {
	f.answered = append(f.answered, params.CallbackQueryID)
	return true, nil
}

func (f *fakeSender) SendDocument(_ context.Context, params *bot.SendDocumentParams) (*models.Message, error) {
	f.docs = append(f.docs, params)
	return &models.Message{}, nil
}

func (f *fakeSender) DeleteMessage(_ context.Context, params *bot.DeleteMessageParams) (bool, error) {
	f.deleted = append(f.deleted, params)
	return true, nil
}

func (f *fakeSender) GetFile(_ context.Context, params *bot.GetFileParams) (*models.File, error) {
	return &models.File{FileID: params.FileID, FilePath: "photos/file.jpg"}, nil
}

func (f *fakeSender) FileDownloadLink(*models.File) string {
	return f.fileLink
}

func (f *fakeSender) lastEdit(t *testing.T) *bot.EditMessageTextParams {
	t.Helper()
	if len(f.edits) == 0 {
		t.Fatalf("expected at least one edit")
	}
	return f.edits[len(f.edits)-1]
}

func (f *fakeSender) lastSent(t *testing.T) *bot.SendMessageParams {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatalf("expected at least one sent message")
	}
	return f.sent[len(f.sent)-1]
}

type stubPrayer struct {
	times   domain.PrayerTimes
	fasting domain.FastingTimes
	err     error
}

func (s stubPrayer) Times(context.Context, string) (domain.PrayerTimes, error) {
	return s.times, s.err
}

func (s stubPrayer) FastingTimes(context.Context, string) (domain.FastingTimes, error) {
	return s.fasting, s.err
}

type stubMosques struct {
	results []domain.Mosque
}

func (s stubMosques) Search(context.Context, float64, float64) []domain.Mosque {
	return s.results
}

type stubWeather struct {
	weather domain.Weather
	err     error
}

func (s stubWeather) ByCity(context.Context, string) (domain.Weather, error) {
	return s.weather, s.err
}

func (s stubWeather) ByLocation(context.Context, float64, float64) (domain.Weather, error) {
	return s.weather, s.err
}

func newTestRouter(prayer PrayerProvider, mosques MosqueSearcher, weather WeatherProvider, convert func([]byte) ([]byte, error)) *Router {
	logger, _ := logtest.NewNullLogger()
	return NewRouter(prayer, mosques, weather, convert, logrus.NewEntry(logger))
}

func messageUpdate(chatID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   1,
			From: &models.User{ID: 7},
			Chat: models.Chat{ID: chatID},
			Text: text,
		},
	}
}

func locationUpdate(chatID int64, lat, lon float64) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:       2,
			From:     &models.User{ID: 7},
			Chat:     models.Chat{ID: chatID},
			Location: &models.Location{Latitude: lat, Longitude: lon},
		},
	}
}

func photoUpdate(chatID int64) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   3,
			From: &models.User{ID: 7},
			Chat: models.Chat{ID: chatID},
			Photo: []models.PhotoSize{
				{FileID: "small"},
				{FileID: "large"},
			},
		},
	}
}

func callbackUpdate(chatID int64, msgID int, data string) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb-1",
			From: models.User{ID: 7},
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Type: models.MaybeInaccessibleMessageTypeMessage,
				Message: &models.Message{
					ID:   msgID,
					Chat: models.Chat{ID: chatID},
				},
			},
		},
	}
}

func TestStartShowsLanguagePicker(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.dispatch(context.Background(), tg, messageUpdate(100, "/start"))

	sent := tg.lastSent(t)
	if !strings.Contains(sent.Text, "Tilni tanlang") {
		t.Fatalf("expected language picker text, got %q", sent.Text)
	}

	kb, ok := sent.ReplyMarkup.(*models.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected inline keyboard, got %T", sent.ReplyMarkup)
	}
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("expected 3 language rows, got %d", len(kb.InlineKeyboard))
	}
	if kb.InlineKeyboard[2][0].CallbackData != "lang_en" {
		t.Fatalf("expected english button token, got %q", kb.InlineKeyboard[2][0].CallbackData)
	}
}

func TestLanguageSelectionShowsLocalizedMenu(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.dispatch(context.Background(), tg, callbackUpdate(100, 5, "lang_en"))

	if len(tg.answered) != 1 {
		t.Fatalf("expected callback to be answered, got %d answers", len(tg.answered))
	}

	if got := router.sessions.Language(100); got != domain.LangEnglish {
		t.Fatalf("expected stored language en, got %s", got)
	}

	edit := tg.lastEdit(t)
	if edit.MessageID != 5 {
		t.Fatalf("expected picker message to be edited, got message %d", edit.MessageID)
	}
	if !strings.Contains(edit.Text, "Hello!") {
		t.Fatalf("expected english welcome, got %q", edit.Text)
	}

	kb, ok := edit.ReplyMarkup.(*models.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected inline keyboard, got %T", edit.ReplyMarkup)
	}
	if kb.InlineKeyboard[0][0].Text != "🕌 Prayer times" {
		t.Fatalf("expected localized menu button, got %q", kb.InlineKeyboard[0][0].Text)
	}
}

func TestPrayerRegionFlow(t *testing.T) {
	times := domain.PrayerTimes{
		Region: "Toshkent", Date: "30 Aug 2026", Weekday: "Sunday",
		HijriDate: "17 Rabi al-Awwal 1448",
		Fajr:      "04:45", Sunrise: "06:05", Dhuhr: "12:30",
		Asr: "16:10", Maghrib: "18:50", Isha: "20:05",
	}
	router := newTestRouter(stubPrayer{times: times}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(context.Background(), tg, callbackUpdate(100, 5, "region_Toshkent"))

	if len(tg.edits) != 2 {
		t.Fatalf("expected loading edit then result edit, got %d edits", len(tg.edits))
	}
	if !strings.Contains(tg.edits[0].Text, "Getting prayer times for Toshkent") {
		t.Fatalf("expected loading text first, got %q", tg.edits[0].Text)
	}

	final := tg.lastEdit(t)
	for _, want := range []string{"Toshkent", "04:45", "20:05", "Fajr"} {
		if !strings.Contains(final.Text, want) {
			t.Fatalf("expected result to contain %q, got:\n%s", want, final.Text)
		}
	}
}

func TestPrayerProviderErrorShowsRetry(t *testing.T) {
	router := newTestRouter(stubPrayer{err: errors.New("down")}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(context.Background(), tg, callbackUpdate(100, 5, "region_Toshkent"))

	final := tg.lastEdit(t)
	if !strings.Contains(final.Text, "Error getting prayer times") {
		t.Fatalf("expected error text, got %q", final.Text)
	}

	kb, ok := final.ReplyMarkup.(*models.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected retry keyboard, got %T", final.ReplyMarkup)
	}
	if kb.InlineKeyboard[0][0].CallbackData != tokenPrayer {
		t.Fatalf("expected retry to reopen region list, got %q", kb.InlineKeyboard[0][0].CallbackData)
	}
}

func TestMosqueSearchFlow(t *testing.T) {
	results := make([]domain.Mosque, 5)
	for i := range results {
		results[i] = domain.Mosque{
			Name:           fmt.Sprintf("Mosque %d", i),
			Lat:            41.3 + float64(i)*0.001,
			Lon:            69.2,
			DistanceMeters: 100 * (i + 1),
		}
	}

	router := newTestRouter(stubPrayer{}, stubMosques{results: results}, stubWeather{}, nil)
	tg := &fakeSender{}
	ctx := context.Background()

	router.sessions.SetLanguage(100, domain.LangEnglish)

	// Opening the feature latches the chat for a location.
	router.dispatch(ctx, tg, callbackUpdate(100, 5, "mosque"))
	if !strings.Contains(tg.lastEdit(t).Text, "Send your location") {
		t.Fatalf("expected location prompt, got %q", tg.lastEdit(t).Text)
	}

	router.dispatch(ctx, tg, locationUpdate(100, 41.3111, 69.2797))

	list := tg.lastEdit(t)
	if !strings.Contains(list.Text, "Nearest mosques") || !strings.Contains(list.Text, "Mosque 0") {
		t.Fatalf("expected mosque list, got:\n%s", list.Text)
	}

	kb := list.ReplyMarkup.(*models.InlineKeyboardMarkup)
	if kb.InlineKeyboard[0][0].CallbackData != "mosque_0" {
		t.Fatalf("expected first list button mosque_0, got %q", kb.InlineKeyboard[0][0].CallbackData)
	}

	// Drill into the second result.
	router.dispatch(ctx, tg, callbackUpdate(100, 6, "mosque_1"))
	detail := tg.lastEdit(t)
	if !strings.Contains(detail.Text, "Mosque 1") || !strings.Contains(detail.Text, "google.com/maps") {
		t.Fatalf("expected mosque detail with maps link, got:\n%s", detail.Text)
	}

	// Back returns to the same list.
	router.dispatch(ctx, tg, callbackUpdate(100, 6, "mosque_back"))
	if !strings.Contains(tg.lastEdit(t).Text, "Nearest mosques") {
		t.Fatalf("expected list after back, got %q", tg.lastEdit(t).Text)
	}

	// A stale slot falls back to the list instead of erroring.
	router.dispatch(ctx, tg, callbackUpdate(100, 6, "mosque_9"))
	if !strings.Contains(tg.lastEdit(t).Text, "Nearest mosques") {
		t.Fatalf("expected list for stale slot, got %q", tg.lastEdit(t).Text)
	}
}

func TestMosqueSearchEmptyResults(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}
	ctx := context.Background()

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(ctx, tg, callbackUpdate(100, 5, "mosque"))
	router.dispatch(ctx, tg, locationUpdate(100, 41.3111, 69.2797))

	if !strings.Contains(tg.lastEdit(t).Text, "No mosques found") {
		t.Fatalf("expected none-found message, got %q", tg.lastEdit(t).Text)
	}
}

func TestLocationWithoutLatchGetsHint(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(context.Background(), tg, locationUpdate(100, 41.3, 69.2))

	if !strings.Contains(tg.lastSent(t).Text, "select from menu") {
		t.Fatalf("expected location hint, got %q", tg.lastSent(t).Text)
	}
}

func TestWeatherCityFlow(t *testing.T) {
	current := domain.Weather{
		Location: "Toshkent", Temperature: 31, FeelsLike: 29,
		Humidity: 20, WindSpeed: 2.1, Pressure: 1009,
		Condition: "clear sky", Sunrise: "06:01", Sunset: "19:32",
	}
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{weather: current}, nil)
	tg := &fakeSender{}

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(context.Background(), tg, callbackUpdate(100, 5, "weather_city_Toshkent"))

	final := tg.lastEdit(t)
	for _, want := range []string{"Toshkent", "31°C", "Clear sky"} {
		if !strings.Contains(final.Text, want) {
			t.Fatalf("expected weather result to contain %q, got:\n%s", want, final.Text)
		}
	}
}

func TestWeatherLocationFlow(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{weather: domain.Weather{Location: "Tashkent", Condition: "mist"}}, nil)
	tg := &fakeSender{}
	ctx := context.Background()

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(ctx, tg, callbackUpdate(100, 5, "weather_location"))
	router.dispatch(ctx, tg, locationUpdate(100, 41.3, 69.2))

	if !strings.Contains(tg.lastEdit(t).Text, "Tashkent") {
		t.Fatalf("expected weather result for location, got %q", tg.lastEdit(t).Text)
	}
}

func TestUnknownCallbackEchoesPlaceholder(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(context.Background(), tg, callbackUpdate(100, 5, "payments"))

	sent := tg.lastSent(t)
	if !strings.Contains(sent.Text, "payments selected") {
		t.Fatalf("expected placeholder echo, got %q", sent.Text)
	}
}

func TestTextMessageGetsButtonHint(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(context.Background(), tg, messageUpdate(100, "salom"))

	if !strings.Contains(tg.lastSent(t).Text, "choose one of the buttons") {
		t.Fatalf("expected button hint, got %q", tg.lastSent(t).Text)
	}
}

func TestImageConversionFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	var converted []byte
	convert := func(data []byte) ([]byte, error) {
		converted = data
		return []byte("%PDF-1.4 fake"), nil
	}

	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, convert)
	tg := &fakeSender{fileLink: server.URL}
	ctx := context.Background()

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(ctx, tg, callbackUpdate(100, 5, "convert"))
	router.dispatch(ctx, tg, photoUpdate(100))

	if string(converted) != "image-bytes" {
		t.Fatalf("expected downloaded bytes to reach the converter, got %q", converted)
	}

	if len(tg.docs) != 1 {
		t.Fatalf("expected one document send, got %d", len(tg.docs))
	}

	doc, ok := tg.docs[0].Document.(*models.InputFileUpload)
	if !ok {
		t.Fatalf("expected upload document, got %T", tg.docs[0].Document)
	}
	if doc.Filename != "image_7.pdf" {
		t.Fatalf("expected filename image_7.pdf, got %q", doc.Filename)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(doc.Data); err != nil {
		t.Fatalf("failed to read document data: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected pdf payload, got %q", buf.String())
	}

	if len(tg.deleted) != 1 {
		t.Fatalf("expected progress message to be deleted, got %d deletes", len(tg.deleted))
	}

	if !strings.Contains(tg.lastSent(t).Text, "send another image") {
		t.Fatalf("expected follow-up hint, got %q", tg.lastSent(t).Text)
	}

	// One photo event consumes the latch; the next photo gets the menu hint
	// instead of another conversion.
	router.dispatch(ctx, tg, photoUpdate(100))
	if !strings.Contains(tg.lastSent(t).Text, "select from menu") {
		t.Fatalf("expected second photo to be hinted, got %q", tg.lastSent(t).Text)
	}
	if len(tg.docs) != 1 {
		t.Fatalf("expected no second conversion, got %d documents", len(tg.docs))
	}
}

func TestImageConversionUnreadableClearsLatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("garbage"))
	}))
	defer server.Close()

	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, imagepdf.Convert)
	tg := &fakeSender{fileLink: server.URL}
	ctx := context.Background()

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(ctx, tg, callbackUpdate(100, 5, "convert"))
	router.dispatch(ctx, tg, photoUpdate(100))

	if !strings.Contains(tg.lastEdit(t).Text, "Could not read image") {
		t.Fatalf("expected unreadable message, got %q", tg.lastEdit(t).Text)
	}

	// The latch is consumed even on failure; another photo is hinted until
	// the feature is reopened from the menu.
	router.dispatch(ctx, tg, photoUpdate(100))
	if !strings.Contains(tg.lastSent(t).Text, "select from menu") {
		t.Fatalf("expected photo hint after failed conversion, got %q", tg.lastSent(t).Text)
	}

	router.dispatch(ctx, tg, callbackUpdate(100, 5, "convert"))
	router.dispatch(ctx, tg, photoUpdate(100))
	if !strings.Contains(tg.lastEdit(t).Text, "Could not read image") {
		t.Fatalf("expected reopened feature to process the photo, got %q", tg.lastEdit(t).Text)
	}
}

func TestPhotoWithoutLatchGetsHint(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(context.Background(), tg, photoUpdate(100))

	if !strings.Contains(tg.lastSent(t).Text, "select from menu") {
		t.Fatalf("expected photo hint, got %q", tg.lastSent(t).Text)
	}
}

func TestNonImageDocumentRejected(t *testing.T) {
	router := newTestRouter(stubPrayer{}, stubMosques{}, stubWeather{}, nil)
	tg := &fakeSender{}
	ctx := context.Background()

	router.sessions.SetLanguage(100, domain.LangEnglish)
	router.dispatch(ctx, tg, callbackUpdate(100, 5, "convert"))

	update := &models.Update{
		Message: &models.Message{
			ID:       4,
			From:     &models.User{ID: 7},
			Chat:     models.Chat{ID: 100},
			Document: &models.Document{FileID: "doc", MimeType: "application/zip"},
		},
	}
	router.dispatch(ctx, tg, update)

	if !strings.Contains(tg.lastSent(t).Text, "not an image") {
		t.Fatalf("expected format rejection, got %q", tg.lastSent(t).Text)
	}

	// The rejection consumed the latch.
	router.dispatch(ctx, tg, photoUpdate(100))
	if !strings.Contains(tg.lastSent(t).Text, "select from menu") {
		t.Fatalf("expected photo hint after rejection, got %q", tg.lastSent(t).Text)
	}
}
