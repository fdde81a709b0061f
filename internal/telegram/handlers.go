package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/feature/imagepdf"
	"taqvim_bot/internal/feature/mosque"
	"taqvim_bot/internal/feature/prayer"
	"taqvim_bot/internal/feature/weather"
	"taqvim_bot/internal/i18n"
	"taqvim_bot/internal/logging"
)

func (r *Router) send(ctx context.Context, tg sender, chat int64, text string, kb *models.InlineKeyboardMarkup) *models.Message {
	params := &bot.SendMessageParams{
		ChatID:    chat,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}

	msg, err := tg.SendMessage(ctx, params)
	if err != nil {
		r.logger.WithFields(logging.Fields{
			"event":   "send_error",
			"chat_id": chat,
		}).WithError(err).Error("failed to send message")
		return nil
	}

	return msg
}

func (r *Router) edit(ctx context.Context, tg sender, chat int64, msgID int, text string, kb *models.InlineKeyboardMarkup) {
	params := &bot.EditMessageTextParams{
		ChatID:    chat,
		MessageID: msgID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}

	if _, err := tg.EditMessageText(ctx, params); err != nil {
		r.logger.WithFields(logging.Fields{
			"event":   "edit_error",
			"chat_id": chat,
		}).WithError(err).Error("failed to edit message")
	}
}

func (r *Router) showLanguagePicker(ctx context.Context, tg sender, chat int64) {
	text := i18n.Text(i18n.FeatureLanguage, "choose", domain.DefaultLanguage)
	r.send(ctx, tg, chat, text, languageKeyboard())
}

func (r *Router) showMainMenu(ctx context.Context, tg sender, chat int64, msgID int, lang domain.Language) {
	text := i18n.Text(i18n.FeatureMenu, "welcome", lang) + "\n\n" + i18n.Text(i18n.FeatureMenu, "choose", lang)
	r.edit(ctx, tg, chat, msgID, text, mainMenuKeyboard(lang))
}

func (r *Router) showPrayerTimes(ctx context.Context, tg sender, chat int64, msgID int, region string, lang domain.Language) {
	loading := fmt.Sprintf(i18n.Text(i18n.FeaturePrayer, "loading", lang), region)
	r.edit(ctx, tg, chat, msgID, loading, nil)

	times, err := r.prayer.Times(ctx, region)
	if err != nil {
		r.logger.WithFields(logging.Fields{
			"event":  "prayer_times_error",
			"region": region,
		}).WithError(err).Error("failed to fetch prayer times")
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeaturePrayer, "error", lang), retryKeyboard(lang, tokenPrayer))
		return
	}

	r.edit(ctx, tg, chat, msgID, prayer.Format(times, lang), resultKeyboard(lang, tokenPrayer))
}

func (r *Router) showFastingTimes(ctx context.Context, tg sender, chat int64, msgID int, region string, lang domain.Language) {
	loading := fmt.Sprintf(i18n.Text(i18n.FeatureFasting, "loading", lang), region)
	r.edit(ctx, tg, chat, msgID, loading, nil)

	times, err := r.prayer.FastingTimes(ctx, region)
	if err != nil {
		r.logger.WithFields(logging.Fields{
			"event":  "fasting_times_error",
			"region": region,
		}).WithError(err).Error("failed to fetch fasting times")
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureFasting, "error", lang), retryKeyboard(lang, tokenFasting))
		return
	}

	r.edit(ctx, tg, chat, msgID, prayer.FormatFasting(times, lang), resultKeyboard(lang, tokenFasting))
}

func (r *Router) promptMosqueLocation(ctx context.Context, tg sender, chat int64, msgID int, lang domain.Language) {
	r.sessions.SetAwaitingLocation(chat, true)
	r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureMosque, "prompt", lang), backKeyboard(lang))
}

func (r *Router) promptWeatherLocation(ctx context.Context, tg sender, chat int64, msgID int, lang domain.Language) {
	r.sessions.SetAwaitingWeatherLocation(chat, true)
	r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureWeather, "location_prompt", lang), backKeyboard(lang))
}

func (r *Router) showConvertIntro(ctx context.Context, tg sender, chat int64, msgID int, lang domain.Language) {
	r.sessions.SetAwaitingImage(chat, true)
	r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureConvert, "intro", lang), backKeyboard(lang))
}

func (r *Router) handleLocation(ctx context.Context, tg sender, msg *models.Message, lang domain.Language) {
	chat := msg.Chat.ID
	loc := msg.Location

	switch {
	case r.sessions.TakeAwaitingLocation(chat):
		r.searchMosques(ctx, tg, chat, loc.Latitude, loc.Longitude, lang)
	case r.sessions.TakeAwaitingWeatherLocation(chat):
		r.showLocationWeather(ctx, tg, chat, loc.Latitude, loc.Longitude, lang)
	default:
		r.send(ctx, tg, chat, i18n.Text(i18n.FeatureMosque, "location_hint", lang), nil)
	}
}

func (r *Router) searchMosques(ctx context.Context, tg sender, chat int64, lat, lon float64, lang domain.Language) {
	progress := r.send(ctx, tg, chat, i18n.Text(i18n.FeatureMosque, "searching", lang), nil)

	results := r.mosques.Search(ctx, lat, lon)
	r.sessions.SetMosques(chat, results)

	var text string
	var kb *models.InlineKeyboardMarkup
	if len(results) == 0 {
		text = i18n.Text(i18n.FeatureMosque, "none_found", lang)
		kb = retrySearchKeyboard(lang)
	} else {
		text = mosque.FormatList(results, lang)
		kb = mosqueListKeyboard(results, lang)
	}

	if progress != nil {
		r.edit(ctx, tg, chat, progress.ID, text, kb)
	} else {
		r.send(ctx, tg, chat, text, kb)
	}
}

func (r *Router) showMosqueList(ctx context.Context, tg sender, chat int64, msgID int, lang domain.Language) {
	results := r.sessions.Mosques(chat)
	if len(results) == 0 {
		r.showMainMenu(ctx, tg, chat, msgID, lang)
		return
	}

	r.edit(ctx, tg, chat, msgID, mosque.FormatList(results, lang), mosqueListKeyboard(results, lang))
}

func (r *Router) showMosqueDetail(ctx context.Context, tg sender, chat int64, msgID int, index int, lang domain.Language) {
	m, ok := r.sessions.MosqueAt(chat, index)
	if !ok {
		// Stale button from a previous search; fall back to whatever the
		// session still holds.
		r.showMosqueList(ctx, tg, chat, msgID, lang)
		return
	}

	r.edit(ctx, tg, chat, msgID, mosque.FormatDetail(m, lang), mosqueDetailKeyboard(lang))
}

func (r *Router) showCityWeather(ctx context.Context, tg sender, chat int64, msgID int, city string, lang domain.Language) {
	loading := fmt.Sprintf(i18n.Text(i18n.FeatureWeather, "loading_city", lang), city)
	r.edit(ctx, tg, chat, msgID, loading, nil)

	current, err := r.weather.ByCity(ctx, city)
	if err != nil {
		r.logger.WithFields(logging.Fields{
			"event": "weather_error",
			"city":  city,
		}).WithError(err).Error("failed to fetch weather")
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureWeather, "error", lang), retryKeyboard(lang, tokenWeatherCity))
		return
	}

	r.edit(ctx, tg, chat, msgID, weather.Format(current, lang), resultKeyboard(lang, tokenWeather))
}

func (r *Router) showLocationWeather(ctx context.Context, tg sender, chat int64, lat, lon float64, lang domain.Language) {
	progress := r.send(ctx, tg, chat, i18n.Text(i18n.FeatureWeather, "loading_location", lang), nil)

	current, err := r.weather.ByLocation(ctx, lat, lon)

	var text string
	var kb *models.InlineKeyboardMarkup
	if err != nil {
		r.logger.WithField("event", "weather_error").WithError(err).Error("failed to fetch weather by location")
		text = i18n.Text(i18n.FeatureWeather, "error", lang)
		kb = retryKeyboard(lang, tokenWeatherLocation)
	} else {
		text = weather.Format(current, lang)
		kb = resultKeyboard(lang, tokenWeather)
	}

	if progress != nil {
		r.edit(ctx, tg, chat, progress.ID, text, kb)
	} else {
		r.send(ctx, tg, chat, text, kb)
	}
}

func (r *Router) handleImage(ctx context.Context, tg sender, msg *models.Message, lang domain.Language) {
	chat := msg.Chat.ID

	if !r.sessions.TakeAwaitingImage(chat) {
		r.send(ctx, tg, chat, i18n.Text(i18n.FeatureConvert, "photo_hint", lang), nil)
		return
	}

	fileID, ok := imageFileID(msg)
	if !ok {
		r.send(ctx, tg, chat, i18n.Text(i18n.FeatureConvert, "not_image", lang), nil)
		return
	}

	progress := r.send(ctx, tg, chat, i18n.Text(i18n.FeatureConvert, "processing", lang), nil)

	fail := func(text string) {
		if progress != nil {
			r.edit(ctx, tg, chat, progress.ID, text, nil)
		} else {
			r.send(ctx, tg, chat, text, nil)
		}
	}

	data, err := r.download(ctx, tg, fileID)
	if err != nil {
		r.logger.WithField("event", "file_download_error").WithError(err).Error("failed to download image")
		fail(i18n.Text(i18n.FeatureCommon, "error", lang))
		return
	}

	pdf, err := r.convert(data)
	if err != nil {
		if errors.Is(err, imagepdf.ErrUnreadableImage) {
			fail(i18n.Text(i18n.FeatureConvert, "unreadable", lang))
		} else {
			r.logger.WithField("event", "convert_error").WithError(err).Error("image conversion failed")
			fail(i18n.Text(i18n.FeatureCommon, "error", lang))
		}
		return
	}

	if progress != nil {
		if _, err := tg.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chat, MessageID: progress.ID}); err != nil {
			r.logger.WithField("event", "delete_error").WithError(err).Warn("failed to delete progress message")
		}
	}

	filename := fmt.Sprintf("image_%d.pdf", userID(msg.From))
	if _, err := tg.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   chat,
		Document: &models.InputFileUpload{Filename: filename, Data: bytes.NewReader(pdf)},
		Caption:  i18n.Text(i18n.FeatureConvert, "done", lang),
	}); err != nil {
		r.logger.WithField("event", "document_send_error").WithError(err).Error("failed to send pdf document")
		fail(i18n.Text(i18n.FeatureCommon, "error", lang))
		return
	}

	r.send(ctx, tg, chat, i18n.Text(i18n.FeatureConvert, "again", lang), nil)
}

// imageFileID picks the file to convert: the largest photo size, or a document
// with an image mime type.
func imageFileID(msg *models.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}

	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}

	return "", false
}

func (r *Router) download(ctx context.Context, tg sender, fileID string) ([]byte, error) {
	file, err := tg.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("resolve file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tg.FileDownloadLink(file), nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := r.downloads.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func formatPlaceholder(token string, lang domain.Language) string {
	return fmt.Sprintf(i18n.Text(i18n.FeatureCommon, "placeholder", lang), token)
}
