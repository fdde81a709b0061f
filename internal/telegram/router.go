package telegram

import (
	"context"
	"net/http"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/i18n"
	"taqvim_bot/internal/logging"
	"taqvim_bot/internal/session"
)

const downloadTimeout = 30 * time.Second

// sender is the slice of the Telegram bot API the handlers call; *bot.Bot
// satisfies it, and tests substitute a fake.
type sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
	GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
}

// PrayerProvider fetches prayer and fasting times for a region.
type PrayerProvider interface {
	Times(ctx context.Context, region string) (domain.PrayerTimes, error)
	FastingTimes(ctx context.Context, region string) (domain.FastingTimes, error)
}

// MosqueSearcher finds mosques around a coordinate, nearest first.
type MosqueSearcher interface {
	Search(ctx context.Context, lat, lon float64) []domain.Mosque
}

// WeatherProvider fetches the current weather by city or coordinates.
type WeatherProvider interface {
	ByCity(ctx context.Context, city string) (domain.Weather, error)
	ByLocation(ctx context.Context, lat, lon float64) (domain.Weather, error)
}

// Router owns per-chat session state and dispatches updates to the feature
// handlers.
type Router struct {
	sessions  *session.Store
	prayer    PrayerProvider
	mosques   MosqueSearcher
	weather   WeatherProvider
	convert   func(data []byte) ([]byte, error)
	downloads *http.Client
	logger    *logrus.Entry
}

// NewRouter wires the feature clients into a router with a fresh session
// store.
func NewRouter(prayer PrayerProvider, mosques MosqueSearcher, weather WeatherProvider, convert func([]byte) ([]byte, error), logger *logrus.Entry) *Router {
	if logger == nil {
		logger = logging.Logger()
	}

	return &Router{
		sessions:  session.NewStore(),
		prayer:    prayer,
		mosques:   mosques,
		weather:   weather,
		convert:   convert,
		downloads: &http.Client{Timeout: downloadTimeout},
		logger:    logger,
	}
}

func (r *Router) dispatch(ctx context.Context, tg sender, update *models.Update) {
	switch {
	case update.CallbackQuery != nil:
		r.handleCallback(ctx, tg, update.CallbackQuery)
	case update.Message != nil:
		r.handleMessage(ctx, tg, update.Message)
	}
}

func (r *Router) handleMessage(ctx context.Context, tg sender, msg *models.Message) {
	chat := msg.Chat.ID
	lang := r.sessions.Language(chat)

	switch {
	case msg.Location != nil:
		r.handleLocation(ctx, tg, msg, lang)
	case len(msg.Photo) > 0 || msg.Document != nil:
		r.handleImage(ctx, tg, msg, lang)
	case msg.Text == "/start":
		r.showLanguagePicker(ctx, tg, chat)
	case msg.Text != "":
		r.send(ctx, tg, chat, i18n.Text(i18n.FeatureCommon, "choose_button", lang), nil)
	}
}

func (r *Router) handleCallback(ctx context.Context, tg sender, query *models.CallbackQuery) {
	if _, err := tg.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
	}); err != nil {
		r.logger.WithField("event", "callback_answer_error").WithError(err).Warn("failed to answer callback query")
	}

	chat := messageChatID(query.Message)
	msgID := callbackMessageID(query.Message)
	if chat == 0 || msgID == 0 {
		return
	}

	parsed := parseIntent(query.Data)
	lang := r.sessions.Language(chat)

	switch parsed.kind {
	case intentSelectLanguage:
		r.sessions.SetLanguage(chat, parsed.lang)
		r.showMainMenu(ctx, tg, chat, msgID, parsed.lang)
	case intentChangeLanguage:
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureLanguage, "choose", lang), languageKeyboard())
	case intentMainMenu:
		r.showMainMenu(ctx, tg, chat, msgID, lang)
	case intentPrayerMenu:
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureMenu, "region_title", lang), regionKeyboard(lang, tokenRegionPrefix))
	case intentPrayerRegion:
		r.showPrayerTimes(ctx, tg, chat, msgID, parsed.arg, lang)
	case intentFastingMenu:
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureMenu, "region_title", lang), regionKeyboard(lang, tokenFastingPrefix))
	case intentFastingRegion:
		r.showFastingTimes(ctx, tg, chat, msgID, parsed.arg, lang)
	case intentMosquePrompt:
		r.promptMosqueLocation(ctx, tg, chat, msgID, lang)
	case intentMosqueDetail:
		r.showMosqueDetail(ctx, tg, chat, msgID, parsed.index, lang)
	case intentMosqueBack:
		r.showMosqueList(ctx, tg, chat, msgID, lang)
	case intentWeatherMenu:
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureWeather, "menu_title", lang), weatherMenuKeyboard(lang))
	case intentWeatherCityMenu:
		r.edit(ctx, tg, chat, msgID, i18n.Text(i18n.FeatureWeather, "city_title", lang), weatherCityKeyboard(lang))
	case intentWeatherCity:
		r.showCityWeather(ctx, tg, chat, msgID, parsed.arg, lang)
	case intentWeatherLocation:
		r.promptWeatherLocation(ctx, tg, chat, msgID, lang)
	case intentConvertIntro:
		r.showConvertIntro(ctx, tg, chat, msgID, lang)
	default:
		r.logger.WithFields(logging.Fields{
			"event": "callback_unknown",
			"data":  query.Data,
		}).Warn("unknown callback token")
		r.send(ctx, tg, chat, formatPlaceholder(query.Data, lang), nil)
	}
}

func callbackMessageID(msg models.MaybeInaccessibleMessage) int {
	switch msg.Type {
	case models.MaybeInaccessibleMessageTypeMessage:
		if msg.Message == nil {
			return 0
		}
		return msg.Message.ID
	case models.MaybeInaccessibleMessageTypeInaccessibleMessage:
		if msg.InaccessibleMessage == nil {
			return 0
		}
		return msg.InaccessibleMessage.MessageID
	default:
		return 0
	}
}
