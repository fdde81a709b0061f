package telegram

import (
	"strconv"

	"github.com/go-telegram/bot/models"

	"taqvim_bot/internal/domain"
	"taqvim_bot/internal/feature/mosque"
	"taqvim_bot/internal/feature/prayer"
	"taqvim_bot/internal/i18n"
)

const regionButtonsPerRow = 3

var languageButtons = []struct {
	label string
	code  domain.Language
}{
	{"🇺🇿 O'zbek lotin", domain.LangUzLatin},
	{"🇺🇿 Ўзбек кирил", domain.LangUzKiril},
	{"🇬🇧 English", domain.LangEnglish},
}

func button(text, data string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: data}
}

func keyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func languageKeyboard() *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(languageButtons))
	for _, lb := range languageButtons {
		rows = append(rows, []models.InlineKeyboardButton{
			button(lb.label, tokenLangPrefix+string(lb.code)),
		})
	}

	return keyboard(rows...)
}

func mainMenuKeyboard(lang domain.Language) *models.InlineKeyboardMarkup {
	menu := func(field string) string {
		return i18n.Text(i18n.FeatureMenu, field, lang)
	}

	return keyboard(
		[]models.InlineKeyboardButton{
			button(menu("prayer"), tokenPrayer),
			button(menu("fasting"), tokenFasting),
		},
		[]models.InlineKeyboardButton{
			button(menu("mosque"), tokenMosque),
			button(menu("weather"), tokenWeather),
		},
		[]models.InlineKeyboardButton{
			button(menu("convert"), tokenConvert),
		},
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureLanguage, "button", lang), tokenChangeLanguage),
		},
	)
}

// regionKeyboard lays the regions out three per row and appends a row leading
// back to the main menu. The prefix selects between prayer and fasting tokens.
func regionKeyboard(lang domain.Language, prefix string) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(prayer.Regions)/regionButtonsPerRow+2)

	row := make([]models.InlineKeyboardButton, 0, regionButtonsPerRow)
	for _, region := range prayer.Regions {
		row = append(row, button(region, prefix+region))
		if len(row) == regionButtonsPerRow {
			rows = append(rows, row)
			row = make([]models.InlineKeyboardButton, 0, regionButtonsPerRow)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, backToMainRow(lang))

	return keyboard(rows...)
}

func weatherMenuKeyboard(lang domain.Language) *models.InlineKeyboardMarkup {
	return keyboard(
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureWeather, "city_button", lang), tokenWeatherCity),
		},
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureWeather, "location_button", lang), tokenWeatherLocation),
		},
		backToMainRow(lang),
	)
}

func weatherCityKeyboard(lang domain.Language) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(prayer.Regions)/regionButtonsPerRow+2)

	row := make([]models.InlineKeyboardButton, 0, regionButtonsPerRow)
	for _, city := range prayer.Regions {
		row = append(row, button(city, tokenWeatherCityPrefix+city))
		if len(row) == regionButtonsPerRow {
			rows = append(rows, row)
			row = make([]models.InlineKeyboardButton, 0, regionButtonsPerRow)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, []models.InlineKeyboardButton{
		button(i18n.Text(i18n.FeatureMenu, "back", lang), tokenWeather),
	})

	return keyboard(rows...)
}

func mosqueListKeyboard(mosques []domain.Mosque, lang domain.Language) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(mosques)+2)

	for i, m := range mosques {
		label := strconv.Itoa(i+1) + ". " + mosque.DisplayName(m, lang)
		rows = append(rows, []models.InlineKeyboardButton{
			button(label, tokenMosquePrefix+strconv.Itoa(i)),
		})
	}

	rows = append(rows,
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureMosque, "search_again", lang), tokenMosque),
		},
		backToMainRow(lang),
	)

	return keyboard(rows...)
}

func mosqueDetailKeyboard(lang domain.Language) *models.InlineKeyboardMarkup {
	return keyboard(
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureMenu, "back", lang), tokenMosqueBack),
		},
		backToMainRow(lang),
	)
}

// resultKeyboard follows a successful feature response: back to the feature
// menu plus the main menu.
func resultKeyboard(lang domain.Language, backToken string) *models.InlineKeyboardMarkup {
	return keyboard(
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureMenu, "back", lang), backToken),
		},
		backToMainRow(lang),
	)
}

func retrySearchKeyboard(lang domain.Language) *models.InlineKeyboardMarkup {
	return keyboard(
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureMosque, "search_again", lang), tokenMosque),
		},
		backToMainRow(lang),
	)
}

// retryKeyboard pairs a retry button carrying the given token with the main
// menu escape hatch; shown under provider error messages.
func retryKeyboard(lang domain.Language, retryToken string) *models.InlineKeyboardMarkup {
	return keyboard(
		[]models.InlineKeyboardButton{
			button(i18n.Text(i18n.FeatureMenu, "retry", lang), retryToken),
		},
		backToMainRow(lang),
	)
}

func backKeyboard(lang domain.Language) *models.InlineKeyboardMarkup {
	return keyboard(backToMainRow(lang))
}

func backToMainRow(lang domain.Language) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		button(i18n.Text(i18n.FeatureMenu, "back_main", lang), tokenMainMenu),
	}
}
