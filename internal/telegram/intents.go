package telegram

import (
	"strconv"
	"strings"

	"taqvim_bot/internal/domain"
)

// intent enumerates every callback action the bot understands. Unknown tokens
// map to intentUnknown and are answered with a placeholder.
type intent int

const (
	intentUnknown intent = iota
	intentSelectLanguage
	intentChangeLanguage
	intentPrayerMenu
	intentPrayerRegion
	intentFastingMenu
	intentFastingRegion
	intentMosquePrompt
	intentMosqueDetail
	intentMosqueBack
	intentWeatherMenu
	intentWeatherCityMenu
	intentWeatherCity
	intentWeatherLocation
	intentConvertIntro
	intentMainMenu
)

// Callback data tokens. Buttons carry these verbatim; parseIntent is the only
// place that interprets them.
const (
	tokenLangPrefix        = "lang_"
	tokenChangeLanguage    = "change_language"
	tokenPrayer            = "prayer"
	tokenRegionPrefix      = "region_"
	tokenFasting           = "fasting"
	tokenFastingPrefix     = "fasting_"
	tokenMosque            = "mosque"
	tokenMosquePrefix      = "mosque_"
	tokenMosqueBack        = "mosque_back"
	tokenWeather           = "weather"
	tokenWeatherCity       = "weather_city"
	tokenWeatherCityPrefix = "weather_city_"
	tokenWeatherLocation   = "weather_location"
	tokenConvert           = "convert"
	tokenMainMenu          = "main_menu"
)

// callbackIntent is a parsed callback token. arg carries the region, city, or
// language code for parameterized intents; index carries the mosque list slot.
type callbackIntent struct {
	kind  intent
	arg   string
	lang  domain.Language
	index int
}

// parseIntent maps a raw callback token onto the closed intent set. Exact
// tokens are matched before prefixed ones so that mosque_back never parses as
// a mosque list slot.
func parseIntent(token string) callbackIntent {
	switch token {
	case tokenChangeLanguage:
		return callbackIntent{kind: intentChangeLanguage}
	case tokenPrayer:
		return callbackIntent{kind: intentPrayerMenu}
	case tokenFasting:
		return callbackIntent{kind: intentFastingMenu}
	case tokenMosque:
		return callbackIntent{kind: intentMosquePrompt}
	case tokenMosqueBack:
		return callbackIntent{kind: intentMosqueBack}
	case tokenWeather:
		return callbackIntent{kind: intentWeatherMenu}
	case tokenWeatherCity:
		return callbackIntent{kind: intentWeatherCityMenu}
	case tokenWeatherLocation:
		return callbackIntent{kind: intentWeatherLocation}
	case tokenConvert:
		return callbackIntent{kind: intentConvertIntro}
	case tokenMainMenu:
		return callbackIntent{kind: intentMainMenu}
	}

	switch {
	case strings.HasPrefix(token, tokenLangPrefix):
		return callbackIntent{
			kind: intentSelectLanguage,
			lang: domain.ParseLanguage(strings.TrimPrefix(token, tokenLangPrefix)),
		}
	case strings.HasPrefix(token, tokenWeatherCityPrefix):
		return callbackIntent{
			kind: intentWeatherCity,
			arg:  strings.TrimPrefix(token, tokenWeatherCityPrefix),
		}
	case strings.HasPrefix(token, tokenRegionPrefix):
		return callbackIntent{
			kind: intentPrayerRegion,
			arg:  strings.TrimPrefix(token, tokenRegionPrefix),
		}
	case strings.HasPrefix(token, tokenFastingPrefix):
		return callbackIntent{
			kind: intentFastingRegion,
			arg:  strings.TrimPrefix(token, tokenFastingPrefix),
		}
	case strings.HasPrefix(token, tokenMosquePrefix):
		index, err := strconv.Atoi(strings.TrimPrefix(token, tokenMosquePrefix))
		if err != nil {
			return callbackIntent{kind: intentUnknown}
		}
		return callbackIntent{kind: intentMosqueDetail, index: index}
	}

	return callbackIntent{kind: intentUnknown}
}
