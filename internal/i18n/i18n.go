// Package i18n holds every localized display string behind a single
// (feature, field, language) lookup. The per-feature formatter packages and
// the telegram handlers read from here instead of carrying their own tables.
package i18n

import "taqvim_bot/internal/domain"

// Feature names used as the first lookup component.
const (
	FeatureCommon   = "common"
	FeatureMenu     = "menu"
	FeatureLanguage = "language"
	FeaturePrayer   = "prayer"
	FeatureFasting  = "fasting"
	FeatureMosque   = "mosque"
	FeatureWeather  = "weather"
	FeatureConvert  = "convert"
)

type key struct {
	feature string
	field   string
}

type entry map[domain.Language]string

// Text returns the string for (feature, field) in the requested language.
// Missing languages fall back to the default language; unknown keys yield "".
func Text(feature, field string, lang domain.Language) string {
	values, ok := table[key{feature, field}]
	if !ok {
		return ""
	}

	if s, ok := values[lang]; ok {
		return s
	}

	return values[domain.DefaultLanguage]
}

// WeekdayName localizes an English weekday name delivered by the prayer-times
// provider. English passes through; a language without a weekday table falls
// back to the default language; unknown names pass through as-is.
func WeekdayName(english string, lang domain.Language) string {
	weekdays, ok := weekdayTables[lang]
	if !ok {
		if lang == domain.LangEnglish {
			return english
		}
		weekdays = weekdayTables[domain.DefaultLanguage]
	}

	if name, ok := weekdays[english]; ok {
		return name
	}

	return english
}

var weekdayTables = map[domain.Language]map[string]string{
	domain.LangUzLatin: {
		"Monday": "Dushanba", "Tuesday": "Seshanba", "Wednesday": "Chorshanba",
		"Thursday": "Payshanba", "Friday": "Juma", "Saturday": "Shanba", "Sunday": "Yakshanba",
	},
	domain.LangUzKiril: {
		"Monday": "Душанба", "Tuesday": "Сешанба", "Wednesday": "Чоршанба",
		"Thursday": "Пайшанба", "Friday": "Жума", "Saturday": "Шанба", "Sunday": "Якшанба",
	},
}

var table = map[key]entry{
	// Common.
	{FeatureCommon, "error"}: {
		domain.LangUzLatin: "❌ Xatolik yuz berdi. Qaytadan urinib ko'ring.",
		domain.LangUzKiril: "❌ Хатолик юз берди. Қайтадан уриниб кўринг.",
		domain.LangEnglish: "❌ An error occurred. Please try again.",
	},
	{FeatureCommon, "placeholder"}: {
		domain.LangUzLatin: "✅ %s tanlandi\n⏳ Bu funksiya tayyorlanmoqda...",
		domain.LangUzKiril: "✅ %s танланди\n⏳ Бу функция тайёрланмоқда...",
		domain.LangEnglish: "✅ %s selected\n⏳ This function is being prepared...",
	},
	{FeatureCommon, "choose_button"}: {
		domain.LangUzLatin: "Iltimos, quyidagi tugmalardan birini tanlang:",
		domain.LangUzKiril: "Илтимос, қуйидаги тугмалардан бирини танланг:",
		domain.LangEnglish: "Please choose one of the buttons below:",
	},

	// Main menu.
	{FeatureMenu, "welcome"}: {
		domain.LangUzLatin: "Assalomu alaykum! 👋",
		domain.LangUzKiril: "Ассалому алайкум! 👋",
		domain.LangEnglish: "Hello! 👋",
	},
	{FeatureMenu, "choose"}: {
		domain.LangUzLatin: "Tanlang:",
		domain.LangUzKiril: "Танланг:",
		domain.LangEnglish: "Choose:",
	},
	{FeatureMenu, "prayer"}: {
		domain.LangUzLatin: "🕌 Namoz vaqtlari",
		domain.LangUzKiril: "🕌 Намоз вақтлари",
		domain.LangEnglish: "🕌 Prayer times",
	},
	{FeatureMenu, "fasting"}: {
		domain.LangUzLatin: "🌙 Roza vaqtlari",
		domain.LangUzKiril: "🌙 Роза вақтлари",
		domain.LangEnglish: "🌙 Fasting times",
	},
	{FeatureMenu, "mosque"}: {
		domain.LangUzLatin: "📍 Eng yaqin masjid",
		domain.LangUzKiril: "📍 Энг яқин масжид",
		domain.LangEnglish: "📍 Nearest mosque",
	},
	{FeatureMenu, "convert"}: {
		domain.LangUzLatin: "📸 Rasm → PDF",
		domain.LangUzKiril: "📸 Расм → PDF",
		domain.LangEnglish: "📸 Image → PDF",
	},
	{FeatureMenu, "weather"}: {
		domain.LangUzLatin: "🌤 Ob-havo",
		domain.LangUzKiril: "🌤 Об-ҳаво",
		domain.LangEnglish: "🌤 Weather",
	},
	{FeatureMenu, "back_main"}: {
		domain.LangUzLatin: "🔙 Asosiy menyu",
		domain.LangUzKiril: "🔙 Асосий меню",
		domain.LangEnglish: "🔙 Main menu",
	},
	{FeatureMenu, "back"}: {
		domain.LangUzLatin: "🔙 Ortga",
		domain.LangUzKiril: "🔙 Ортга",
		domain.LangEnglish: "🔙 Back",
	},
	{FeatureMenu, "retry"}: {
		domain.LangUzLatin: "🔄 Qaytadan",
		domain.LangUzKiril: "🔄 Қайтадан",
		domain.LangEnglish: "🔄 Try again",
	},
	{FeatureMenu, "region_title"}: {
		domain.LangUzLatin: "🌍 Viloyatni tanlang:",
		domain.LangUzKiril: "🌍 Вилоятни танланг:",
		domain.LangEnglish: "🌍 Choose region:",
	},

	// Language selection. The picker title is shown before a language exists,
	// so every variant carries the same text.
	{FeatureLanguage, "choose"}: {
		domain.LangUzLatin: "🌐 Tilni tanlang:",
		domain.LangUzKiril: "🌐 Тилни танланг:",
		domain.LangEnglish: "🌐 Choose language:",
	},
	{FeatureLanguage, "button"}: {
		domain.LangUzLatin: "🌐 Til",
		domain.LangUzKiril: "🌐 Тил",
		domain.LangEnglish: "🌐 Language",
	},

	// Prayer times.
	{FeaturePrayer, "loading"}: {
		domain.LangUzLatin: "⏳ %s uchun namoz vaqtlari olinmoqda...",
		domain.LangUzKiril: "⏳ %s учун намоз вақтлари олинмоқда...",
		domain.LangEnglish: "⏳ Getting prayer times for %s...",
	},
	{FeaturePrayer, "error"}: {
		domain.LangUzLatin: "❌ Namoz vaqtlarini olishda xatolik yuz berdi.",
		domain.LangUzKiril: "❌ Намоз вақтларини олишда хато юз берди.",
		domain.LangEnglish: "❌ Error getting prayer times.",
	},
	{FeaturePrayer, "title"}: {
		domain.LangUzLatin: "🕌 %s namoz vaqtlari",
		domain.LangUzKiril: "🕌 %s намоз вақтлари",
		domain.LangEnglish: "🕌 %s prayer times",
	},
	{FeaturePrayer, "date"}: {
		domain.LangUzLatin: "📅 Sana",
		domain.LangUzKiril: "📅 Сана",
		domain.LangEnglish: "📅 Date",
	},
	{FeaturePrayer, "hijri"}: {
		domain.LangUzLatin: "📆 Hijriy",
		domain.LangUzKiril: "📆 Ҳижрий",
		domain.LangEnglish: "📆 Hijri",
	},
	{FeaturePrayer, "fajr"}: {
		domain.LangUzLatin: "🌅 Bomdod",
		domain.LangUzKiril: "🌅 Бомдод",
		domain.LangEnglish: "🌅 Fajr",
	},
	{FeaturePrayer, "sunrise"}: {
		domain.LangUzLatin: "☀️ Quyosh",
		domain.LangUzKiril: "☀️ Қуёш",
		domain.LangEnglish: "☀️ Sunrise",
	},
	{FeaturePrayer, "dhuhr"}: {
		domain.LangUzLatin: "🌤 Peshin",
		domain.LangUzKiril: "🌤 Пешин",
		domain.LangEnglish: "🌤 Dhuhr",
	},
	{FeaturePrayer, "asr"}: {
		domain.LangUzLatin: "🌥 Asr",
		domain.LangUzKiril: "🌥 Аср",
		domain.LangEnglish: "🌥 Asr",
	},
	{FeaturePrayer, "maghrib"}: {
		domain.LangUzLatin: "🌇 Shom",
		domain.LangUzKiril: "🌇 Шом",
		domain.LangEnglish: "🌇 Maghrib",
	},
	{FeaturePrayer, "isha"}: {
		domain.LangUzLatin: "🌃 Xufton",
		domain.LangUzKiril: "🌃 Хуфтон",
		domain.LangEnglish: "🌃 Isha",
	},
	{FeaturePrayer, "footer"}: {
		domain.LangUzLatin: "⏱ Toshkent vaqti bilan",
		domain.LangUzKiril: "⏱ Тошкент вақти билан",
		domain.LangEnglish: "⏱ Tashkent time",
	},
	{FeaturePrayer, "accuracy"}: {
		domain.LangUzLatin: "⚠️ +- 1 daqiqa aniqlikda",
		domain.LangUzKiril: "⚠️ +- 1 дақиқа аниқликда",
		domain.LangEnglish: "⚠️ +- 1 minute accuracy",
	},

	// Fasting times.
	{FeatureFasting, "loading"}: {
		domain.LangUzLatin: "⏳ %s uchun roza vaqtlari olinmoqda...",
		domain.LangUzKiril: "⏳ %s учун роза вақтлари олинмоқда...",
		domain.LangEnglish: "⏳ Getting fasting times for %s...",
	},
	{FeatureFasting, "error"}: {
		domain.LangUzLatin: "❌ Roza vaqtlarini olishda xatolik.",
		domain.LangUzKiril: "❌ Роза вақтларини олишда хатолик.",
		domain.LangEnglish: "❌ Error getting fasting times.",
	},
	{FeatureFasting, "title"}: {
		domain.LangUzLatin: "🌙 %s roza vaqtlari",
		domain.LangUzKiril: "🌙 %s роза вақтлари",
		domain.LangEnglish: "🌙 %s fasting times",
	},
	{FeatureFasting, "suhoor"}: {
		domain.LangUzLatin: "🌅 Saharlik (og'iz yopish)",
		domain.LangUzKiril: "🌅 Саҳарлик (оғиз ёпиш)",
		domain.LangEnglish: "🌅 Suhoor (fast starts)",
	},
	{FeatureFasting, "iftar"}: {
		domain.LangUzLatin: "🌇 Iftorlik (og'iz ochish)",
		domain.LangUzKiril: "🌇 Ифторлик (оғиз очиш)",
		domain.LangEnglish: "🌇 Iftar (fast breaks)",
	},
	{FeatureFasting, "suhoor_dua"}: {
		domain.LangUzLatin: "🤲 <b>Saharlik duosi:</b>\n\n" +
			"Navaytu an asuma sovma shahri Ramazona minal fajri ilal mag'ribi, " +
			"xolisan lillahi ta'ala. Allohu akbar.\n\n" +
			"Навайту ан асума совма шаҳри Рамазона минал фажри илал мағриби, " +
			"холисан лиллаҳи таъала. Аллоҳу акбар.",
		domain.LangUzKiril: "🤲 <b>Саҳарлик дуоси:</b>\n\n" +
			"Навайту ан асума совма шаҳри Рамазона минал фажри илал мағриби, " +
			"холисан лиллаҳи таъала. Аллоҳу акбар.\n\n" +
			"Navaytu an asuma sovma shahri Ramazona minal fajri ilal mag'ribi, " +
			"xolisan lillahi ta'ala. Allohu akbar.",
		domain.LangEnglish: "🤲 <b>Suhoor Dua:</b>\n\n" +
			"I intend to keep the fast for tomorrow in the month of Ramadan, " +
			"sincerely for Allah. Allahu Akbar.",
	},
	{FeatureFasting, "iftar_dua"}: {
		domain.LangUzLatin: "🤲 <b>Iftorlik duosi:</b>\n\n" +
			"Allohumma laka sumtu va bika amantu va 'alayka tavakkaltu " +
			"va 'ala rizqika aftartu, fag'firli ma qoddamtu va ma axxortu.\n\n" +
			"Аллоҳумма лака сумту ва бика аманту ва ъалайка таваккалту " +
			"ва ъала ризқика афтарту, фағфирли ма қоддамту ва ма аххорту.",
		domain.LangUzKiril: "🤲 <b>Ифторлик дуоси:</b>\n\n" +
			"Аллоҳумма лака сумту ва бика аманту ва ъалайка таваккалту " +
			"ва ъала ризқика афтарту, фағфирли ма қоддамту ва ма аххорту.\n\n" +
			"Allohumma laka sumtu va bika amantu va 'alayka tavakkaltu " +
			"va 'ala rizqika aftartu, fag'firli ma qoddamtu va ma axxortu.",
		domain.LangEnglish: "🤲 <b>Iftar Dua:</b>\n\n" +
			"O Allah, I fasted for You and I believe in You and I put my trust in You " +
			"and I break my fast with Your sustenance. Forgive me my past and future sins.",
	},
	{FeatureFasting, "blessing"}: {
		domain.LangUzLatin: "🤲 Ro'zangiz qabul bo'lsin!",
		domain.LangUzKiril: "🤲 Рўзангиз қабул бўлсин!",
		domain.LangEnglish: "🤲 May your fast be accepted!",
	},

	// Mosque search.
	{FeatureMosque, "prompt"}: {
		domain.LangUzLatin: "📍 <b>Joylashuvingizni yuboring</b>\n\n📎 → Joylashuv → Yuborish",
		domain.LangUzKiril: "📍 <b>Жойлашувингизни юборинг</b>\n\n📎 → Жойлашув → Юбориш",
		domain.LangEnglish: "📍 <b>Send your location</b>\n\n📎 → Location → Send",
	},
	{FeatureMosque, "searching"}: {
		domain.LangUzLatin: "⏳ Atrofingizdagi masjidlar qidirilmoqda...",
		domain.LangUzKiril: "⏳ Атрофингиздаги масжидлар қидирилмоқда...",
		domain.LangEnglish: "⏳ Searching for nearby mosques...",
	},
	{FeatureMosque, "none_found"}: {
		domain.LangUzLatin: "❌ Atrofingizda masjid topilmadi.\nBoshqa joylashuv yuborib ko'ring.",
		domain.LangUzKiril: "❌ Атрофингизда масжид топилмади.\nБошқа жойлашув юбориб кўринг.",
		domain.LangEnglish: "❌ No mosques found nearby.\nTry another location.",
	},
	{FeatureMosque, "list_title"}: {
		domain.LangUzLatin: "🕌 <b>Eng yaqin masjidlar:</b>",
		domain.LangUzKiril: "🕌 <b>Энг яқин масжидлар:</b>",
		domain.LangEnglish: "🕌 <b>Nearest mosques:</b>",
	},
	{FeatureMosque, "list_hint"}: {
		domain.LangUzLatin: "📍 Batafsil ma'lumot uchun masjid nomini bosing.",
		domain.LangUzKiril: "📍 Батафсил маълумот учун масжид номини босинг.",
		domain.LangEnglish: "📍 Click on a mosque name for details.",
	},
	{FeatureMosque, "search_again"}: {
		domain.LangUzLatin: "🔄 Qaytadan qidirish",
		domain.LangUzKiril: "🔄 Қайтадан қидириш",
		domain.LangEnglish: "🔄 Search again",
	},
	{FeatureMosque, "address"}: {
		domain.LangUzLatin: "📍 <b>Manzil:</b>",
		domain.LangUzKiril: "📍 <b>Манзил:</b>",
		domain.LangEnglish: "📍 <b>Address:</b>",
	},
	{FeatureMosque, "distance"}: {
		domain.LangUzLatin: "📏 <b>Masofa:</b>",
		domain.LangUzKiril: "📏 <b>Масофа:</b>",
		domain.LangEnglish: "📏 <b>Distance:</b>",
	},
	{FeatureMosque, "directions"}: {
		domain.LangUzLatin: "Google Maps orqali yo'nalish",
		domain.LangUzKiril: "Google Maps орқали йўналиш",
		domain.LangEnglish: "Get directions on Google Maps",
	},
	{FeatureMosque, "no_address"}: {
		domain.LangUzLatin: "Manzil mavjud emas",
		domain.LangUzKiril: "Манзил мавжуд эмас",
		domain.LangEnglish: "No address available",
	},
	{FeatureMosque, "placeholder_name"}: {
		domain.LangUzLatin: "🏢 Masjid",
		domain.LangUzKiril: "🏢 Масжид",
		domain.LangEnglish: "🏢 Mosque",
	},
	{FeatureMosque, "location_hint"}: {
		domain.LangUzLatin: "📍 Masjid qidirish funksiyasidan foydalanish uchun menyudan tanlang!",
		domain.LangUzKiril: "📍 Масжид қидириш функсиясидан фойдаланиш учун менюдан танланг!",
		domain.LangEnglish: "📍 To find nearby mosques, select from menu!",
	},

	// Weather.
	{FeatureWeather, "menu_title"}: {
		domain.LangUzLatin: "🌤 Ob-havo ma'lumoti",
		domain.LangUzKiril: "🌤 Об-ҳаво маълумоти",
		domain.LangEnglish: "🌤 Weather info",
	},
	{FeatureWeather, "city_button"}: {
		domain.LangUzLatin: "🏙 Shahar tanlash",
		domain.LangUzKiril: "🏙 Шаҳар танлаш",
		domain.LangEnglish: "🏙 Choose city",
	},
	{FeatureWeather, "location_button"}: {
		domain.LangUzLatin: "📍 Lokatsiya yuborish",
		domain.LangUzKiril: "📍 Локатсия юбориш",
		domain.LangEnglish: "📍 Send location",
	},
	{FeatureWeather, "city_title"}: {
		domain.LangUzLatin: "🌍 Shahar tanlang:",
		domain.LangUzKiril: "🌍 Шаҳар танланг:",
		domain.LangEnglish: "🌍 Choose city:",
	},
	{FeatureWeather, "location_prompt"}: {
		domain.LangUzLatin: "📍 Iltimos, joylashuvingizni yuboring\n\n📎 → Joylashuv → Yuborish",
		domain.LangUzKiril: "📍 Илтимос, жойлашувингизни юборинг\n\n📎 → Жойлашув → Юбориш",
		domain.LangEnglish: "📍 Please send your location\n\n📎 → Location → Send",
	},
	{FeatureWeather, "loading_city"}: {
		domain.LangUzLatin: "⏳ %s ob-havosi olinmoqda...",
		domain.LangUzKiril: "⏳ %s об-ҳавоси олинмоқда...",
		domain.LangEnglish: "⏳ Getting weather for %s...",
	},
	{FeatureWeather, "loading_location"}: {
		domain.LangUzLatin: "⏳ Joylashuvingiz bo'yicha ob-havo olinmoqda...",
		domain.LangUzKiril: "⏳ Жойлашувингиз бўйича об-ҳаво олинмоқда...",
		domain.LangEnglish: "⏳ Getting weather for your location...",
	},
	{FeatureWeather, "error"}: {
		domain.LangUzLatin: "❌ Ob-havo ma'lumotlarini olishda xatolik.",
		domain.LangUzKiril: "❌ Об-ҳаво маълумотларини олишда хато.",
		domain.LangEnglish: "❌ Error getting weather data.",
	},
	{FeatureWeather, "title"}: {
		domain.LangUzLatin: "🌤 %s ob-havo %s",
		domain.LangUzKiril: "🌤 %s об-ҳаво %s",
		domain.LangEnglish: "🌤 %s weather %s",
	},
	{FeatureWeather, "condition"}: {
		domain.LangUzLatin: "📋 Holat",
		domain.LangUzKiril: "📋 Ҳолат",
		domain.LangEnglish: "📋 Condition",
	},
	{FeatureWeather, "temperature"}: {
		domain.LangUzLatin: "🌡 Harorat",
		domain.LangUzKiril: "🌡 Ҳарорат",
		domain.LangEnglish: "🌡 Temperature",
	},
	{FeatureWeather, "feels_like"}: {
		domain.LangUzLatin: "🤔 His qilinadi",
		domain.LangUzKiril: "🤔 Ҳис қилинади",
		domain.LangEnglish: "🤔 Feels like",
	},
	{FeatureWeather, "humidity"}: {
		domain.LangUzLatin: "💧 Namlik",
		domain.LangUzKiril: "💧 Намлик",
		domain.LangEnglish: "💧 Humidity",
	},
	{FeatureWeather, "wind"}: {
		domain.LangUzLatin: "💨 Shamol",
		domain.LangUzKiril: "💨 Шамол",
		domain.LangEnglish: "💨 Wind",
	},
	{FeatureWeather, "pressure"}: {
		domain.LangUzLatin: "📊 Bosim",
		domain.LangUzKiril: "📊 Босим",
		domain.LangEnglish: "📊 Pressure",
	},
	{FeatureWeather, "sunrise"}: {
		domain.LangUzLatin: "☀️ Quyosh chiqish",
		domain.LangUzKiril: "☀️ Қуёш чиқиш",
		domain.LangEnglish: "☀️ Sunrise",
	},
	{FeatureWeather, "sunset"}: {
		domain.LangUzLatin: "☀️ Quyosh botish",
		domain.LangUzKiril: "☀️ Қуёш ботиш",
		domain.LangEnglish: "☀️ Sunset",
	},

	// Image → PDF.
	{FeatureConvert, "intro"}: {
		domain.LangUzLatin: "📸 <b>Rasmni PDF ga aylantirish</b>\n\n" +
			"Menga rasm yuboring, men uni PDF ga o'giraman.\n\n" +
			"📌 Qabul qilinadigan formatlar: JPG, PNG, BMP, WEBP\n\n" +
			"👉 Rasm yuboring:",
		domain.LangUzKiril: "📸 <b>Расмни PDF га айлантириш</b>\n\n" +
			"Менга расм юборинг, мен уни PDF га ўгираман.\n\n" +
			"📌 Қабул қилинадиган форматлар: JPG, PNG, BMP, WEBP\n\n" +
			"👉 Расм юборинг:",
		domain.LangEnglish: "📸 <b>Image to PDF converter</b>\n\n" +
			"Send me an image, I'll convert it to PDF.\n\n" +
			"📌 Supported formats: JPG, PNG, BMP, WEBP\n\n" +
			"👉 Send an image:",
	},
	{FeatureConvert, "processing"}: {
		domain.LangUzLatin: "🔄 Rasm qayta ishlanmoqda...",
		domain.LangUzKiril: "🔄 Расм қайта ишланмоқда...",
		domain.LangEnglish: "🔄 Processing image...",
	},
	{FeatureConvert, "not_image"}: {
		domain.LangUzLatin: "❌ Bu rasm formati emas! JPG, PNG, BMP yuboring.",
		domain.LangUzKiril: "❌ Бу расм формати эмас! JPG, PNG, BMP юборинг.",
		domain.LangEnglish: "❌ This is not an image! Send JPG, PNG, BMP.",
	},
	{FeatureConvert, "unreadable"}: {
		domain.LangUzLatin: "❌ Rasmni o'qib bo'lmadi. Boshqa rasm yuboring.",
		domain.LangUzKiril: "❌ Расмни ўқиб бўлмади. Бошқа расм юборинг.",
		domain.LangEnglish: "❌ Could not read image. Send another one.",
	},
	{FeatureConvert, "done"}: {
		domain.LangUzLatin: "✅ PDF ga aylantirildi!",
		domain.LangUzKiril: "✅ PDF га айлантирилди!",
		domain.LangEnglish: "✅ Converted to PDF!",
	},
	{FeatureConvert, "again"}: {
		domain.LangUzLatin: "📸 Yana rasm yuborishingiz mumkin (yoki /start bosing)",
		domain.LangUzKiril: "📸 Яна расм юборишингиз мумкин (ёки /start босинг)",
		domain.LangEnglish: "📸 You can send another image (or press /start)",
	},
	{FeatureConvert, "photo_hint"}: {
		domain.LangUzLatin: "📸 Rasm → PDF funksiyasidan foydalanish uchun menyudan tanlang!",
		domain.LangUzKiril: "📸 Расм → PDF функсиясидан фойдаланиш учун менюдан танланг!",
		domain.LangEnglish: "📸 To convert image to PDF, select from menu!",
	},
}
