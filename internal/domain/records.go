package domain

// PrayerTimes carries one day of prayer times for a region. All clock values
// are HH:MM strings as delivered by the provider; Weekday is the English name
// and is localized at formatting time.
type PrayerTimes struct {
	Region    string
	Date      string
	Weekday   string
	HijriDate string
	Fajr      string
	Sunrise   string
	Dhuhr     string
	Asr       string
	Maghrib   string
	Isha      string
}

// FastingTimes carries the two fasting boundaries for a region: Suhoor equals
// the Fajr time, Iftar equals the Maghrib time.
type FastingTimes struct {
	Region    string
	Date      string
	Weekday   string
	HijriDate string
	Suhoor    string
	Iftar     string
}

// Mosque is a single nearby-mosque search result. DistanceMeters is rounded;
// Address is empty when the provider supplied none.
type Mosque struct {
	Name           string
	Lat            float64
	Lon            float64
	DistanceMeters int
	Address        string
}

// Weather is the current-weather snapshot for a location.
type Weather struct {
	Location    string
	Temperature int
	FeelsLike   int
	Humidity    int
	WindSpeed   float64
	Pressure    int
	Condition   string
	Icon        string
	Sunrise     string
	Sunset      string
}
