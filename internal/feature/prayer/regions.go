package prayer

// Regions lists the fixed administrative regions offered in the menus, in
// presentation order.
var Regions = []string{
	"Toshkent", "Samarqand", "Buxoro", "Xiva", "Qarshi",
	"Namangan", "Andijon", "Farg'ona", "Jizzax", "Guliston",
	"Navoiy", "Urganch", "Termiz", "Nukus",
}

// apiCities maps local region names to the spellings the provider expects.
var apiCities = map[string]string{
	"Toshkent":  "Tashkent",
	"Samarqand": "Samarkand",
	"Buxoro":    "Bukhara",
	"Xiva":      "Khiva",
	"Qarshi":    "Karshi",
	"Namangan":  "Namangan",
	"Andijon":   "Andijan",
	"Farg'ona":  "Fergana",
	"Jizzax":    "Jizzakh",
	"Guliston":  "Gulistan",
	"Navoiy":    "Navoi",
	"Urganch":   "Urgench",
	"Termiz":    "Termez",
	"Nukus":     "Nukus",
}

const capitalCity = "Tashkent"

// APICity returns the provider spelling for a region name. Unknown names map
// to the capital so the lookup is total and the provider is never handed a
// name it rejects outright.
func APICity(region string) string {
	if city, ok := apiCities[region]; ok {
		return city
	}

	return capitalCity
}
