package weather

import "sort"

// cityCodes maps supported city names to the provider's numeric city codes.
var cityCodes = map[string]string{
	"北京": "101010100",
	"上海": "101020100",
	"广州": "101280101",
	"深圳": "101280601",
	"杭州": "101210101",
	"成都": "101270101",
	"重庆": "101040100",
}

// CityCode returns the provider code for city.
func CityCode(city string) (string, bool) {
	code, ok := cityCodes[city]
	return code, ok
}

// SupportedCities returns the supported city names in a stable order.
func SupportedCities() []string {
	names := make([]string, 0, len(cityCodes))
	for name := range cityCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
