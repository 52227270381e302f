package weather

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownRegion reports a forecast request for a region outside the
// registry.
var ErrUnknownRegion = errors.New("unknown region")

// regions maps the region names shown on the dashboard to the city query the
// weather API understands.
var regions = map[string]string{
	"Toshkent":         "Tashkent",
	"Samarqand":        "Samarkand",
	"Buxoro":           "Bukhara",
	"Farg'ona":         "Fergana",
	"Andijon":          "Andijan",
	"Namangan":         "Namangan",
	"Navoiy":           "Navoi",
	"Xorazm":           "Urgench",
	"Qashqadaryo":      "Karshi",
	"Surxondaryo":      "Termez",
	"Jizzax":           "Jizzakh",
	"Sirdaryo":         "Gulistan",
	"Qoraqalpog'iston": "Nukus",
}

// Regions lists the supported region names in sorted order.
func Regions() []string {
	out := make([]string, 0, len(regions))
	for name := range regions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// cityQuery resolves a region name (case-insensitively) to its API city query.
func cityQuery(region string) (string, error) {
	for name, city := range regions {
		if strings.EqualFold(name, region) {
			return city, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, region)
}
