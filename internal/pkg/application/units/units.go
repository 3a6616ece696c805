// Package units maps free-text unit spellings, as found in standard name
// tables, to canonical QUDT unit URIs.
package units

import (
	"strings"
	"sync"
)

const QUDTUnitPrefix string = "http://qudt.org/vocab/unit/"

var (
	mu    sync.RWMutex
	table = map[string]string{}
)

func init() {
	for uri, spellings := range defaultSpellings {
		for _, s := range spellings {
			table[s] = QUDTUnitPrefix + uri
		}
		table[QUDTUnitPrefix+uri] = QUDTUnitPrefix + uri
	}
}

// defaultSpellings lists, per QUDT unit, the spellings used in CF and similar tables.
var defaultSpellings = map[string][]string{
	"UNITLESS":          {"1", "-", "dimensionless"},
	"PERCENT":           {"%", "percent"},
	"K":                 {"K", "kelvin", "degK"},
	"DEG_C":             {"degC", "degree_Celsius", "°C", "celsius"},
	"M":                 {"m", "meter", "metre"},
	"KiloM":             {"km"},
	"M2":                {"m2", "m^2", "m**2"},
	"M3":                {"m3", "m^3", "m**3"},
	"PER-M":             {"m-1", "m^-1", "m**-1", "1/m"},
	"PER-M2":            {"m-2", "m^-2", "m**-2", "1/m2", "1/m**2"},
	"PER-M3":            {"m-3", "m^-3", "m**-3", "1/m3", "1/m**3"},
	"SEC":               {"s", "sec", "second"},
	"PER-SEC":           {"s-1", "s^-1", "s**-1", "1/s", "Hz"},
	"PER-SEC2":          {"s-2", "s^-2", "s**-2", "1/s2", "1/s**2"},
	"KiloGM":            {"kg"},
	"GM":                {"g"},
	"MOL":               {"mol"},
	"PA":                {"Pa", "N m-2", "N/m2", "N*m-2", "N*m**-2", "N m**-2"},
	"HectoPA":           {"hPa"},
	"N":                 {"N", "newton", "kg m s-2", "kg*m*s-2", "kg*m*s**-2"},
	"J":                 {"J", "joule", "N m", "N*m"},
	"W":                 {"W", "watt", "J s-1", "J/s", "J*s-1", "J*s**-1"},
	"RAD":               {"radian", "rad"},
	"DEG":               {"degree", "degrees", "degree_north", "degree_east"},
	"M-PER-SEC":         {"m/s", "m s-1", "m*s-1", "m*s**-1", "m s**-1", "m s^-1"},
	"M-PER-SEC2":        {"m/s2", "m/s**2", "m s-2", "m*s-2", "m*s**-2", "m s**-2"},
	"M2-PER-SEC":        {"m2/s", "m2 s-1", "m2*s-1", "m**2*s**-1", "m**2 s**-1", "m^2/s"},
	"M2-PER-SEC2":       {"m2/s2", "m2 s-2", "m2*s-2", "m**2*s**-2", "m**2 s**-2", "m^2/s^2"},
	"PER-M-SEC":         {"m-1 s-1", "m-1*s-1", "m**-1*s**-1"},
	"PA-PER-SEC":        {"Pa/s", "Pa s-1", "Pa*s-1", "Pa*s**-1"},
	"KiloGM-PER-M2":     {"kg m-2", "kg/m2", "kg*m-2", "kg*m**-2", "kg m**-2"},
	"KiloGM-PER-M3":     {"kg m-3", "kg/m3", "kg*m-3", "kg*m**-3", "kg m**-3"},
	"KiloGM-PER-KiloGM": {"kg kg-1", "kg/kg", "kg*kg-1", "kg*kg**-1"},
	"KiloGM-PER-M2-SEC": {"kg m-2 s-1", "kg/m2/s", "kg*m-2*s-1", "kg*m**-2*s**-1", "kg m**-2 s**-1"},
	"W-PER-M2":          {"W m-2", "W/m2", "W*m-2", "W*m**-2", "W m**-2"},
	"J-PER-KiloGM":      {"J kg-1", "J/kg", "J*kg-1", "J*kg**-1"},
	"K-PER-SEC":         {"K s-1", "K/s", "K*s-1", "K*s**-1"},
	"MOL-PER-M3":        {"mol m-3", "mol/m3", "mol*m-3", "mol*m**-3"},
	"MOL-PER-KiloGM":    {"mol kg-1", "mol/kg", "mol*kg-1", "mol*kg**-1"},
}

// Canonicalize returns the canonical unit URI for a unit spelling. Spellings
// not in the table are returned unchanged.
func Canonicalize(text string) string {
	mu.RLock()
	defer mu.RUnlock()

	if uri, ok := table[strings.TrimSpace(text)]; ok {
		return uri
	}
	return text
}

// Known reports whether text has an entry in the table.
func Known(text string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := table[strings.TrimSpace(text)]
	return ok
}

// Register adds a spelling for uri. The uri itself is registered as well so
// that canonicalizing a canonical value is a no-op.
func Register(spelling, uri string) {
	mu.Lock()
	defer mu.Unlock()

	table[spelling] = uri
	table[uri] = uri
}

// Spellings returns every registered spelling.
func Spellings() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(table))
	for s := range table {
		result = append(result, s)
	}
	return result
}
