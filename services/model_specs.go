package services

import (
	"strings"
)

// ModelSpecs is the physical data printed on a sale slip. It is a static
// lookup keyed by normalized model identifier, outside the transactional
// core; a miss is not an error, the slip just omits the spec lines.
type ModelSpecs struct {
	EngineCC   int    `json:"engine_cc"`
	FuelSystem string `json:"fuel_system"`
	BrakeType  string `json:"brake_type"`
}

var modelSpecsTable = map[string]ModelSpecs{
	"hondahornet":    {EngineCC: 184, FuelSystem: "PGM-FI", BrakeType: "Dual Disc"},
	"hondahornet2.0": {EngineCC: 184, FuelSystem: "PGM-FI", BrakeType: "Dual Disc ABS"},
	"yamahar15":      {EngineCC: 155, FuelSystem: "Fuel Injection", BrakeType: "Dual Disc ABS"},
	"yamahar15v4":    {EngineCC: 155, FuelSystem: "Fuel Injection", BrakeType: "Dual Channel ABS"},
	"yamahafzs":      {EngineCC: 149, FuelSystem: "Fuel Injection", BrakeType: "Single Disc"},
	"suzukigixxer":   {EngineCC: 155, FuelSystem: "Fuel Injection", BrakeType: "Single Disc"},
	"suzukigixxersf": {EngineCC: 155, FuelSystem: "Fuel Injection", BrakeType: "Dual Disc"},
	"bajajpulsar":    {EngineCC: 149, FuelSystem: "Carburetor", BrakeType: "Single Disc"},
	"tvsapachertr":   {EngineCC: 159, FuelSystem: "Fuel Injection", BrakeType: "Dual Disc"},
}

// normalizeModel lowercases and strips everything but letters and digits, so
// "Honda Hornet 2.0" and "honda-hornet 2.0" key identically.
func normalizeModel(model string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(model) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupModelSpecs finds the spec entry whose key is the longest prefix of
// the normalized model name. Longest match wins ties, so "yamahar15v4"
// beats "yamahar15" for a Yamaha R15 V4.
func LookupModelSpecs(model string) (ModelSpecs, bool) {
	normalized := normalizeModel(model)

	var bestKey string
	for key := range modelSpecsTable {
		if strings.HasPrefix(normalized, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey == "" {
		return ModelSpecs{}, false
	}
	return modelSpecsTable[bestKey], true
}
