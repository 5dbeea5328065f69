package edr

import (
	"sort"
	"strings"
)

// Catalog maps GFS single-layer parameter names to human-readable
// descriptions. Used both for parameter selection and for describing fetched
// values to callers.
var Catalog = map[string]string{
	"categorical-rain-yes-1-no-0_gnd-surf":                "Categorical rain (yes=1; no=0) - Ground surface",
	"categorical-freezing-rain-yes-1-no-0_gnd-surf":       "Categorical freezing rain (yes=1; no=0) - Ground surface",
	"categorical-ice-pellets-yes-1-no-0_gnd-surf":         "Categorical ice pellets (yes=1; no=0) - Ground surface",
	"categorical-snow-yes-1-no-0_gnd-surf":                "Categorical snow (yes=1; no=0) - Ground surface",
	"land-cover_gnd-surf":                                 "Land cover - Ground surface",
	"temperature_gnd-surf":                                "Temperature - Ground surface",
	"precipitation-rate_gnd-surf":                         "Precipitation rate - Ground surface",
	"snow-depth_gnd-surf":                                 "Snow depth - Ground surface",
	"water-equivalent-of-accumulated-snow-depth_gnd-surf": "Water equivalent of accumulated snow depth - Ground surface",
	"percent-frozen-precipitation_gnd-surf":               "Percent frozen precipitation - Ground surface",
	"wind-speed-gust_gnd-surf":                            "Wind speed (gust) - Ground surface",
	"frictional-velocity_gnd-surf":                        "Frictional velocity - Ground surface",
	"pressure_gnd-surf":                                   "Pressure - Ground surface",
	"geopotential-height_gnd-surf":                        "Geopotential height - Ground surface",
	"planetary-boundary-layer-height_gnd-surf":            "Planetary boundary layer height - Ground surface",
	"sunshine-duration_gnd-surf":                          "Sunshine duration - Ground surface",
	"convective-available-potential-energy_gnd-surf":      "Convective available potential energy - Ground surface",
	"convective-inhibition_gnd-surf":                      "Convective inhibition - Ground surface",
	"surface-lifted-index_gnd-surf":                       "Surface lifted index - Ground surface",
	"best-4-layer-lifted-index_gnd-surf":                  "Best 4-layer lifted index - Ground surface",
	"visibility_gnd-surf":                                 "Visibility - Ground surface",
	"surface-roughness_gnd-surf":                          "Surface roughness - Ground surface",
	"vegetation_gnd-surf":                                 "Vegetation - Ground surface",
	"plant-canopy-surface-water_gnd-surf":                 "Plant canopy surface water - Ground surface",
	"wilting-point_gnd-surf":                              "Wilting point - Ground surface",
	"soil-type_gnd-surf":                                  "Soil type - Ground surface",
	"field-capacity_gnd-surf":                             "Field capacity - Ground surface",
	"haines-index_gnd-surf":                               "Haines index - Ground surface",
	"ice-cover_gnd-surf":                                  "Ice cover - Ground surface",
	"ice-thickness_gnd-surf":                              "Ice thickness - Ground surface",
}

// defaultParameters is the base set fetched for every outdoor activity.
var defaultParameters = []string{
	"categorical-rain-yes-1-no-0_gnd-surf",
	"temperature_gnd-surf",
	"precipitation-rate_gnd-surf",
	"wind-speed-gust_gnd-surf",
	"sunshine-duration_gnd-surf",
	"visibility_gnd-surf",
}

// hintParameters adds parameters relevant to specific activity keywords.
var hintParameters = map[string][]string{
	"ski":      {"categorical-snow-yes-1-no-0_gnd-surf", "snow-depth_gnd-surf"},
	"snow":     {"categorical-snow-yes-1-no-0_gnd-surf", "snow-depth_gnd-surf"},
	"sled":     {"categorical-snow-yes-1-no-0_gnd-surf", "snow-depth_gnd-surf"},
	"skate":    {"ice-cover_gnd-surf", "ice-thickness_gnd-surf"},
	"surf":     {"wind-speed-gust_gnd-surf", "pressure_gnd-surf"},
	"sail":     {"wind-speed-gust_gnd-surf", "pressure_gnd-surf"},
	"kite":     {"wind-speed-gust_gnd-surf", "pressure_gnd-surf"},
	"climb":    {"categorical-freezing-rain-yes-1-no-0_gnd-surf", "visibility_gnd-surf"},
	"hike":     {"convective-available-potential-energy_gnd-surf", "visibility_gnd-surf"},
	"swim":     {"temperature_gnd-surf", "convective-available-potential-energy_gnd-surf"},
	"garden":   {"plant-canopy-surface-water_gnd-surf", "vegetation_gnd-surf"},
	"barbecue": {"precipitation-rate_gnd-surf", "wind-speed-gust_gnd-surf"},
}

// SelectParameters resolves an activity hint into a parameter list: the
// default set plus any keyword additions, deduplicated, order stable.
func SelectParameters(hint string) []string {
	hint = strings.ToLower(hint)

	selected := make([]string, 0, len(defaultParameters)+4)
	seen := make(map[string]bool, len(defaultParameters)+4)
	for _, p := range defaultParameters {
		selected = append(selected, p)
		seen[p] = true
	}

	keywords := make([]string, 0, len(hintParameters))
	for keyword := range hintParameters {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	for _, keyword := range keywords {
		if !strings.Contains(hint, keyword) {
			continue
		}
		for _, p := range hintParameters[keyword] {
			if !seen[p] {
				selected = append(selected, p)
				seen[p] = true
			}
		}
	}

	return selected
}
