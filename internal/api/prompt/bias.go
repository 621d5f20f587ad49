package prompt

import "github.com/FACorreiaa/paragourmet/internal/types"

const (
	fallbackBiasLine = "No strong POI bias; default to weather/time suitability."
	fallbackBiasTag  = "context_only"
)

type biasRule struct {
	when func(signals) bool
	line string
	tags []string
}

// biasRules differ from intentRules in one place: cold only applies when it is not hot.
var biasRules = []biasRule{
	{
		when: signals.hot,
		line: "Weather: hot (>=27°C) → prefer cold/light items, hydration, gentle acidity.",
		tags: []string{"cold_pref", "light_pref", "hydration_pref"},
	},
	{
		when: func(s signals) bool { return !s.hot() && s.cold() },
		line: "Weather: cold (<=5°C) → prefer hot/hearty items.",
		tags: []string{"hot_pref", "hearty_pref"},
	},
	{
		when: func(s signals) bool { return s.hasIntent("very_sunny") },
		line: "Sun: very sunny → refreshing/iced options acceptable.",
		tags: []string{"iced_ok", "refreshing_pref"},
	},
	{
		when: func(s signals) bool { return s.hasIntent("high_humidity") },
		line: "Humidity: high → crisp/acidic or broth-based relief acceptable.",
		tags: []string{"acid_ok", "broth_ok"},
	},
	{
		when: func(s signals) bool { return s.pois.HasAny(transitPOIs...) },
		line: "Transit nearby → quick-serve, portable formats prioritized.",
		tags: []string{"quick_serve_pref", "portable_pref", "low_wait_pref"},
	},
	{
		when: func(s signals) bool { return s.pois.HasAny(marketPOIs...) },
		line: "Market area → casual, street-food-friendly formats acceptable.",
		tags: []string{"street_food_pref"},
	},
	{
		when: func(s signals) bool { return s.pois.HasAny(dessertPOIs...) },
		line: "Cafe/dessert spots nearby → dessert/iced drink pairing acceptable.",
		tags: []string{"dessert_pairing_ok", "iced_beverage_pair_ok"},
	},
	{
		when: func(s signals) bool { return s.pois.HasAny(outdoorPOIs...) },
		line: "Outdoor spots → picnic-ready, shareable formats prioritized.",
		tags: []string{"picnic_pref", "shareable_pref"},
	},
	{
		when: func(s signals) bool { return s.pois.HasAny(workPOIs...) },
		line: "Office/school area → rush-lunch, budget-sensitive options prioritized.",
		tags: []string{"rush_lunch_pref", "budget_pref"},
	},
}

// DeriveBias explains which way the scene should push the suggestion. Lines keep one
// entry per firing rule, tags are deduplicated. The result is never empty.
func DeriveBias(scene types.Scene, pois types.POICounts, intents []string) types.BiasResult {
	s := signals{
		temperatureC: scene.TemperatureC,
		sky:          scene.Sky,
		humidityPct:  scene.HumidityPct,
		pois:         pois,
		intents:      intents,
	}

	var lines, tags []string
	for _, r := range biasRules {
		if r.when(s) {
			lines = append(lines, r.line)
			tags = append(tags, r.tags...)
		}
	}

	tags = dedupe(tags)
	if len(lines) == 0 {
		lines = []string{fallbackBiasLine}
	}
	if len(tags) == 0 {
		tags = []string{fallbackBiasTag}
	}
	return types.BiasResult{Lines: lines, Tags: tags}
}
