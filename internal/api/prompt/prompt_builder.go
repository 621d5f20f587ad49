package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FACorreiaa/paragourmet/internal/types"
)

const localTimeLayout = "2006-01-02 Monday, 15:04"

// BuildPrompt renders the scene, its intents and the derived bias into the text handed to
// the generative backend. It is pure: the same inputs always give the same bytes.
func BuildPrompt(scene types.Scene, pois types.POICounts, intents []string) string {
	location := fmt.Sprintf("%s, %s (lat: %s, lon: %s)",
		scene.District, scene.City, formatNumber(scene.Lat), formatNumber(scene.Lon))
	weather := fmt.Sprintf("%s°C, %s, humidity %d%%",
		formatNumber(scene.TemperatureC), scene.Sky, scene.HumidityPct)

	intentsText := "no specific intents"
	if len(intents) > 0 {
		intentsText = strings.Join(intents, ", ")
	}

	bias := DeriveBias(scene, pois, intents)

	return fmt.Sprintf(`[SCENE]
- Location: %s
- Datetime (local): %s
- Weather: %s
- Surroundings: %s

[INTENT]
- Context intents: %s

[BIAS]
- %s
- Bias tags: %s
- Guidance: adhere to bias tags; stay realistic for the given region; avoid exotic items.

[RULES]
- Your primary goal is to suggest a single, specific food or drink menu item.
- The menu must be common and culturally appropriate for the given region/country.
- DO NOT mention any specific restaurant, brand, or store name.
- DO NOT use any of the words from the 'Surroundings' list in your suggestion.
- The suggestion must be realistic and highly relevant to the scene, especially the weather and derived intents.
- The output format MUST be a single, clean JSON object.

[SCORING]
- High score for items that are familiar, locally popular, and seasonally appropriate.
- High score for items that align well with multiple intents (e.g., light and hydrating in hot weather).
- Low score for overly exotic, unrealistic, or culturally irrelevant items.
- Low score for generic, low-effort suggestions (e.g., "water", "snack").
- Low score for suggestions that ignore key intents (e.g., a hot, heavy soup on a sweltering day).

[OUTPUT]
- Your response must be only a single JSON object and nothing else.
- The JSON object must have two keys: "suggestion" (string) and "reason" (string).
`,
		location,
		scene.LocalTime.Format(localTimeLayout),
		weather,
		surroundings(pois),
		intentsText,
		strings.Join(bias.Lines, "\n- "),
		strings.Join(bias.Tags, ", "),
	)
}

// surroundings lists present categories in human words, e.g. "bus stop, cafe nearby".
func surroundings(pois types.POICounts) string {
	if len(pois) == 0 {
		return "nothing specific"
	}
	names := make([]string, 0, len(pois))
	for _, c := range pois.Categories() {
		names = append(names, strings.ReplaceAll(c, "_", " "))
	}
	return strings.Join(names, ", ") + " nearby"
}

// formatNumber prints the shortest exact decimal and keeps one fractional digit for whole
// values, so 28 renders as "28.0".
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
