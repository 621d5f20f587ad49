package prompt

import "github.com/FACorreiaa/paragourmet/internal/types"

// signals is what the intent and bias rules look at.
type signals struct {
	temperatureC float64
	sky          string
	humidityPct  int
	pois         types.POICounts
	intents      []string
}

func (s signals) hot() bool  { return s.temperatureC >= 27 }
func (s signals) cold() bool { return s.temperatureC <= 5 }

func (s signals) hasIntent(label string) bool {
	for _, it := range s.intents {
		if it == label {
			return true
		}
	}
	return false
}

// POI groups the rules react to.
var (
	transitPOIs = []string{"bus_stop", "subway_entrance"}
	marketPOIs  = []string{"marketplace", "supermarket"}
	dessertPOIs = []string{"cafe", "bakery", "ice_cream"}
	outdoorPOIs = []string{"park", "river"}
	workPOIs    = []string{"office", "school", "university"}
)

// dedupe keeps the first occurrence of every label.
func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
