package state

// Card is an entry on the landing screen.
type Card struct {
	Icon        string
	Title       string
	Description string
	Route       Route
	Disabled    bool
}

// HomeCards lists the landing screen entries in display order.
var HomeCards = []Card{
	{
		Icon:        "✨",
		Title:       "Poem Generator",
		Description: "Create beautiful AI-generated poems with customizable styles and moods",
		Route:       GeneratorRoute,
	},
	{
		Icon:        "🚀",
		Title:       "More Apps Coming",
		Description: "Stay tuned for more AI-powered applications",
		Disabled:    true,
	},
}

// CardAt returns the card at index.
func CardAt(index int) (Card, bool) {
	if index < 0 || index >= len(HomeCards) {
		return Card{}, false
	}
	return HomeCards[index], true
}

// NextEnabledCard moves from index by delta, skipping disabled cards.
// It returns index unchanged when no enabled card lies in that direction.
func NextEnabledCard(index, delta int) int {
	if delta == 0 {
		return index
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	for i := index + step; i >= 0 && i < len(HomeCards); i += step {
		if !HomeCards[i].Disabled {
			return i
		}
	}
	return index
}
