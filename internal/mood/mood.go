package mood

// Mood is one of the fixed ambience presets the storefront can render in.
type Mood struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Quote     string `json:"quote"`
	HeroEmoji string `json:"heroEmoji"`
	Accent    string `json:"accent"`
}

// DefaultID is the fallback when the persisted value is missing or not a
// recognized mood.
const DefaultID = "morning"

// Moods is the fixed set, in display order.
var Moods = []Mood{
	{
		ID:        "morning",
		Label:     "Morning",
		Quote:     "The morning starts not with coffee but with the decision to be happy.",
		HeroEmoji: "🌅",
		Accent:    "#f97316",
	},
	{
		ID:        "focus",
		Label:     "Focus",
		Quote:     "Focus defines your reality.",
		HeroEmoji: "💻",
		Accent:    "#1e293b",
	},
	{
		ID:        "evening",
		Label:     "Unwind",
		Quote:     "Let the evening carry away the worries of the day.",
		HeroEmoji: "🌙",
		Accent:    "#6366f1",
	},
}

// ByID returns the mood for id, or false when unrecognized.
func ByID(id string) (Mood, bool) {
	for _, m := range Moods {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}
