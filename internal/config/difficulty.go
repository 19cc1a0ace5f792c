package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// IsPreset reports whether name is a known preset.
func IsPreset(name string) bool {
	for _, p := range Presets() {
		if string(p) == name {
			return true
		}
	}
	return false
}

// ApplyPreset overwrites the option count, distractor scope and highlight
// time with the preset's values. Unknown presets leave cfg untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	g := &cfg.Gameplay

	switch preset {
	case DifficultyEasy:
		// Distractors from other continents are easier to rule out.
		g.Options = 3
		g.Distractors = "global"
		g.HighlightMillis = 1500
	case DifficultyNormal:
		g.Options = 4
		g.Distractors = "category"
		g.HighlightMillis = 1000
	case DifficultyHard:
		g.Options = 6
		g.Distractors = "category"
		g.HighlightMillis = 600
	default:
		return
	}
	g.Difficulty = string(preset)
}
