package state

// Notifications records which one-off notification banners the user has
// already seen. The value is always fully populated; there is no notion of
// a missing flag.
type Notifications struct {
	LegacyFlags `yaml:",inline"`

	SeenMonacoEditorAvailable bool `json:"seenMonacoEditorAvailable" yaml:"seenMonacoEditorAvailable"`
}

// LegacyFlags holds flags for notifications that are no longer shown.
// They stay true so previously stored state keeps round-tripping; nothing
// reads them.
type LegacyFlags struct {
	SeenRustSurvey2018    bool `json:"seenRustSurvey2018" yaml:"seenRustSurvey2018"`
	SeenRust2018IsDefault bool `json:"seenRust2018IsDefault" yaml:"seenRust2018IsDefault"`
	SeenRustSurvey2020    bool `json:"seenRustSurvey2020" yaml:"seenRustSurvey2020"`
	SeenRust2021IsDefault bool `json:"seenRust2021IsDefault" yaml:"seenRust2021IsDefault"`
	SeenRustSurvey2021    bool `json:"seenRustSurvey2021" yaml:"seenRustSurvey2021"`
}

// Default returns the state of a fresh session: every expired notification
// counts as seen, the Monaco editor notification does not.
func Default() Notifications {
	return Notifications{
		LegacyFlags: LegacyFlags{
			SeenRustSurvey2018:    true,
			SeenRust2018IsDefault: true,
			SeenRustSurvey2020:    true,
			SeenRust2021IsDefault: true,
			SeenRustSurvey2021:    true,
		},
		SeenMonacoEditorAvailable: false,
	}
}
