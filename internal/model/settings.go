package model

// ThemeMode is persisted as its ordinal value (SYSTEM=0, LIGHT=1, DARK=2).
type ThemeMode int

const (
	ThemeSystem ThemeMode = iota
	ThemeLight
	ThemeDark
)

func (m ThemeMode) String() string {
	switch m {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "system"
	}
}

// ThemeModeFromOrdinal maps a stored ordinal back to a mode, falling back to
// SYSTEM for out-of-range values left by older versions.
func ThemeModeFromOrdinal(v int) ThemeMode {
	switch v {
	case int(ThemeLight):
		return ThemeLight
	case int(ThemeDark):
		return ThemeDark
	default:
		return ThemeSystem
	}
}

func ParseThemeMode(s string) (ThemeMode, bool) {
	switch s {
	case "system":
		return ThemeSystem, true
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	}
	return ThemeSystem, false
}

// Next returns the mode after a theme toggle: LIGHT and DARK swap, SYSTEM
// switches to DARK.
func (m ThemeMode) Next() ThemeMode {
	switch m {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeDark
	}
}
