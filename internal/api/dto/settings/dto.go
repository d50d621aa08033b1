package settings

type ThemeResponse struct {
	ThemeMode string `json:"theme_mode"` // system | light | dark
}

type SetThemeRequest struct {
	ThemeMode string `json:"theme_mode"`
}

type DebugMenuResponse struct {
	Enabled bool `json:"enabled"`
}

type SetDebugMenuRequest struct {
	Enabled bool `json:"enabled"`
}
