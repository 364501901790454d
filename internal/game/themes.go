package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// ThemeConfig is one selectable visual theme: background, grid and accent
// colours used by the renderer. Token is the value persisted in the profile.
type ThemeConfig struct {
	Token      string
	Name       string
	Background RGB
	Grid       RGB
	Accent     RGB
	Particle   RGB // burst colour on food consumption
}

var (
	ThemeNeon = ThemeConfig{
		Token:      "neon",
		Name:       "Neon",
		Background: RGB{R: 8, G: 8, B: 20},
		Grid:       RGB{R: 24, G: 28, B: 52},
		Accent:     RGB{R: 0, G: 255, B: 170},
		Particle:   RGB{R: 255, G: 80, B: 180},
	}
	ThemeSunset = ThemeConfig{
		Token:      "sunset",
		Name:       "Sunset",
		Background: RGB{R: 28, G: 10, B: 28},
		Grid:       RGB{R: 60, G: 24, B: 44},
		Accent:     RGB{R: 255, G: 150, B: 60},
		Particle:   RGB{R: 255, G: 200, B: 90},
	}
	ThemeMono = ThemeConfig{
		Token:      "mono",
		Name:       "Mono",
		Background: RGB{R: 12, G: 12, B: 12},
		Grid:       RGB{R: 34, G: 34, B: 34},
		Accent:     RGB{R: 230, G: 230, B: 230},
		Particle:   RGB{R: 160, G: 160, B: 160},
	}
)

// Themes in display order for the customize screen.
var Themes = []ThemeConfig{ThemeNeon, ThemeSunset, ThemeMono}

// SnakeColor is one selectable body colour.
type SnakeColor struct {
	Token string
	Name  string
	Col   RGB
}

// SnakeColors in display order. Index 0 is the default.
var SnakeColors = []SnakeColor{
	{Token: "green", Name: "Toxic Green", Col: RGB{R: 40, G: 200, B: 26}},
	{Token: "cyan", Name: "Cyan", Col: RGB{R: 95, G: 215, B: 205}},
	{Token: "violet", Name: "Violet", Col: RGB{R: 225, G: 120, B: 255}},
	{Token: "amber", Name: "Amber", Col: RGB{R: 255, G: 190, B: 40}},
}

// ThemeByToken resolves a persisted theme token, falling back to the default
// theme on unknown or empty tokens.
func ThemeByToken(token string) ThemeConfig {
	for _, t := range Themes {
		if t.Token == token {
			return t
		}
	}
	return Themes[0]
}

// ColorByToken resolves a persisted colour token, falling back to the default
// colour on unknown or empty tokens.
func ColorByToken(token string) SnakeColor {
	for _, c := range SnakeColors {
		if c.Token == token {
			return c
		}
	}
	return SnakeColors[0]
}
