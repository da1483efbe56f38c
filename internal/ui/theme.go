package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// DefaultThemeName is used when no theme (or an unknown theme) is requested
const DefaultThemeName = "charm"

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Subtle     lipgloss.AdaptiveColor // Subtle UI elements
	Background lipgloss.AdaptiveColor // Background for panels

	// Component styles
	Editor   EditorStyles
	AppTitle lipgloss.Style // App title in the header
	Label    lipgloss.Style // Field labels ("Your Prompt", "Enhanced Prompt")
	Help     lipgloss.Style
}

// EditorStyles defines styles for the prompt input, button and result panel
type EditorStyles struct {
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Result       lipgloss.Style
	ResultFocus  lipgloss.Style
	Button       lipgloss.Style
	ButtonBusy   lipgloss.Style
	CopyButton   lipgloss.Style
}

// palette is the set of adaptive colors a theme is derived from
type palette struct {
	primary, secondary, accent lipgloss.AdaptiveColor

	foreground, muted lipgloss.AdaptiveColor

	errorColor, success, warning lipgloss.AdaptiveColor

	border, dimmed, subtle, background lipgloss.AdaptiveColor

	buttonText lipgloss.AdaptiveColor
}

func c(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var palettes = map[string]palette{
	"charm": {
		primary: c("#5A56E0", "#7571F9"), secondary: c("#02BA84", "#02BF87"), accent: c("#F780E2", "#F780E2"),
		foreground: c("235", "252"), muted: c("243", "243"),
		errorColor: c("#FF4672", "#ED567A"), success: c("#02BA84", "#02BF87"), warning: c("#FFAA00", "#FFAA00"),
		border: c("240", "240"), dimmed: c("243", "243"), subtle: c("241", "241"), background: c("254", "235"),
		buttonText: c("255", "230"),
	},
	// Dracula palette
	"dracula": {
		primary: c("#bd93f9", "#bd93f9"), secondary: c("#8be9fd", "#8be9fd"), accent: c("#ff79c6", "#ff79c6"),
		foreground: c("#282a36", "#f8f8f2"), muted: c("#6272a4", "#6272a4"),
		errorColor: c("#ff5555", "#ff5555"), success: c("#50fa7b", "#50fa7b"), warning: c("#f1fa8c", "#f1fa8c"),
		border: c("61", "61"), dimmed: c("#6272a4", "#6272a4"), subtle: c("#44475a", "#44475a"), background: c("#f8f8f2", "#282a36"),
		buttonText: c("#f8f8f2", "#282a36"),
	},
	// Catppuccin Mocha (dark) and Latte (light)
	"catppuccin": {
		primary: c("#8839ef", "#cba6f7"), secondary: c("#179299", "#89dceb"), accent: c("#ea76cb", "#f5c2e7"),
		foreground: c("#4c4f69", "#cdd6f4"), muted: c("#9ca0b0", "#7f849c"),
		errorColor: c("#d20f39", "#f38ba8"), success: c("#40a02b", "#a6e3a1"), warning: c("#df8e1d", "#f9e2af"),
		border: c("#9ca0b0", "#45475a"), dimmed: c("#9ca0b0", "#7f849c"), subtle: c("#7c7f93", "#585b70"), background: c("#eff1f5", "#1e1e2e"),
		buttonText: c("#eff1f5", "#1e1e2e"),
	},
	// Nord: cool blues and grays
	"nord": {
		primary: c("#5e81ac", "#88c0d0"), secondary: c("#81a1c1", "#81a1c1"), accent: c("#b48ead", "#b48ead"),
		foreground: c("#2e3440", "#eceff4"), muted: c("#4c566a", "#4c566a"),
		errorColor: c("#bf616a", "#bf616a"), success: c("#a3be8c", "#a3be8c"), warning: c("#ebcb8b", "#ebcb8b"),
		border: c("#d8dee9", "#3b4252"), dimmed: c("#4c566a", "#4c566a"), subtle: c("#434c5e", "#434c5e"), background: c("#eceff4", "#2e3440"),
		buttonText: c("#eceff4", "#2e3440"),
	},
	// Gruvbox: warm retro
	"gruvbox": {
		primary: c("#af3a03", "#fe8019"), secondary: c("#79740e", "#b8bb26"), accent: c("#b16286", "#d3869b"),
		foreground: c("#3c3836", "#ebdbb2"), muted: c("#7c6f64", "#928374"),
		errorColor: c("#9d0006", "#fb4934"), success: c("#79740e", "#b8bb26"), warning: c("#b57614", "#fabd2f"),
		border: c("#d5c4a1", "#504945"), dimmed: c("#7c6f64", "#928374"), subtle: c("#665c54", "#665c54"), background: c("#fbf1c7", "#282828"),
		buttonText: c("#fbf1c7", "#282828"),
	},
	"tokyo-night": {
		primary: c("#7aa2f7", "#7aa2f7"), secondary: c("#2ac3de", "#2ac3de"), accent: c("#bb9af7", "#bb9af7"),
		foreground: c("#1a1b26", "#c0caf5"), muted: c("#565f89", "#565f89"),
		errorColor: c("#f7768e", "#f7768e"), success: c("#9ece6a", "#9ece6a"), warning: c("#e0af68", "#e0af68"),
		border: c("#a9b1d6", "#292e42"), dimmed: c("#565f89", "#565f89"), subtle: c("#414868", "#414868"), background: c("#d5d6db", "#1a1b26"),
		buttonText: c("#1a1b26", "#1a1b26"),
	},
	"solarized": {
		primary: c("#268bd2", "#268bd2"), secondary: c("#2aa198", "#2aa198"), accent: c("#6c71c4", "#6c71c4"),
		foreground: c("#002b36", "#839496"), muted: c("#586e75", "#586e75"),
		errorColor: c("#dc322f", "#dc322f"), success: c("#859900", "#859900"), warning: c("#cb4b16", "#cb4b16"),
		border: c("#93a1a1", "#073642"), dimmed: c("#586e75", "#586e75"), subtle: c("#657b83", "#657b83"), background: c("#fdf6e3", "#002b36"),
		buttonText: c("#fdf6e3", "#fdf6e3"),
	},
	"monokai": {
		primary: c("#66d9ef", "#66d9ef"), secondary: c("#a6e22e", "#a6e22e"), accent: c("#ae81ff", "#ae81ff"),
		foreground: c("#272822", "#f8f8f2"), muted: c("#75715e", "#75715e"),
		errorColor: c("#f92672", "#f92672"), success: c("#a6e22e", "#a6e22e"), warning: c("#e6db74", "#e6db74"),
		border: c("#464741", "#464741"), dimmed: c("#75715e", "#75715e"), subtle: c("#49483e", "#49483e"), background: c("#f8f8f2", "#272822"),
		buttonText: c("#272822", "#272822"),
	},
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Error:      p.errorColor,
		Success:    p.success,
		Warning:    p.warning,
		Border:     p.border,
		Dimmed:     p.dimmed,
		Subtle:     p.subtle,
		Background: p.background,
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.Editor.Input = panel
	t.Editor.InputFocused = panel.BorderForeground(t.Primary)
	t.Editor.Result = panel.Background(t.Background).Foreground(t.Foreground)
	t.Editor.ResultFocus = t.Editor.Result.BorderForeground(t.Primary)

	t.Editor.Button = lipgloss.NewStyle().
		Foreground(p.buttonText).
		Background(t.Primary).
		Bold(true).
		Padding(0, 2)
	t.Editor.ButtonBusy = t.Editor.Button.
		Background(t.Subtle).
		Foreground(t.Dimmed)
	t.Editor.CopyButton = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Padding(0, 1)

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
	t.Label = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)
	t.Help = lipgloss.NewStyle().
		Foreground(t.Dimmed)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return newTheme("charm", palettes["charm"])
}

// GetTheme returns the theme whose name best matches name. Exact names win;
// otherwise the best fuzzy match is used (e.g. "drac" → dracula, "tokyo" →
// tokyo-night). Unknown names fall back to the charm theme.
func GetTheme(name string) *Theme {
	if p, ok := palettes[name]; ok {
		return newTheme(name, p)
	}
	if resolved, ok := ResolveThemeName(name); ok {
		return newTheme(resolved, palettes[resolved])
	}
	return ThemeCharm()
}

// ResolveThemeName fuzzy-matches name against the available themes
func ResolveThemeName(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	matches := fuzzy.Find(name, AvailableThemes())
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

// NextThemeName returns the theme that follows current in AvailableThemes,
// wrapping around at the end.
func NextThemeName(current string) string {
	names := AvailableThemes()
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// AvailableThemes returns a list of available theme names, default first
func AvailableThemes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		if name != DefaultThemeName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultThemeName}, names...)
}
