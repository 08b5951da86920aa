package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset matches the Dark values of the AdaptiveColor defaults in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default dlist theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CCCCCC",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator: "#FFFFFF",

		TokenValueHead: "#73F59F",
		TokenValueTail: "#54A0FF",
		TokenValueLink: "#696969",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4", // text
		TokenTextSecondary: "#BAC2DE", // subtext1
		TokenTextMuted:     "#6C7086", // overlay0

		TokenBorderDefault: "#6C7086", // overlay0
		TokenBorderFocus:   "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenSelectionIndicator: "#CDD6F4", // text

		TokenValueHead: "#A6E3A1", // green
		TokenValueTail: "#89B4FA", // blue
		TokenValueLink: "#6C7086", // overlay0

		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#F8F8F2", // foreground
		TokenTextSecondary: "#F8F8F2", // foreground
		TokenTextMuted:     "#6272A4", // comment

		TokenBorderDefault: "#6272A4", // comment
		TokenBorderFocus:   "#BD93F9", // purple

		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		TokenSelectionIndicator: "#F8F8F2", // foreground

		TokenValueHead: "#50FA7B", // green
		TokenValueTail: "#8BE9FD", // cyan
		TokenValueLink: "#6272A4", // comment

		TokenToastSuccess: "#50FA7B", // green
		TokenToastError:   "#FF5555", // red
		TokenToastInfo:    "#8BE9FD", // cyan
		TokenToastWarn:    "#F1FA8C", // yellow
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // snow storm 3
		TokenTextSecondary: "#E5E9F0", // snow storm 2
		TokenTextMuted:     "#4C566A", // polar night 4

		TokenBorderDefault: "#4C566A", // polar night 4
		TokenBorderFocus:   "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenSelectionIndicator: "#ECEFF4", // snow storm 3

		TokenValueHead: "#A3BE8C", // aurora green
		TokenValueTail: "#81A1C1", // frost 3
		TokenValueLink: "#4C566A", // polar night 4

		TokenToastSuccess: "#A3BE8C", // aurora green
		TokenToastError:   "#BF616A", // aurora red
		TokenToastInfo:    "#88C0D0", // frost 2
		TokenToastWarn:    "#EBCB8B", // aurora yellow
	},
}

// HighContrastPreset uses pure, saturated colors for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#FFFFFF", // no muted colors in high contrast

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00", // bright yellow for focus

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenSelectionIndicator: "#FFFF00",

		TokenValueHead: "#00FF00",
		TokenValueTail: "#00FFFF",
		TokenValueLink: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",
	},
}
