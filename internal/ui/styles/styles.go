package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Values, primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Collection names, lengths
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, history

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unselected panels
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Selected panel

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Selection indicator color (used for ">" prefix on the selected collection)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	// List value colors
	ValueHeadColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ValueTailColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ValueLinkColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	ValueStyle     = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	ValueHeadStyle = lipgloss.NewStyle().Foreground(ValueHeadColor).Bold(true)
	ValueTailStyle = lipgloss.NewStyle().Foreground(ValueTailColor).Bold(true)
	LinkStyle      = lipgloss.NewStyle().Foreground(ValueLinkColor)

	CollectionNameStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Bold(true)
	MutedStyle          = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true)
)
