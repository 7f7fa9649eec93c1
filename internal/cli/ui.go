package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - primary values
	colorGreen = lipgloss.Color("35")  // green - success, added tags
	colorRed   = lipgloss.Color("167") // soft red - errors, removed tags
	colorWhite = lipgloss.Color("255") // bright white - values
	colorGray  = lipgloss.Color("245") // gray - secondary text
	colorDim   = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleAdded   = lipgloss.NewStyle().Foreground(colorGreen)
	styleRemoved = lipgloss.NewStyle().Foreground(colorRed)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented detail line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printTagDiff prints one added or removed classifier tag.
func printTagDiff(marker string, style lipgloss.Style, tag string) {
	fmt.Println("  " + style.Render(marker+" "+tag))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + styleValue.Render(value))
}
