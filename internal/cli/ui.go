package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/mainseq/pkg/analysis"
	"github.com/matzehuels/mainseq/pkg/statistic"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorPurple = lipgloss.Color("141") // Lavender - both zones
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleZonePain        = lipgloss.NewStyle().Foreground(colorRed)
	styleZoneUselessness = lipgloss.NewStyle().Foreground(colorYellow)
	styleZoneBoth        = lipgloss.NewStyle().Foreground(colorPurple)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Result Display
// =============================================================================

// zone labels for the result table.
const (
	zoneLabelPain        = "pain"
	zoneLabelUselessness = "uselessness"
	zoneLabelBoth        = "pain, uselessness"
)

// zoneLabel names the zones p falls into, or "" for neither.
func zoneLabel(p statistic.Point) string {
	pain, useless := p.InZoneOfPain(), p.InZoneOfUselessness()
	switch {
	case pain && useless:
		return zoneLabelBoth
	case pain:
		return zoneLabelPain
	case useless:
		return zoneLabelUselessness
	}
	return ""
}

// renderResultTable renders one row per component with its coordinates,
// distance and zone.
func renderResultTable(res *analysis.Result) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	numberStyle := cellStyle.Foreground(colorWhite).Align(lipgloss.Right)

	rows := make([][]string, 0, len(res.Points))
	for _, p := range res.Points {
		name := p.DisplayName()
		if cls, ok := res.Classifications[p.Component]; ok && !cls.Applicable() {
			name += " (n/a)"
		}
		rows = append(rows, []string{
			name,
			formatMetric(p.Instability),
			formatMetric(p.Abstractness),
			formatMetric(p.Distance()),
			zoneLabel(p),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Component", "I", "A", "D", "Zone").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 1, 2, 3:
				return numberStyle
			case 4:
				switch rows[row][col] {
				case zoneLabelPain:
					return cellStyle.Inherit(styleZonePain)
				case zoneLabelUselessness:
					return cellStyle.Inherit(styleZoneUselessness)
				case zoneLabelBoth:
					return cellStyle.Inherit(styleZoneBoth)
				}
			}
			return cellStyle
		})

	return t.String()
}

// printResult prints the result table, distance statistics and violations.
func printResult(res *analysis.Result) {
	fmt.Println(StyleTitle.Render("Main sequence"))
	fmt.Println(renderResultTable(res))
	printNewline()

	printKeyValue("Mean D", formatMetric(res.Summary.Mean))
	printKeyValue("Variance", formatMetric(res.Summary.Variance))
	printKeyValue("Std dev", formatMetric(res.Summary.StandardDeviation))
	printNewline()

	if len(res.ZoneOfPain) > 0 {
		printInfo("Zone of pain")
		printDetail("%s", strings.Join(res.ZoneOfPain, ", "))
	}
	if len(res.ZoneOfUselessness) > 0 {
		printInfo("Zone of uselessness")
		printDetail("%s", strings.Join(res.ZoneOfUselessness, ", "))
	}
	if res.HasCycle {
		printWarning("Dependency graph contains a cycle")
	}
	if len(res.Violations) == 0 {
		printSuccess("No principle violations")
		return
	}
	for _, v := range res.Violations {
		printWarning("%s", v.Error())
	}
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
