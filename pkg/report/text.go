package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/mainseq/pkg/analysis"
	"github.com/matzehuels/mainseq/pkg/statistic"
)

// DefaultOutput is the default path of the text report.
const DefaultOutput = "target/dependency-metrics-result.txt"

const (
	columnWidth       = 30
	ruleWidth         = 120
	notApplicableNote = "(n/a: no classifiable sources)"
)

// WriteText writes the fixed-width metrics report for res to w.
// A skipped result writes nothing.
func WriteText(w io.Writer, res *analysis.Result) error {
	if res == nil || res.Skipped {
		return nil
	}

	bw := bufio.NewWriter(w)
	writeComponents(bw, res)
	writeZones(bw, res)
	writeStatistics(bw, res.Summary)
	return bw.Flush()
}

func writeComponents(w *bufio.Writer, res *analysis.Result) {
	writeRow(w, "COMPONENT", "INSTABILITY", "ABSTRACTION", "DISTANCE FROM MAIN SEQUENCE")
	w.WriteString("\n")
	w.WriteString(strings.Repeat("=", ruleWidth))
	w.WriteString("\n\n")

	var notApplicable bool
	for _, p := range res.Points {
		writeRow(w,
			truncate(p.DisplayName(), columnWidth),
			formatNumber(p.Instability),
			formatNumber(p.Abstractness),
			formatNumber(p.Distance()))
		if cls, ok := res.Classifications[p.Component]; ok && !cls.Applicable() {
			w.WriteString(notApplicableNote)
			notApplicable = true
		}
		w.WriteString("\n")
	}
	if notApplicable {
		w.WriteString("\n" + notApplicableNote + ": abstraction is reported as 0.0\n")
	}
	w.WriteString("\n")
}

func writeRow(w *bufio.Writer, cols ...string) {
	for _, c := range cols {
		w.WriteString(c)
		if pad := columnWidth - len([]rune(c)); pad > 0 {
			w.WriteString(strings.Repeat(" ", pad))
		}
		w.WriteString(" ")
	}
}

func writeZones(w *bufio.Writer, res *analysis.Result) {
	if len(res.ZoneOfPain) == 0 && len(res.ZoneOfUselessness) == 0 {
		return
	}
	header(w, "ZONES OF EXCLUSION")
	if len(res.ZoneOfPain) > 0 {
		w.WriteString("ZONE OF PAIN: \n")
		for _, name := range res.ZoneOfPain {
			w.WriteString(name + "\n")
		}
	}
	if len(res.ZoneOfUselessness) > 0 {
		w.WriteString("ZONE OF USELESSNESS: \n")
		for _, name := range res.ZoneOfUselessness {
			w.WriteString(name + "\n")
		}
	}
	w.WriteString("\n")
}

func writeStatistics(w *bufio.Writer, s statistic.Summary) {
	header(w, "STATISTICAL ANALYSIS OF DISTANCE FROM MAIN SEQUENCE")
	w.WriteString("MEAN: " + formatNumber(s.Mean) + "\n")
	w.WriteString("VARIANCE: " + formatNumber(s.Variance) + "\n")
	w.WriteString("STANDARD DEVIATION: " + formatNumber(s.StandardDeviation) + "\n")
}

func header(w *bufio.Writer, title string) {
	rule := strings.Repeat("=", columnWidth)
	w.WriteString("\n" + rule + title + rule + "\n\n")
}

// formatNumber prints v with the shortest round-trip representation and at
// least one fractional digit.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
