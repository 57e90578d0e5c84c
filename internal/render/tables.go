// ABOUTME: Human-readable report rendering for simulation and recommendation output
// ABOUTME: Fixed-width rows with styled risk labels; machine output stays JSON

package render

import (
	"fmt"
	"strings"

	"github.com/tlawson/cipher-strength-analyzer/models"
)

// SimulationReport renders a batch report: weakest rows first, then the
// strongest few for contrast. Rows are expected to be pre-sorted ascending
// by estimated time.
func SimulationReport(report models.SimulationReport, weakest, strongest int) string {
	var b strings.Builder

	b.WriteString(Title.Render(fmt.Sprintf("Simulated %d scenarios", report.Count)))
	b.WriteString("\n")
	b.WriteString(Subtitle.Render(fmt.Sprintf("run %s, seed %d", report.RunID, report.Seed)))
	b.WriteString("\n\n")

	if len(report.Rows) == 0 {
		b.WriteString("No scenarios generated.\n")
		return b.String()
	}

	b.WriteString(Header.Render("Weakest configurations"))
	b.WriteString("\n")
	for _, row := range report.Rows[:min(weakest, len(report.Rows))] {
		b.WriteString(simulationLine(row))
	}

	if len(report.Rows) > weakest {
		b.WriteString("\n")
		b.WriteString(Header.Render("Strongest configurations"))
		b.WriteString("\n")
		start := len(report.Rows) - strongest
		if start < weakest {
			start = weakest
		}
		for _, row := range report.Rows[start:] {
			b.WriteString(simulationLine(row))
		}
	}

	return b.String()
}

func simulationLine(row models.SimulationRow) string {
	return fmt.Sprintf("  %-10s | %-7s | %-6s | %-10s | %14s | gps=%.2e | %s\n",
		row.Algorithm, row.Hardware, row.Threat, row.AttackType,
		row.MedianHuman, row.GuessesPerSecond,
		RiskStyle(row.Risk).Render(row.Risk))
}

// RecommendationReport renders per-algorithm estimates, qualifying entries
// marked, strongest first.
func RecommendationReport(report models.RecommendationReport) string {
	var b strings.Builder

	b.WriteString(Title.Render("Algorithm recommendations"))
	b.WriteString("\n")
	b.WriteString(Subtitle.Render(fmt.Sprintf("hardware %s, threat %s, attack %s, minimum %s (%s predictor)",
		report.Hardware, report.Threat, report.AttackType,
		models.HumanizeSeconds(report.ThresholdSeconds), report.Predictor)))
	b.WriteString("\n\n")

	qualifying := 0
	for _, rec := range report.Candidates {
		if rec.MeetsThreshold {
			qualifying++
		}
	}
	if qualifying == 0 {
		b.WriteString(RiskWeak.Render("No algorithm meets the threshold. Showing strongest anyway."))
		b.WriteString("\n")
	}

	for _, rec := range report.Candidates {
		mark := " "
		if rec.MeetsThreshold {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("  %s %-10s | %-10s | %3d bits | %14s | %s\n",
			mark, rec.Algorithm, rec.Family, rec.KeyBitsEffective,
			rec.EstimatedHuman, RiskStyle(rec.Risk).Render(rec.Risk)))
	}

	return b.String()
}
