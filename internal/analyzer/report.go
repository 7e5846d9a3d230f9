package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"bigocheck/internal/config"
	"bigocheck/internal/models"

	"github.com/fatih/color"
)

// ReportGenerator handles formatting and displaying analysis results
type ReportGenerator struct {
	format string
	config *config.Config
}

func NewReportGenerator(format string) *ReportGenerator {
	return &ReportGenerator{
		format: format,
		config: config.DefaultConfig(),
	}
}

func NewReportGeneratorWithConfig(cfg *config.Config) *ReportGenerator {
	return &ReportGenerator{
		format: cfg.Output.Format,
		config: cfg,
	}
}

// Generate creates a formatted report for one analyzed snippet.
func (r *ReportGenerator) Generate(name string, result *models.AnalysisResult) string {
	switch r.format {
	case "json":
		return r.generateJSON(result)
	default:
		return r.generateConsole(name, result)
	}
}

func (r *ReportGenerator) generateJSON(result *models.AnalysisResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating JSON report: %v", err)
	}
	return string(data) + "\n"
}

func (r *ReportGenerator) generateConsole(name string, result *models.AnalysisResult) string {
	var report strings.Builder

	useColors := true
	showRationale := true
	if r.config != nil {
		useColors = r.config.Output.Colors
		showRationale = r.config.Output.ShowRationale
	}

	if useColors {
		report.WriteString(color.CyanString("🔍 bigocheck: %s\n", name))
		report.WriteString(color.WhiteString("═══════════════════════════════════════\n\n"))
	} else {
		report.WriteString(fmt.Sprintf("bigocheck: %s\n", name))
		report.WriteString("=======================================\n\n")
	}

	r.writeEstimate(&report, result, useColors)

	report.WriteString(fmt.Sprintf("   Loops: %d (max nesting depth %d)\n",
		result.Loops.Count, result.Loops.MaxDepth))
	if len(result.Tags) > 0 {
		if useColors {
			report.WriteString(fmt.Sprintf("   Tags: %s\n", color.CyanString(strings.Join(result.Tags, ", "))))
		} else {
			report.WriteString(fmt.Sprintf("   Tags: %s\n", strings.Join(result.Tags, ", ")))
		}
	}
	report.WriteString("\n")

	if showRationale && len(result.Why) > 0 {
		if useColors {
			report.WriteString(color.WhiteString("💭 Rationale:\n"))
		} else {
			report.WriteString("Rationale:\n")
		}
		for _, why := range result.Why {
			if useColors {
				report.WriteString(color.GreenString("   • %s\n", why))
			} else {
				report.WriteString(fmt.Sprintf("   - %s\n", why))
			}
		}
		report.WriteString("\n")
	}

	return report.String()
}

// writeEstimate writes the headline Big-O estimate, color-coded by severity.
func (r *ReportGenerator) writeEstimate(report *strings.Builder, result *models.AnalysisResult, useColors bool) {
	if !useColors {
		report.WriteString(fmt.Sprintf("Estimated complexity: %s (confidence %.2f)\n\n",
			result.Time.BigO, result.Time.Confidence))
		return
	}

	emoji, classColor := r.estimateDisplay(result.Time.BigO)
	report.WriteString(fmt.Sprintf("%s Estimated complexity: %s %s\n\n",
		emoji, classColor(result.Time.BigO),
		color.WhiteString("(confidence %.2f)", result.Time.Confidence)))
}

func (r *ReportGenerator) estimateDisplay(bigO string) (string, func(a ...interface{}) string) {
	switch bigO {
	case "O(1)", "O(log n)":
		return "🌟", color.New(color.FgGreen).SprintFunc()
	case "O(n)", "O(n log n)":
		return "⚡", color.New(color.FgYellow).SprintFunc()
	case "O(n^2)", "O(n^3)":
		return "⚠️", color.New(color.FgHiYellow).SprintFunc()
	case "O(2^n)", "O(n!)":
		return "🚨", color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		return "❓", color.New(color.FgWhite).SprintFunc()
	}
}
