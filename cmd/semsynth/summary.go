// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/semsynth/validate"
)

var (
	colorPass  = lipgloss.Color("42")
	colorFail  = lipgloss.Color("196")
	colorMuted = lipgloss.Color("244")
	colorHead  = lipgloss.Color("33")
)

const (
	nameWidth = 28
	cellWidth = 10
)

// renderSummary lays out one line per construct (alpha, CR, AVE, VIF,
// R²) followed by the overall verdict and its issues.
func renderSummary(rep *validate.Report, constructs []string, noColor bool) string {
	name := lipgloss.NewStyle().Width(nameWidth)
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		name.Render("construct"),
		cell.Render("alpha"), cell.Render("CR"), cell.Render("AVE"),
		cell.Render("VIF"), cell.Render("R²"))
	lines := []string{stylize(header, noColor, colorHead)}

	for _, c := range constructs {
		rel, ok := rep.Reliability[c]
		if !ok {
			lines = append(lines, stylize(name.Render(truncate(c))+" not scored", noColor, colorMuted))
			continue
		}
		vif, r2 := "-", "-"
		vifOK := true
		if v, ok := rep.Multicollinearity[c]; ok {
			vif, vifOK = fmt.Sprintf("%.2f", v.VIF), v.Acceptable
		}
		if r, ok := rep.StructuralModel.RSquared[c]; ok {
			r2 = fmt.Sprintf("%.3f", r.RSquared)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			name.Render(truncate(c)),
			stylize(cell.Render(fmt.Sprintf("%.3f", rel.CronbachAlpha)), noColor, verdict(rel.CronbachAcceptable)),
			stylize(cell.Render(fmt.Sprintf("%.3f", rel.CompositeReliability)), noColor, verdict(rel.CRAcceptable)),
			stylize(cell.Render(fmt.Sprintf("%.3f", rel.AVE)), noColor, verdict(rel.AVEAcceptable)),
			stylize(cell.Render(vif), noColor, verdict(vifOK)),
			cell.Render(r2),
		))
	}

	fit := rep.ModelFit
	lines = append(lines, stylize(fmt.Sprintf("rows %d  GoF %.3f (%s)  SRMR %.3f",
		rep.Rows, fit.GoF.Value, fit.GoF.Interpretation, fit.SRMR.Value), noColor, colorMuted))

	if rep.OverallValid {
		lines = append(lines, stylize("overall: valid", noColor, colorPass))
	} else {
		lines = append(lines, stylize(fmt.Sprintf("overall: %d issue(s)", len(rep.OverallIssues)), noColor, colorFail))
		for _, is := range rep.OverallIssues {
			lines = append(lines, "  - "+is.Construct+": "+is.Message)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func verdict(ok bool) lipgloss.Color {
	if ok {
		return colorPass
	}
	return colorFail
}

func stylize(text string, noColor bool, c lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(c).Render(text)
}

func truncate(s string) string {
	if len([]rune(s)) < nameWidth {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:nameWidth-2])) + "…"
}
