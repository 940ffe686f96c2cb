// Package chart renders decimal to dozenal conversion tables for the CLI.
package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/dozwatch/internal/dozenal"
)

const groupSeparator = "|"

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

// PairLines lays out the two-digit conversions of 0..limit in cols column
// groups, filled top to bottom.
func PairLines(limit, cols int) ([]string, error) {
	if limit < 0 || limit > dozenal.MaxTwoDigit {
		return nil, fmt.Errorf("--max must be between 0 and %d", dozenal.MaxTwoDigit)
	}
	if cols < 1 {
		cols = 1
	}
	count := limit + 1
	if cols > count {
		cols = count
	}
	rowCount := (count + cols - 1) / cols

	headers := make([]string, 0, cols*3)
	rightAlign := map[int]bool{}
	for g := 0; g < cols; g++ {
		if g > 0 {
			headers = append(headers, groupSeparator)
		}
		rightAlign[len(headers)] = true
		headers = append(headers, "dec", "doz")
	}

	rows := make([][]string, 0, rowCount)
	for r := 0; r < rowCount; r++ {
		row := make([]string, 0, len(headers))
		for g := 0; g < cols; g++ {
			v := g*rowCount + r
			if v > limit {
				break
			}
			pair, err := dozenal.ConvertTwoDigit(v)
			if err != nil {
				return nil, err
			}
			if g > 0 {
				row = append(row, groupSeparator)
			}
			row = append(row, strconv.Itoa(v), pair)
		}
		rows = append(rows, row)
	}
	return formatTable(headers, rows, rightAlign), nil
}

// ColumnsFor returns how many column groups of a 0..limit chart fit in width.
func ColumnsFor(width, limit int) int {
	decWidth := len(strconv.Itoa(limit))
	if decWidth < len("dec") {
		decWidth = len("dec")
	}
	// "dec doz | " minus the trailing separator on the last group.
	groupWidth := decWidth + len(" doz | ")
	cols := (width + 2) / groupWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// Write prints lines to w, styling the header line when styled is set.
func Write(w io.Writer, lines []string, styled bool) error {
	for i, line := range lines {
		if i == 0 && styled {
			line = headerStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
