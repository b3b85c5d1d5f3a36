// Package export renders and reads drawn assignments: JSON and CSV for files,
// an aligned table for terminals, and a one-line share message per pair.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/katalvlaran/secretsanta/matching"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format selects an output encoding.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	CSV   Format = "csv"
)

// ParseFormat accepts "table", "json" or "csv", case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Table, JSON, CSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options tunes rendering. Only the table honours Colour.
type Options struct {
	Colour bool
}

// Write renders a in the given format.
func Write(w io.Writer, a matching.Assignment, f Format, opts Options) error {
	switch f {
	case Table:
		return WriteTable(w, a, opts)
	case JSON:
		return WriteJSON(w, a)
	case CSV:
		return WriteCSV(w, a)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteJSON writes a as an indented array of {"giver","receiver"} objects.
func WriteJSON(w io.Writer, a matching.Assignment) error {
	if a == nil {
		a = matching.Assignment{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(a)
}

// ReadJSON parses the output of WriteJSON.
func ReadJSON(r io.Reader) (matching.Assignment, error) {
	var a matching.Assignment
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("export: decoding assignment: %w", err)
	}

	return a, nil
}

// WriteCSV writes a "giver,receiver" header followed by one row per pair.
func WriteCSV(w io.Writer, a matching.Assignment) error {
	cw := csv.NewWriter(w)
	rows := append([][]string{{"giver", "receiver"}}, lo.Map(a, func(p matching.Pair, _ int) []string {
		return []string{p.Giver, p.Receiver}
	})...)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("export: writing csv: %w", err)
	}

	return nil
}

// WriteTable renders a as a borderless two-column table.
func WriteTable(w io.Writer, a matching.Assignment, opts Options) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Giver", "Is buying for"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	if opts.Colour {
		table.SetHeaderColor(
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgGreenColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgRedColor},
		)
	}

	for _, p := range a {
		table.Append([]string{p.Giver, p.Receiver})
	}
	table.Render()

	return nil
}

// ShareMessage is the text a giver receives privately.
func ShareMessage(p matching.Pair) string {
	return fmt.Sprintf("Hi %s! You are the Secret Santa for %s 🤫", p.Giver, p.Receiver)
}

// Headline styles a section title for terminals; plain text when colour is off.
func Headline(title string, colour bool) string {
	if !colour {
		return title
	}

	return color.New(color.OpBold, color.FgRed).Render(title)
}
