package pdftext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// columnGapThreshold is the minimum horizontal gap (in points) between
// fragments that reads as a column separator rather than word spacing.
const columnGapThreshold = 30.0

// minTableRows is how many consecutive multi-cell rows a region needs
// before it counts as a table.
const minTableRows = 2

// ExtractTables scans every page for tabular regions and serializes
// each one as a labeled block of row text. By design this strategy
// never returns an error: when no tables are found or the detector
// fails, the failure is reported as a formatted string so diagnostic
// consumers can display it alongside real output.
func ExtractTables(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return fmt.Sprintf("Error extracting tables: %v", err), nil
	}
	defer f.Close()

	var sb strings.Builder
	tableNr := 0
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		page := r.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		for _, table := range detectTables(groupRows(page.Content().Text)) {
			tableNr++
			sb.WriteString(fmt.Sprintf("Table %d:\n", tableNr))
			for _, row := range table {
				sb.WriteString(strings.Join(row, " | "))
				sb.WriteByte('\n')
			}
			sb.WriteByte('\n')
		}
	}

	if tableNr == 0 {
		return "Error extracting tables: no tables found", nil
	}
	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

// detectTables finds runs of consecutive rows that each split into two
// or more cells at column-sized gaps. Each run of at least minTableRows
// becomes one table, represented as rows of cell text.
func detectTables(rows []textRow) [][][]string {
	var tables [][][]string
	var current [][]string

	flush := func() {
		if len(current) >= minTableRows {
			tables = append(tables, current)
		}
		current = nil
	}

	for _, row := range rows {
		cells := splitCells(row)
		if len(cells) >= 2 {
			current = append(current, cells)
			continue
		}
		flush()
	}
	flush()
	return tables
}

// splitCells orders a row's fragments by X and breaks them into cells
// wherever the gap to the previous fragment exceeds the column gap
// threshold.
func splitCells(row textRow) []string {
	fragments := make([]pdf.Text, len(row.fragments))
	copy(fragments, row.fragments)
	sort.SliceStable(fragments, func(i, j int) bool { return fragments[i].X < fragments[j].X })

	var cells []string
	var cell strings.Builder
	prevEnd := -1.0
	for _, frag := range fragments {
		if prevEnd >= 0 && frag.X-prevEnd > columnGapThreshold {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		} else if prevEnd >= 0 && frag.X-prevEnd > wordGap(frag.FontSize) {
			cell.WriteByte(' ')
		}
		cell.WriteString(frag.S)
		prevEnd = frag.X + frag.W
	}
	if s := strings.TrimSpace(cell.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}
