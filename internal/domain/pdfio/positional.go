package pdfio

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// positionalDocument is the primary backend. It reads word positions, so it
// can rebuild table rows by clustering words on horizontal gaps.
type positionalDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func openPositional(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open positional backend: %w", err)
	}
	return &positionalDocument{file: f, reader: r}, nil
}

func (d *positionalDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *positionalDocument) PageText(page int) (string, error) {
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		// Positional extraction can fail on odd content streams even when
		// the plain-text walk succeeds.
		text, terr := p.GetPlainText(nil)
		if terr != nil {
			return "", fmt.Errorf("page %d text: %w", page, err)
		}
		return text, nil
	}

	var lines []string
	for _, row := range rows {
		var words []string
		for _, word := range row.Content {
			if s := strings.TrimSpace(word.S); s != "" {
				words = append(words, s)
			}
		}
		if len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (d *positionalDocument) PageTables(page int) ([][][]string, error) {
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("page %d rows: %w", page, err)
	}

	var table [][]string
	for _, row := range rows {
		cells := clusterCells(row.Content)
		if len(cells) >= 2 {
			table = append(table, cells)
		}
	}
	if len(table) == 0 {
		return nil, nil
	}
	return [][][]string{table}, nil
}

func (d *positionalDocument) Close() error {
	return d.file.Close()
}

// clusterCells splits one text row into cells wherever the horizontal gap
// between consecutive words exceeds what intra-cell word spacing would
// produce.
func clusterCells(words []pdf.Text) []string {
	items := make([]pdf.Text, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.S) != "" {
			items = append(items, w)
		}
	}
	if len(items) == 0 {
		return nil
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].X < items[j].X })

	var cells []string
	var current strings.Builder
	current.WriteString(items[0].S)
	prevEnd := items[0].X + items[0].W

	for _, word := range items[1:] {
		gap := word.X - prevEnd
		if gap > cellGap(word.FontSize) {
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		} else if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word.S)
		if end := word.X + word.W; end > prevEnd {
			prevEnd = end
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}

func cellGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 12
	}
	gap := fontSize * 1.5
	if gap < 12 {
		gap = 12
	}
	return gap
}
