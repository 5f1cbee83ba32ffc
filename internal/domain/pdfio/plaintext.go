package pdfio

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// plainTextDocument is the fallback backend. It yields page text only, so
// PageTables always reports ErrTablesUnavailable and callers use their
// text-line scanning path.
type plainTextDocument struct {
	reader *pdf.Reader
}

func openPlainText(path string) (Document, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plain-text backend: %w", err)
	}
	return &plainTextDocument{reader: r}, nil
}

func (d *plainTextDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *plainTextDocument) PageText(page int) (string, error) {
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("page %d text: %w", page, err)
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

func (d *plainTextDocument) PageTables(int) ([][][]string, error) {
	return nil, ErrTablesUnavailable
}

func (d *plainTextDocument) Close() error {
	return nil
}
