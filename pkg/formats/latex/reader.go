package latex

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-cosmio/pkg/registry"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// Reader parses LaTeX tables produced by Writer back into a tabular
// container. Column names come back exactly as written, so display names
// applied on write are preserved on read.
type Reader struct{}

var _ registry.Reader = (*Reader)(nil)

// NewReader constructs the LaTeX reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadTable loads a LaTeX table file into a container of the requested
// class. A nil class selects the array-aware default.
func (r *Reader) ReadTable(ctx context.Context, src string, opts registry.ReadOptions) (table.Interface, error) {
	if ctx == nil {
		return nil, fmt.Errorf("latex: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	cls, err := table.ResolveClass(opts.TableClass)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var headers []string
	var rows [][]string

	inTabular := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || line == `\hline`:
			continue
		case strings.HasPrefix(line, `\begin{tabular}`):
			inTabular = true
			continue
		case strings.HasPrefix(line, `\end{tabular}`):
			inTabular = false
			continue
		case !inTabular:
			continue
		}

		cells, ok := splitRow(line)
		if !ok {
			continue
		}
		if headers == nil {
			headers = cells
			continue
		}
		rows = append(rows, cells)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("latex: read %q: %w", src, err)
	}
	if headers == nil {
		return nil, fmt.Errorf("latex: no tabular header found in %q", src)
	}

	tbl := cls()
	for i, name := range headers {
		col := table.Column{Name: name, Values: make([]any, 0, len(rows))}
		for _, row := range rows {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			col.Values = append(col.Values, table.ReadCell(cell))
		}
		if err := tbl.AppendColumn(col); err != nil {
			return nil, fmt.Errorf("latex: column %q: %w", name, err)
		}
	}
	return tbl, nil
}

// splitRow splits a tabular body line on the cell separator, trimming the
// trailing row terminator. Lines without a terminator are not table rows.
func splitRow(line string) ([]string, bool) {
	if !strings.HasSuffix(line, `\\`) {
		return nil, false
	}
	line = strings.TrimSpace(strings.TrimSuffix(line, `\\`))
	parts := strings.Split(line, "&")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells, true
}
