package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Column is a named column with per-row cell values. Unit and Format are
// presentation hints carried through to writers; neither participates in
// column identity.
type Column struct {
	Name   string
	Values []any
	Unit   string
	Format string
}

// Interface is the capability required of tabular containers. Writers accept
// any implementation; the built-in ones are NewArray and NewPlain.
type Interface interface {
	ColNames() []string
	NumCols() int
	NumRows() int
	AppendColumn(col Column) error
	Column(name string) (Column, bool)
	RenameColumn(oldName, newName string) error
	Meta() map[string]any
}

// Class constructs an empty container. It is the value callers pass to
// select between the built-in container kinds.
type Class func() Interface

type columns struct {
	cols []Column
	meta map[string]any
}

// ArrayTable keeps cell values as supplied, including array-valued cells,
// and carries units on columns.
type ArrayTable struct {
	columns
}

// PlainTable flattens every cell to a formatted string when the column is
// appended. Units are kept but array structure is lost.
type PlainTable struct {
	columns
}

// NewArray returns an empty array-aware container. This is the default
// container kind used by writers.
func NewArray() Interface {
	return &ArrayTable{columns{meta: make(map[string]any)}}
}

// NewPlain returns an empty plain container.
func NewPlain() Interface {
	t := &PlainTable{columns{meta: make(map[string]any)}}
	return t
}

func (c *columns) ColNames() []string {
	names := make([]string, len(c.cols))
	for i, col := range c.cols {
		names[i] = col.Name
	}
	return names
}

func (c *columns) NumCols() int {
	return len(c.cols)
}

func (c *columns) NumRows() int {
	if len(c.cols) == 0 {
		return 0
	}
	rows := len(c.cols[0].Values)
	for _, col := range c.cols[1:] {
		if len(col.Values) > rows {
			rows = len(col.Values)
		}
	}
	return rows
}

func (c *columns) Column(name string) (Column, bool) {
	for _, col := range c.cols {
		if col.Name == name {
			return cloneColumn(col), true
		}
	}
	return Column{}, false
}

func (c *columns) RenameColumn(oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("table: new column name is required")
	}
	for i := range c.cols {
		if c.cols[i].Name == oldName {
			c.cols[i].Name = newName
			return nil
		}
	}
	return fmt.Errorf("table: column %q not found", oldName)
}

func (c *columns) Meta() map[string]any {
	return c.meta
}

func (c *columns) appendColumn(col Column) error {
	if strings.TrimSpace(col.Name) == "" {
		return fmt.Errorf("table: column name is required")
	}
	for _, existing := range c.cols {
		if existing.Name == col.Name {
			return fmt.Errorf("table: column %q already present", col.Name)
		}
	}
	c.cols = append(c.cols, cloneColumn(col))
	return nil
}

// AppendColumn adds a column, preserving cell values as given.
func (t *ArrayTable) AppendColumn(col Column) error {
	return t.appendColumn(col)
}

// AppendColumn adds a column with every cell flattened to text.
func (t *PlainTable) AppendColumn(col Column) error {
	flat := Column{Name: col.Name, Unit: col.Unit, Format: col.Format}
	flat.Values = make([]any, len(col.Values))
	for i, v := range col.Values {
		flat.Values[i] = FormatCell(v, col.Format)
	}
	return t.appendColumn(flat)
}

func cloneColumn(col Column) Column {
	out := col
	out.Values = append([]any(nil), col.Values...)
	return out
}

// FormatCell renders a single cell value as text. Array-valued cells are
// bracketed with comma-separated elements, matching what ReadCell parses.
func FormatCell(v any, format string) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatFloat(val, format)
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = formatFloat(f, format)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ReadCell parses cell text produced by FormatCell back into a value,
// preferring float64 and []float64 where the text allows it.
func ReadCell(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		if inner == "" {
			return []float64{}
		}
		parts := strings.Split(inner, ",")
		out := make([]float64, 0, len(parts))
		for _, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return trimmed
			}
			out = append(out, f)
		}
		return out
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return trimmed
}

func formatFloat(f float64, format string) string {
	if format != "" {
		return fmt.Sprintf(format, f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
