// Package convert maps cosmology records onto tabular containers and back.
// The record occupies a single row; the first two columns are always the
// model class identifier and the instance name, in that order.
package convert

import (
	"fmt"

	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// ColClass and ColName are the reserved leading column names. Writers never
// rename them.
const (
	ColClass = "cosmology"
	ColName  = "name"
)

// ToTable builds a one-row table from a record using the supplied container
// class. A nil class selects the array-aware default.
func ToTable(cosmo *cosmology.Cosmology, cls table.Class) (table.Interface, error) {
	if cosmo == nil {
		return nil, fmt.Errorf("convert: cosmology record is required")
	}
	if cls == nil {
		cls = table.NewArray
	}

	tbl := cls()
	if err := tbl.AppendColumn(table.Column{Name: ColClass, Values: []any{cosmo.Class()}}); err != nil {
		return nil, fmt.Errorf("convert: build table: %w", err)
	}
	if err := tbl.AppendColumn(table.Column{Name: ColName, Values: []any{cosmo.Name()}}); err != nil {
		return nil, fmt.Errorf("convert: build table: %w", err)
	}

	for _, p := range cosmo.Parameters() {
		col := table.Column{Name: p.Name, Values: []any{p.Value}, Unit: p.Unit}
		if err := tbl.AppendColumn(col); err != nil {
			return nil, fmt.Errorf("convert: parameter %q: %w", p.Name, err)
		}
	}

	for k, v := range cosmo.Meta() {
		tbl.Meta()[k] = v
	}
	return tbl, nil
}

// FromTable reconstructs a record from a one-row table whose parameter
// columns still carry their internal names. Renamed display columns stay as
// written; they are returned as parameters under the written name.
func FromTable(tbl table.Interface) (*cosmology.Cosmology, error) {
	if tbl == nil {
		return nil, fmt.Errorf("convert: table is required")
	}
	if tbl.NumRows() != 1 {
		return nil, fmt.Errorf("convert: expected a one-row table, got %d rows", tbl.NumRows())
	}

	classCol, ok := tbl.Column(ColClass)
	if !ok {
		return nil, fmt.Errorf("convert: column %q is required", ColClass)
	}
	nameCol, ok := tbl.Column(ColName)
	if !ok {
		return nil, fmt.Errorf("convert: column %q is required", ColName)
	}

	var params []cosmology.Parameter
	for _, colName := range tbl.ColNames() {
		if colName == ColClass || colName == ColName {
			continue
		}
		col, _ := tbl.Column(colName)
		params = append(params, cosmology.Parameter{
			Name:  col.Name,
			Value: cellValue(col),
			Unit:  col.Unit,
		})
	}

	var opts []cosmology.Option
	if meta := tbl.Meta(); len(meta) > 0 {
		opts = append(opts, cosmology.WithMeta(meta))
	}
	return cosmology.New(cellText(classCol), cellText(nameCol), params, opts...)
}

func cellValue(col table.Column) any {
	if len(col.Values) == 0 {
		return nil
	}
	if text, ok := col.Values[0].(string); ok {
		return table.ReadCell(text)
	}
	return col.Values[0]
}

func cellText(col table.Column) string {
	if len(col.Values) == 0 {
		return ""
	}
	return table.FormatCell(col.Values[0], "")
}
