package table_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-cosmio/pkg/table"
)

func TestArrayTable_AppendAndLookup(t *testing.T) {
	t.Parallel()

	tbl := table.NewArray()
	if err := tbl.AppendColumn(table.Column{Name: "H0", Values: []any{67.66}, Unit: "km / (Mpc s)"}); err != nil {
		t.Fatalf("append column: %v", err)
	}
	if err := tbl.AppendColumn(table.Column{Name: "m_nu", Values: []any{[]float64{0, 0, 0.06}}, Unit: "eV"}); err != nil {
		t.Fatalf("append column: %v", err)
	}

	if got, want := tbl.NumCols(), 2; got != want {
		t.Fatalf("num cols: got %d want %d", got, want)
	}
	if got, want := tbl.NumRows(), 1; got != want {
		t.Fatalf("num rows: got %d want %d", got, want)
	}

	col, ok := tbl.Column("m_nu")
	if !ok {
		t.Fatal("column m_nu not found")
	}
	arr, ok := col.Values[0].([]float64)
	if !ok {
		t.Fatalf("array cell flattened: %T", col.Values[0])
	}
	if len(arr) != 3 || arr[2] != 0.06 {
		t.Fatalf("unexpected array cell: %v", arr)
	}
	if col.Unit != "eV" {
		t.Fatalf("unit lost: %q", col.Unit)
	}
}

func TestPlainTable_FlattensCells(t *testing.T) {
	t.Parallel()

	tbl := table.NewPlain()
	if err := tbl.AppendColumn(table.Column{Name: "m_nu", Values: []any{[]float64{0, 0, 0.06}}}); err != nil {
		t.Fatalf("append column: %v", err)
	}

	col, _ := tbl.Column("m_nu")
	text, ok := col.Values[0].(string)
	if !ok {
		t.Fatalf("plain cell should be text, got %T", col.Values[0])
	}
	if text != "[0, 0, 0.06]" {
		t.Fatalf("unexpected cell text: %q", text)
	}
}

func TestAppendColumn_Duplicate(t *testing.T) {
	t.Parallel()

	tbl := table.NewArray()
	if err := tbl.AppendColumn(table.Column{Name: "H0", Values: []any{70.0}}); err != nil {
		t.Fatalf("append column: %v", err)
	}
	err := tbl.AppendColumn(table.Column{Name: "H0", Values: []any{71.0}})
	if err == nil || !strings.Contains(err.Error(), "already present") {
		t.Fatalf("expected duplicate column error, got %v", err)
	}
}

func TestRenameColumn(t *testing.T) {
	t.Parallel()

	tbl := table.NewArray()
	if err := tbl.AppendColumn(table.Column{Name: "Om0", Values: []any{0.3}}); err != nil {
		t.Fatalf("append column: %v", err)
	}
	if err := tbl.RenameColumn("Om0", `$\Omega_{m,0}$`); err != nil {
		t.Fatalf("rename column: %v", err)
	}
	if got := tbl.ColNames()[0]; got != `$\Omega_{m,0}$` {
		t.Fatalf("rename not applied: %q", got)
	}
	if err := tbl.RenameColumn("missing", "x"); err == nil {
		t.Fatal("expected error renaming missing column")
	}
}

func TestResolveClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cls     any
		wantErr bool
	}{
		{name: "NilDefault", cls: nil},
		{name: "ArrayConstructor", cls: table.NewArray},
		{name: "PlainConstructor", cls: table.NewPlain},
		{name: "TypedClass", cls: table.Class(table.NewPlain)},
		{name: "GenericSlice", cls: []string{}, wantErr: true},
		{name: "Int", cls: 42, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cls, err := table.ResolveClass(tc.cls)
			if tc.wantErr {
				var classErr *table.ClassError
				if !errors.As(err, &classErr) {
					t.Fatalf("expected *table.ClassError, got %v", err)
				}
				if !strings.Contains(err.Error(), "'cls' must be") {
					t.Fatalf("error should name the requirement: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve class: %v", err)
			}
			if cls == nil || cls() == nil {
				t.Fatal("resolved class must construct a container")
			}
		})
	}
}

func TestFormatReadCellRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
	}{
		{name: "Scalar", in: 67.66},
		{name: "Array", in: []float64{0, 0, 0.06}},
		{name: "Text", in: "FlatLambdaCDM"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			text := table.FormatCell(tc.in, "")
			back := table.ReadCell(text)
			switch want := tc.in.(type) {
			case []float64:
				got, ok := back.([]float64)
				if !ok || len(got) != len(want) {
					t.Fatalf("array round trip: %v -> %q -> %v", tc.in, text, back)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("array element %d: got %v want %v", i, got[i], want[i])
					}
				}
			default:
				if back != tc.in {
					t.Fatalf("round trip: %v -> %q -> %v", tc.in, text, back)
				}
			}
		})
	}
}
