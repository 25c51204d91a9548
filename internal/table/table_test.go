package table

import (
	"reflect"
	"testing"
)

func TestEnsureColumnAddsDefault(t *testing.T) {
	tbl := Table{
		Header:  []string{"order_id"},
		Records: [][]string{{"a"}, {"b"}},
	}

	got := tbl.EnsureColumn("order_status", "unknown")
	if !got.HasColumn("order_status") {
		t.Fatalf("expected order_status column")
	}
	if want := []string{"unknown", "unknown"}; !reflect.DeepEqual(got.Column("order_status"), want) {
		t.Fatalf("unexpected column values: %v", got.Column("order_status"))
	}
	if got.NumRows() != 2 {
		t.Fatalf("row count changed: %d", got.NumRows())
	}
}

func TestEnsureColumnIdempotent(t *testing.T) {
	tbl := Table{
		Header:  []string{"order_id", "order_status"},
		Records: [][]string{{"a", "delivered"}},
	}

	once := tbl.EnsureColumn("order_status", "unknown")
	twice := once.EnsureColumn("order_status", "unknown")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("EnsureColumn not idempotent: %v vs %v", once, twice)
	}
	if once.Column("order_status")[0] != "delivered" {
		t.Fatalf("existing values must be preserved")
	}
}

func TestColumnAbsentAndRagged(t *testing.T) {
	tbl := Table{
		Header:  []string{"a", "b"},
		Records: [][]string{{"1", "2"}, {"3"}},
	}

	if got := tbl.Column("missing"); !reflect.DeepEqual(got, []string{"", ""}) {
		t.Fatalf("absent column should yield empty strings, got %v", got)
	}
	if got := tbl.Column("b"); !reflect.DeepEqual(got, []string{"2", ""}) {
		t.Fatalf("short rows should yield empty cells, got %v", got)
	}
}

func TestEmptyTable(t *testing.T) {
	tbl := Empty()
	if !tbl.IsEmpty() || tbl.NumRows() != 0 {
		t.Fatalf("Empty() should have zero rows")
	}
	got := tbl.EnsureColumn("x", "def")
	if !got.HasColumn("x") || got.NumRows() != 0 {
		t.Fatalf("guarantor on empty table should add header only")
	}
}
