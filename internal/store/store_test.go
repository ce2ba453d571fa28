package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lib.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	return s, path
}

func TestStoreExpressionRoundTrip(t *testing.T) {
	s, path := openTemp(t)

	e, err := boolexpr.Parse("!(A B) + C @ D")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := s.PutExpression("f1", e); err != nil {
		t.Fatalf("PutExpression: %v", err)
	}

	got, err := s.GetExpression("f1")
	if err != nil {
		t.Fatalf("GetExpression: %v", err)
	}
	if boolexpr.Text(got) != boolexpr.Text(e) {
		t.Errorf("round trip changed expression: got %q, want %q", boolexpr.Text(got), boolexpr.Text(e))
	}

	// Close and reopen to verify persistence.
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err = s2.GetExpression("f1")
	if err != nil {
		t.Fatalf("GetExpression after reopen: %v", err)
	}
	eq, err := boolexpr.Equal(got, e)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Errorf("expression changed across reopen: got %q", boolexpr.Text(got))
	}
}

func TestStoreTableRoundTrip(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	tbl, err := truthtable.ParseCompact(":A,B,C:Y:5440")
	if err != nil {
		t.Fatalf("ParseCompact: %v", err)
	}
	if err := s.PutTable("maj3", tbl); err != nil {
		t.Fatalf("PutTable: %v", err)
	}

	got, err := s.GetTable("maj3")
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	if got.Compact() != tbl.Compact() {
		t.Errorf("round trip changed table: got %q, want %q", got.Compact(), tbl.Compact())
	}
}

func TestStoreOverwrite(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	first, _ := boolexpr.Parse("A")
	second, _ := boolexpr.Parse("A + B")
	if err := s.PutExpression("f", first); err != nil {
		t.Fatalf("PutExpression: %v", err)
	}
	if err := s.PutExpression("f", second); err != nil {
		t.Fatalf("PutExpression overwrite: %v", err)
	}

	got, err := s.GetExpression("f")
	if err != nil {
		t.Fatalf("GetExpression: %v", err)
	}
	if boolexpr.Text(got) != "A + B" {
		t.Errorf("got %q after overwrite, want %q", boolexpr.Text(got), "A + B")
	}

	names, err := s.ListExpressions()
	if err != nil {
		t.Fatalf("ListExpressions: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("overwrite created %d entries, want 1", len(names))
	}
}

func TestStoreList(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	names, err := s.ListExpressions()
	if err != nil {
		t.Fatalf("ListExpressions on empty store: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("empty store lists %v", names)
	}

	e, _ := boolexpr.Parse("A B")
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.PutExpression(name, e); err != nil {
			t.Fatalf("PutExpression(%q): %v", name, err)
		}
	}
	tbl, _ := truthtable.ParseCompact(":A:Y:4")
	if err := s.PutTable("only", tbl); err != nil {
		t.Fatalf("PutTable: %v", err)
	}

	names, err = s.ListExpressions()
	if err != nil {
		t.Fatalf("ListExpressions: %v", err)
	}
	if want := []string{"alpha", "mid", "zeta"}; !reflect.DeepEqual(names, want) {
		t.Errorf("ListExpressions = %v, want %v", names, want)
	}

	tables, err := s.ListTables()
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if want := []string{"only"}; !reflect.DeepEqual(tables, want) {
		t.Errorf("ListTables = %v, want %v", tables, want)
	}
}

func TestStoreSeparateNamespaces(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	e, _ := boolexpr.Parse("A + B")
	tbl, _ := truthtable.ParseCompact(":A,B:Y:54")
	if err := s.PutExpression("or", e); err != nil {
		t.Fatalf("PutExpression: %v", err)
	}
	if err := s.PutTable("or", tbl); err != nil {
		t.Fatalf("PutTable: %v", err)
	}

	if err := s.DeleteExpression("or"); err != nil {
		t.Fatalf("DeleteExpression: %v", err)
	}
	if _, err := s.GetTable("or"); err != nil {
		t.Errorf("deleting the expression removed the table: %v", err)
	}
}

func TestStoreDeleteAndNotFound(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	e, _ := boolexpr.Parse("A")
	if err := s.PutExpression("f", e); err != nil {
		t.Fatalf("PutExpression: %v", err)
	}
	if err := s.DeleteExpression("f"); err != nil {
		t.Fatalf("DeleteExpression: %v", err)
	}

	if _, err := s.GetExpression("f"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetExpression after delete: %v, want ErrNotFound", err)
	}
	if err := s.DeleteExpression("f"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteExpression of missing name: %v, want ErrNotFound", err)
	}
	if _, err := s.GetTable("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTable of missing name: %v, want ErrNotFound", err)
	}
	if err := s.DeleteTable("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTable of missing name: %v, want ErrNotFound", err)
	}
}

func TestStoreSchemaVersionMismatch(t *testing.T) {
	s, path := openTemp(t)
	if err := s.setMetadataUnlocked("schema_version", "99"); err != nil {
		t.Fatalf("setMetadataUnlocked: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("Open accepted a database with schema version 99")
	}
}
