package pages

import "testing"

func TestStringCell(t *testing.T) {
	cell := StringCell("hello")
	if cell.String() != "hello" {
		t.Fatalf("string: got %q", cell.String())
	}
	if err := cell.SetString("world"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if cell.Get() != "world" {
		t.Fatalf("get: got %q", cell.Get())
	}
}

func TestIntCell(t *testing.T) {
	cell := IntCell(42)
	if cell.String() != "42" {
		t.Fatalf("string: got %q", cell.String())
	}
	if err := cell.SetString("17"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if cell.Get() != 17 {
		t.Fatalf("get: got %d", cell.Get())
	}
}

func TestIntCellRejectsGarbageAndKeepsValue(t *testing.T) {
	cell := IntCell(42)
	if err := cell.SetString("not a number"); err == nil {
		t.Fatal("set string succeeded, want parse error")
	}
	if cell.Get() != 42 {
		t.Fatalf("get after failed set: got %d", cell.Get())
	}
}

func TestFloatCell(t *testing.T) {
	cell := FloatCell(1.5)
	if cell.String() != "1.5" {
		t.Fatalf("string: got %q", cell.String())
	}
	if err := cell.SetString("2.25"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if cell.Get() != 2.25 {
		t.Fatalf("get: got %v", cell.Get())
	}
}

func TestCellSet(t *testing.T) {
	cell := IntCell(1)
	cell.Set(9)
	if cell.String() != "9" {
		t.Fatalf("string after set: got %q", cell.String())
	}
}
