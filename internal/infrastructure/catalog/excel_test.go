package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestParseXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Number", "Floor", "Category"},
		{"101", 1, "single_standard"},
		{"102", 1, "Suite"},
		{"", 1, "studio"}, // blank room number, skipped
		{"201", 2, "business"},
	})

	entries, err := ParseXLSX(buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Number != "101" || entries[0].Floor != 1 || entries[0].Category != "single_standard" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Category != "suite" {
		t.Fatalf("category must be lowercased, got %q", entries[1].Category)
	}
	if entries[2].Floor != 2 {
		t.Fatalf("unexpected floor: %+v", entries[2])
	}
}

func TestParseXLSX_HeaderOrderIndependent(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Category", "Number", "Floor"},
		{"suite", "301", 3},
	})

	entries, err := ParseXLSX(buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Number != "301" || entries[0].Floor != 3 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestParseXLSX_MissingColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Number", "Floor"},
		{"101", 1},
	})

	if _, err := ParseXLSX(buf); err == nil || !strings.Contains(err.Error(), "category") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestParseXLSX_InvalidFloor(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Number", "Floor", "Category"},
		{"101", "ground", "suite"},
	})

	if _, err := ParseXLSX(buf); err == nil {
		t.Fatal("expected invalid floor error")
	}
}

func TestParseXLSX_HeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Number", "Floor", "Category"},
	})

	entries, err := ParseXLSX(buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestParseXLSX_NotAWorkbook(t *testing.T) {
	if _, err := ParseXLSX(strings.NewReader("definitely not xlsx")); err == nil {
		t.Fatal("expected parse error")
	}
}
