package main

import (
	"bytes"
	"encoding/csv"
	"testing"

	"outgo/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	expenses := []domain.Expense{
		{ID: "b", Amount: 3.5, Category: "food", Note: `say "hi", twice`, Date: "2025-03-02T09:00:00Z"},
		{ID: "a", Amount: 800, Category: "rent", Note: "", Date: "2025-03-01T12:00:00Z"},
	}

	var buf bytes.Buffer
	if err := writeCSV(&buf, expenses); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse csv: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][3] != "Amount" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "b" || rows[1][3] != "3.5" || rows[1][4] != `say "hi", twice` {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][0] != "a" || rows[2][3] != "800" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}
