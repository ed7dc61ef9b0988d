package handlers

import (
	"reflect"
	"testing"
)

// TestParsePeriodValid проверяет корректный разбор дат поездки.
func TestParsePeriodValid(t *testing.T) {
	start, end, err := parsePeriod("2025-11-10", "2025-11-13")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if start.Format(dateLayout) != "2025-11-10" {
		t.Fatalf("unexpected start: %s", start.Format(dateLayout))
	}
	if end.Format(dateLayout) != "2025-11-13" {
		t.Fatalf("unexpected end: %s", end.Format(dateLayout))
	}

	if _, _, err := parsePeriod("2025-11-10", "2025-11-10"); err != nil {
		t.Fatalf("expected single-day trip to be valid, got %v", err)
	}
}

// TestParsePeriodInvalid проверяет ошибки при неверных датах.
func TestParsePeriodInvalid(t *testing.T) {
	if _, _, err := parsePeriod("2025/11/10", "2025-11-13"); err == nil {
		t.Fatal("expected error for invalid start format")
	}

	if _, _, err := parsePeriod("2025-11-14", "2025-11-13"); err == nil {
		t.Fatal("expected error for end before start")
	}
}

// TestNormalizeInterests проверяет очистку списка интересов.
func TestNormalizeInterests(t *testing.T) {
	got := normalizeInterests([]string{" Heritage", "food", "", "Food ", "heritage", "Nature"})
	want := []string{"Heritage", "food", "Nature"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := normalizeInterests(nil); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
