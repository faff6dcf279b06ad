package normalize

import "testing"

func TestLineStripsBullets(t *testing.T) {
	got := Line("• Grilled Salmon")
	if got != "Grilled Salmon" {
		t.Errorf("Expected %q, got %q", "Grilled Salmon", got)
	}

	got = Line("▪ ▪ Pad   Thai ")
	if got != "Pad Thai" {
		t.Errorf("Expected %q, got %q", "Pad Thai", got)
	}
}

func TestLineCollapsesWhitespace(t *testing.T) {
	got := Line("  Caesar \t Salad  ")
	if got != "Caesar Salad" {
		t.Errorf("Expected %q, got %q", "Caesar Salad", got)
	}
}

func TestLineBlankInput(t *testing.T) {
	if got := Line("   \t "); got != "" {
		t.Errorf("Blank input should normalize to empty string, got %q", got)
	}
}

func TestLineIdempotent(t *testing.T) {
	inputs := []string{
		"• Grilled  Salmon ",
		"PASTA PRIMAVERA",
		"a delicate blend of seasonal vegetables",
		"",
	}
	for _, in := range inputs {
		once := Line(in)
		twice := Line(once)
		if once != twice {
			t.Errorf("Line not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestStripPriceTrailingAmount(t *testing.T) {
	got := StripPrice("Caesar Salad 12.99")
	if got != "Caesar Salad" {
		t.Errorf("Expected %q, got %q", "Caesar Salad", got)
	}
}

func TestStripPriceCurrencyAndSuffix(t *testing.T) {
	got := StripPrice("Lobster Roll $18.99+")
	if got != "Lobster Roll" {
		t.Errorf("Expected %q, got %q", "Lobster Roll", got)
	}
}

func TestStripPriceTwoAmounts(t *testing.T) {
	got := StripPrice("Wings 9.99 / 15.99")
	if got != "Wings" {
		t.Errorf("Expected %q, got %q", "Wings", got)
	}
}

func TestStripPricePriceOnlyLine(t *testing.T) {
	if got := StripPrice("14"); got != "" {
		t.Errorf("Price-only line should strip to empty, got %q", got)
	}
	if got := StripPrice("$9.50"); got != "" {
		t.Errorf("Price-only line should strip to empty, got %q", got)
	}
}

func TestStripPriceLeavesPlainNames(t *testing.T) {
	got := StripPrice("Margherita Pizza")
	if got != "Margherita Pizza" {
		t.Errorf("Line without price should be unchanged, got %q", got)
	}
}

func TestFoldAccents(t *testing.T) {
	got := FoldAccents("Crème Brûlée")
	if got != "Creme Brulee" {
		t.Errorf("Expected %q, got %q", "Creme Brulee", got)
	}
}
