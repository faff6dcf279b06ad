package htmltext

import "testing"

func TestLinesFromList(t *testing.T) {
	doc := `<html><body><ul><li>Caesar Salad</li><li>Tomato Soup</li></ul></body></html>`
	lines := Lines(doc)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "Caesar Salad" || lines[1] != "Tomato Soup" {
		t.Errorf("Unexpected lines: %v", lines)
	}
}

func TestLinesSkipsScriptAndStyle(t *testing.T) {
	doc := `<div>Pad Thai</div><script>var menu = "fake";</script><style>.x{}</style>`
	lines := Lines(doc)
	if len(lines) != 1 || lines[0] != "Pad Thai" {
		t.Errorf("Script/style content should be skipped, got %v", lines)
	}
}

func TestLinesBreakOnBr(t *testing.T) {
	doc := `<p>Caesar Salad<br>Tomato Soup</p>`
	lines := Lines(doc)
	if len(lines) != 2 {
		t.Errorf("Expected br to split lines, got %v", lines)
	}
}

func TestLinesPlainTextPassthrough(t *testing.T) {
	lines := Lines("Caesar Salad\nTomato Soup\n")
	if len(lines) != 2 {
		t.Errorf("Plain text should pass through split on newlines, got %v", lines)
	}
}

func TestLinesEmptyInput(t *testing.T) {
	if lines := Lines(""); len(lines) != 0 {
		t.Errorf("Empty input should yield no lines, got %v", lines)
	}
}
