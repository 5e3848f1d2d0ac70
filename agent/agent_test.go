package agent

import (
	"bytes"
	"strings"
	"testing"
)

func TestSystemInstructionCarriesReports(t *testing.T) {
	a := New(&bytes.Buffer{}, strings.NewReader(""), "# Realized Profit\n| AAPL | +$1 |", "# Current Positions")

	si := a.systemInstruction()
	if len(si.Parts) != 1 {
		t.Fatalf("want a single part, got %d", len(si.Parts))
	}
	text := si.Parts[0].Text
	for _, want := range []string{"# Realized Profit", "# Current Positions", "cannot modify the journal"} {
		if !strings.Contains(text, want) {
			t.Errorf("system instruction misses %q", want)
		}
	}
}
