package extract

import (
	"strings"
	"testing"
)

func TestContextWindow(t *testing.T) {
	t.Parallel()

	t.Run("short text returned whole", func(t *testing.T) {
		t.Parallel()

		text := "Rs. 1,000 plan"
		got := contextWindow(text, 0, 9, DefaultContextWidth)
		if got != text {
			t.Errorf("contextWindow() = %q, want %q", got, text)
		}
	})

	t.Run("long text truncated with markers", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 100) + "Rs. 999" + strings.Repeat("b", 100)
		got := contextWindow(text, 100, 107, 10)

		if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
			t.Errorf("contextWindow() = %q, want leading and trailing markers", got)
		}
		if !strings.Contains(got, "Rs. 999") {
			t.Errorf("contextWindow() = %q, want match text preserved", got)
		}
	})

	t.Run("multibyte boundary is not split", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("සි", 40) + " රු. 500 " + strings.Repeat("සි", 40)
		start := strings.Index(text, "රු")
		got := contextWindow(text, start, start+len("රු. 500"), 25)

		for _, r := range got {
			if r == '�' {
				t.Fatalf("contextWindow() = %q contains replacement rune", got)
			}
		}
		if !strings.Contains(got, "500") {
			t.Errorf("contextWindow() = %q, want match text preserved", got)
		}
	})
}

func TestFirstOccurrenceWindow(t *testing.T) {
	t.Parallel()

	got := firstOccurrenceWindow("Enjoy FIBER speeds at home", "fiber", DefaultContextWidth)
	if !strings.Contains(got, "FIBER") {
		t.Errorf("firstOccurrenceWindow() = %q, want original casing preserved", got)
	}

	if got := firstOccurrenceWindow("no keyword here", "fiber", DefaultContextWidth); got != "" {
		t.Errorf("firstOccurrenceWindow() = %q, want empty for absent needle", got)
	}
}
