package lang

import "strings"

// Verdict is a language classification result.
type Verdict string

// Classification verdicts.
const (
	// VerdictEmpty means the input was blank or whitespace-only.
	VerdictEmpty Verdict = "empty"

	// VerdictNoText means the input contained no Sinhala or Latin letters
	// (digits, punctuation, or symbols only).
	VerdictNoText Verdict = "no_text"

	VerdictEnglish Verdict = "english"
	VerdictSinhala Verdict = "sinhala"

	// VerdictMixed means both scripts are present in meaningful amounts.
	VerdictMixed Verdict = "mixed"

	// VerdictOther means neither script dominates and neither reaches the
	// mixed-presence floor; typically transliterated or third-script text.
	VerdictOther Verdict = "other"
)

// Thresholds used by the classifier. These are fixed policy constants, not
// learned values: they are part of the classification contract, and any
// re-implementation must match them exactly to reproduce report output.
const (
	// DefaultDominantRatio is the share of counted letters one script must
	// exceed for a snippet to classify as that script alone.
	DefaultDominantRatio = 0.7

	// DefaultPresenceRatio is the floor both scripts must exceed for a
	// snippet to classify as mixed.
	DefaultPresenceRatio = 0.1

	// DefaultPageEnglishRatio is the English share a whole page must
	// exceed, over all non-space characters, to classify as english.
	DefaultPageEnglishRatio = 0.5
)

// Classifier scores text spans as english / sinhala / mixed / other by
// character-class ratio. It has two variants with deliberately different
// contracts: ClassifySnippet for short context windows around extracted
// facts, and ClassifyPage for whole-page bucketing. Both must be preserved
// as distinct because they are used in different decision contexts.
type Classifier struct {
	// dominantRatio gates the single-script snippet verdicts.
	dominantRatio float64

	// presenceRatio gates the mixed snippet verdict.
	presenceRatio float64

	// pageEnglishRatio gates the english whole-page verdict.
	pageEnglishRatio float64
}

// NewClassifier creates a Classifier with the default threshold contract.
func NewClassifier() *Classifier {
	return &Classifier{
		dominantRatio:    DefaultDominantRatio,
		presenceRatio:    DefaultPresenceRatio,
		pageEnglishRatio: DefaultPageEnglishRatio,
	}
}

// NewClassifierWithThresholds creates a Classifier with explicit
// thresholds. Callers normally use NewClassifier; this constructor exists
// so the thresholds stay a tunable configuration surface, not magic.
func NewClassifierWithThresholds(dominant, presence, pageEnglish float64) *Classifier {
	return &Classifier{
		dominantRatio:    dominant,
		presenceRatio:    presence,
		pageEnglishRatio: pageEnglish,
	}
}

// isSinhala reports whether the rune is in the Sinhala Unicode block
// (U+0D80 to U+0DFF).
func isSinhala(r rune) bool {
	return r >= 0x0D80 && r <= 0x0DFF
}

// isASCIIAlpha reports whether the rune is an ASCII letter.
func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// countScripts counts Sinhala-block and ASCII-alphabetic runes.
func countScripts(text string) (sinhala, english int) {
	for _, r := range text {
		switch {
		case isSinhala(r):
			sinhala++
		case isASCIIAlpha(r):
			english++
		}
	}
	return sinhala, english
}

// ClassifySnippet classifies a short text span, typically the context
// window around an extracted fact.
//
// Ratios are computed over counted letters only (Sinhala block plus ASCII
// alphabetic). A script exceeding the dominant ratio wins outright; both
// scripts exceeding the presence floor yields mixed; anything else is
// other. Blank input is empty, letter-free input is no_text.
func (c *Classifier) ClassifySnippet(text string) Verdict {
	if strings.TrimSpace(text) == "" {
		return VerdictEmpty
	}

	sinhala, english := countScripts(text)
	total := sinhala + english
	if total == 0 {
		return VerdictNoText
	}

	sinhalaRatio := float64(sinhala) / float64(total)
	englishRatio := float64(english) / float64(total)

	switch {
	case sinhalaRatio > c.dominantRatio:
		return VerdictSinhala
	case englishRatio > c.dominantRatio:
		return VerdictEnglish
	case sinhalaRatio > c.presenceRatio && englishRatio > c.presenceRatio:
		return VerdictMixed
	default:
		return VerdictOther
	}
}

// ClassifyPage classifies a whole page's concatenated text.
//
// This variant is stricter about Sinhala presence and looser about
// English: ratios are computed over all non-space characters, any Sinhala
// share above the presence floor makes the page sinhala (or mixed when
// English still outweighs it), and English must carry more than half the
// page to win. Whole pages carry far more markup noise, numerals, and
// boilerplate than fact contexts, which is why the two variants diverge.
func (c *Classifier) ClassifyPage(text string) Verdict {
	if strings.TrimSpace(text) == "" {
		return VerdictEmpty
	}

	sinhala, english := countScripts(text)

	total := 0
	for _, r := range text {
		if r != ' ' {
			total++
		}
	}
	if total == 0 {
		return VerdictNoText
	}

	sinhalaRatio := float64(sinhala) / float64(total)
	englishRatio := float64(english) / float64(total)

	switch {
	case sinhalaRatio > c.presenceRatio:
		if sinhalaRatio > englishRatio {
			return VerdictSinhala
		}
		return VerdictMixed
	case englishRatio > c.pageEnglishRatio:
		return VerdictEnglish
	default:
		return VerdictMixed
	}
}
