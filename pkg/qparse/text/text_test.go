package text

import "testing"

func TestNormalizeBasic(t *testing.T) {
	got := Normalize("Fix my SINK!!!")
	want := "fix my sink"
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", "Fix my SINK!!!", got, want)
	}
}

func TestNormalizePunctuationBecomesSpace(t *testing.T) {
	got := Normalize("roof-leak,fair price")
	want := "roof leak fair price"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  need \t a\n\nplumber  ")
	want := "need a plumber"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}

func TestNormalizePunctuationOnly(t *testing.T) {
	if got := Normalize("?!?... --- !!!"); got != "" {
		t.Errorf("Punctuation-only input should normalize to empty, got %q", got)
	}
}

func TestNormalizeKeepsDigits(t *testing.T) {
	got := Normalize("Unit 12B, 3rd floor")
	want := "unit 12b 3rd floor"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeNonASCII(t *testing.T) {
	// Characters outside [a-z0-9] become spaces, accented letters included.
	got := Normalize("café señor")
	want := "caf se or"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"I need a CHEAP plumber ASAP!", "", "   ", "already normal text"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestTokenizerBasic(t *testing.T) {
	tokenizer := NewTokenizer([]string{"i", "need", "a"})

	tokens := tokenizer.Tokenize("i need a cheap plumber")
	want := []string{"cheap", "plumber"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerPreservesOrder(t *testing.T) {
	tokenizer := NewTokenizer([]string{"the"})

	tokens := tokenizer.Tokenize("fix the roof before the leak spreads")
	want := []string{"fix", "roof", "before", "leak", "spreads"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	tokenizer := NewTokenizer([]string{})

	tokens := tokenizer.Tokenize("")
	if len(tokens) != 0 {
		t.Errorf("Empty input should produce 0 tokens, got %v", tokens)
	}
}

func TestTokenizerAllStopwords(t *testing.T) {
	tokenizer := NewTokenizer([]string{"please", "help", "me"})

	tokens := tokenizer.Tokenize("please help me")
	if len(tokens) != 0 {
		t.Errorf("All-stopword input should produce 0 tokens, got %v", tokens)
	}
}

func TestTokenizerStopwordCaseInsensitive(t *testing.T) {
	// Stopword lists may arrive in any case; matching is over normalized
	// text, so the list is lowercased at construction.
	tokenizer := NewTokenizer([]string{"THE", "A"})

	tokens := tokenizer.Tokenize("the cat on a mat")
	want := []string{"cat", "on", "mat"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizerDuplicateStopwords(t *testing.T) {
	tokenizer := NewTokenizer([]string{"the", "the", "a", "the"})

	tokens := tokenizer.Tokenize("the cat")
	if !equalTokens(tokens, []string{"cat"}) {
		t.Errorf("Duplicate stopwords should work correctly, got %v", tokens)
	}
}

func TestTokenizerKeepsShortTokens(t *testing.T) {
	tokenizer := NewTokenizer([]string{})

	// No length filtering: single-character tokens survive unless they
	// are stopwords.
	tokens := tokenizer.Tokenize("b c pipe")
	want := []string{"b", "c", "pipe"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestNormalizeThenTokenize(t *testing.T) {
	tokenizer := NewTokenizer([]string{"i", "need", "a", "in"})

	tokens := tokenizer.Tokenize(Normalize("I need a CHEAP plumber in San Jose ASAP!"))
	want := []string{"cheap", "plumber", "san", "jose", "asap"}
	if !equalTokens(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
