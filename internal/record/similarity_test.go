package record

import "testing"

func TestSimilarity_Identical(t *testing.T) {
	text := "def greet(name):\n    print(name)\n"
	s := Similarity(text, text)
	if s.Char != 1.0 {
		t.Errorf("Char = %v, want 1.0", s.Char)
	}
	if s.Line != 1.0 {
		t.Errorf("Line = %v, want 1.0", s.Line)
	}
	if s.TokenJaccard != 1.0 {
		t.Errorf("TokenJaccard = %v, want 1.0", s.TokenJaccard)
	}
}

func TestSimilarity_Disjoint(t *testing.T) {
	s := Similarity("abc", "xyz")
	if s.Char != 0.0 {
		t.Errorf("Char = %v, want 0.0", s.Char)
	}
	if s.Line != 0.0 {
		t.Errorf("Line = %v, want 0.0", s.Line)
	}
	if s.TokenJaccard != 0.0 {
		t.Errorf("TokenJaccard = %v, want 0.0", s.TokenJaccard)
	}
}

func TestSimilarity_Partial(t *testing.T) {
	s := Similarity("line one\nline two\n", "line one\nline 2\n")
	if s.Char <= 0.0 || s.Char >= 1.0 {
		t.Errorf("Char = %v, want strictly between 0 and 1", s.Char)
	}
	if s.Line != 0.5 {
		t.Errorf("Line = %v, want 0.5 (one of two lines matches)", s.Line)
	}
}

func TestTokenJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"overlap of one in three", "foo bar", "bar baz", 1.0 / 3.0},
		{"both empty", "", "", 1.0},
		{"punctuation only is empty", "!!! ...", "???", 1.0},
		{"case insensitive", "Foo BAR", "foo bar", 1.0},
		{"frequency ignored", "a a a b", "a b", 1.0},
		{"underscores are token chars", "max_retries", "max retries", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenJaccard(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("tokenJaccard(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExplode_Unicode(t *testing.T) {
	got := explode("héλ")
	want := []string{"h", "é", "λ"}
	if len(got) != len(want) {
		t.Fatalf("explode = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("explode[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
