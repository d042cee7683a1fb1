package fold

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Brøgger", "Brøgger"}, // ø passes through unchanged
		{"El Niño", "El Nino"},
		{"Sébastien", "Sebastien"},
		{"ÀÁÂÃÄÅ", "AAAAAA"},
		{"àáâãäå", "aaaaaa"},
		{"ÈÉÊË", "EEEE"},
		{"Ça va", "Ca va"},
		{"CJK 漢字", "CJK 漢字"},
		{"ß", "ß"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{"Brøgger", "El Niño", "Sébastien", "ÀÁÂÃÄÅ", "ß", "CJK 漢字", ""}
	for _, s := range inputs {
		once := Fold(s)
		twice := Fold(once)
		if once != twice {
			t.Errorf("Fold not idempotent for %q: Fold(s)=%q Fold(Fold(s))=%q", s, once, twice)
		}
	}
}

func TestFoldNeverLengthens(t *testing.T) {
	inputs := []string{"Brøgger", "El Niño", "Sébastien", "ÀÁÂÃÄÅ", "ß", "CJK 漢字", ""}
	for _, s := range inputs {
		if len([]rune(Fold(s))) > len([]rune(s)) {
			t.Errorf("Fold lengthened %q to %q", s, Fold(s))
		}
	}
}
