package textutil

import "testing"

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"01", "01/"},
		{"0101", "01/01/"},
		{"010126", "01/01/26"},
		{"01012026", "01/01/2026"},
		{"0101202699", "01/01/2026"},
		{"01/01/2026", "01/01/2026"},
		{"texto livre", "texto livre"},
		{"10/02", "10/02/"},
		{"", ""},
	}
	for _, c := range cases {
		got := FormatDate(c.in)
		if got != c.want {
			t.Errorf("FormatDate(%q) expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormatDateIdempotent(t *testing.T) {
	for _, in := range []string{"01012026", "0101", "22/01/2026", "texto"} {
		once := FormatDate(in)
		twice := FormatDate(once)
		if once != twice {
			t.Errorf("FormatDate not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestProperCase(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"TOMOGRAFIA DE CRANIO", "Tomografia de Cranio"},
		{"GABRIEL", "Gabriel"},
		{"Já Normal", "Já Normal"},   // not all-caps, untouched
		{"120.000", "120.000"},       // numeric, untouched
		{"DOR NO PEITO", "Dor no Peito"},
		{"", ""},
	}
	for _, c := range cases {
		got := ProperCase(c.in)
		if got != c.want {
			t.Errorf("ProperCase(%q) expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestObsLineBinomial(t *testing.T) {
	got := ObsLine("ENTEROCOCCUS FAECALIS E PROTEUS MIRABILIS")
	want := "Enterococcus faecalis e Proteus mirabilis"
	if got != want {
		t.Errorf("ObsLine expected %q, got %q", want, got)
	}
	// mixed case passes through
	if got := ObsLine("Klebsiella pneumoniae no aspirado"); got != "Klebsiella pneumoniae no aspirado" {
		t.Errorf("ObsLine should not touch mixed case, got %q", got)
	}
}

func TestSiglaUpper(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"cvc", "CVC"},
		{"pav", "PAV"},
		{"svd", "SVD"},
		{"Cateter venoso central", "Cateter venoso central"},
		{"a", "a"},
	}
	for _, c := range cases {
		if got := SiglaUpper(c.in); got != c.want {
			t.Errorf("SiglaUpper(%q) expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("18/01/2026", "30/01/2026"); got != "12 dias" {
		t.Errorf("expected '12 dias', got %q", got)
	}
	if got := DaysBetween("30/01/2026", "18/01/2026"); got != "" {
		t.Errorf("negative delta should be empty, got %q", got)
	}
	if got := DaysBetween("18/01/2026", "18/01/2026"); got != "" {
		t.Errorf("same day should be empty, got %q", got)
	}
	if got := DaysBetween("abc", "30/01/2026"); got != "" {
		t.Errorf("unparseable date should be empty, got %q", got)
	}
}

func TestJoinE(t *testing.T) {
	if got := JoinE([]string{"manhã", "tarde", "noite"}); got != "manhã, tarde e noite" {
		t.Errorf("got %q", got)
	}
	if got := JoinE([]string{"manhã"}); got != "manhã" {
		t.Errorf("got %q", got)
	}
	if got := JoinE(nil); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestStripSlashes(t *testing.T) {
	if got := StripSlashes("3/"); got != "3" {
		t.Errorf("got %q", got)
	}
	if got := StripSlashes("22/00/0"); got != "22000" {
		t.Errorf("got %q", got)
	}
}
