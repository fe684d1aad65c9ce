package canonical

import "testing"

func TestCanonicalize_Empty(t *testing.T) {
	if got := Canonicalize(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestCanonicalize_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "zero width stripped",
			in:   "glu​cose\uFEFF level",
			want: "glucose level",
		},
		{
			name: "typographic punctuation",
			in:   "“Fasting” — the patient’s value",
			want: `"fasting" - the patient's value`,
		},
		{
			name: "crlf and hyphenation",
			in:   "hemo-\nglobin is nor-\r\nmal",
			want: "hemoglobin is normal",
		},
		{
			name: "whitespace collapse",
			in:   "a   b\t\tc\n\n\n\nd",
			want: "a b c\nd",
		},
		{
			name: "unit synonyms",
			in:   "110 MG PER DL and 95 mg dl and 80 mg/dl",
			want: "110 mg/dl and 95 mg/dl and 80 mg/dl",
		},
		{
			name: "nfkc compatibility forms",
			in:   "ﬁnal result ①",
			want: "final result 1",
		},
		{
			name: "lowercased and trimmed",
			in:   "  Report SUMMARY  ",
			want: "report summary",
		},
		{
			name: "non breaking space",
			in:   "12 mmol",
			want: "12 mmol",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonicalize(tt.in); got != tt.want {
				t.Fatalf("Canonicalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"“Curly” — text\r\nwith CRLF and 120 mg  per  dl",
		"multi\n\n\nline\t\tdocument with hy-\nphenation",
		"​zero‌width‍soup\uFEFF",
		"Ｆｕｌｌｗｉｄｔｈ ｔｅｘｔ",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		twice := Canonicalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
