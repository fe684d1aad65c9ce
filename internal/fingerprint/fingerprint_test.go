package fingerprint

import (
	"strings"
	"testing"
)

func TestHash_KnownVectors(t *testing.T) {
	tests := []struct {
		in   string
		want Fingerprint
	}{
		{"", "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, tt := range tests {
		if got := Hash(tt.in); got != tt.want {
			t.Fatalf("Hash(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestHash_DeterministicAndWellFormed(t *testing.T) {
	f1 := Hash("glucose 110 mg/dl")
	f2 := Hash("glucose 110 mg/dl")
	if f1 != f2 {
		t.Fatalf("hash not deterministic: %s vs %s", f1, f2)
	}
	s := f1.String()
	if !strings.HasPrefix(s, "0x") || len(s) != 2+2*Size {
		t.Fatalf("malformed fingerprint %q", s)
	}
	if s != strings.ToLower(s) {
		t.Fatalf("fingerprint not lowercase: %q", s)
	}
}

func TestBytes32_RoundTrip(t *testing.T) {
	f := Hash("sample")
	raw, err := f.Bytes32()
	if err != nil {
		t.Fatalf("Bytes32: %v", err)
	}
	parsed, err := Parse(f.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	raw2, err := parsed.Bytes32()
	if err != nil {
		t.Fatalf("Bytes32 after Parse: %v", err)
	}
	if raw != raw2 {
		t.Fatal("digest changed across Parse round trip")
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "0x12", "not-hex", "0x" + strings.Repeat("zz", 32)} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) accepted invalid fingerprint", in)
		}
	}
}
