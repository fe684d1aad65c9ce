package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/medchain/docanchor/internal/common"
)

func TestParseAddress_Checksummed(t *testing.T) {
	// EIP-55 reference vectors.
	valid := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, in := range valid {
		a, err := ParseAddress(in)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", in, err)
		}
		if a.Hex() != in {
			t.Fatalf("Hex() = %q, want %q", a.Hex(), in)
		}
	}
}

func TestParseAddress_UnchecksummedForms(t *testing.T) {
	want := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	for _, in := range []string{strings.ToLower(want), "0x" + strings.ToUpper(want[2:])} {
		a, err := ParseAddress(in)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", in, err)
		}
		if a.Hex() != want {
			t.Fatalf("Hex() = %q, want %q", a.Hex(), want)
		}
	}
}

func TestParseAddress_Rejects(t *testing.T) {
	bad := []string{
		"",
		"0x123",
		"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",                                    // missing 0x
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeg",                                  // non-hex
		"0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",                                  // bad checksum
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed00",                                // too long
	}
	for _, in := range bad {
		if _, err := ParseAddress(in); !errors.Is(err, common.ErrInput) {
			t.Fatalf("ParseAddress(%q) should fail with InputError, got %v", in, err)
		}
	}
}
