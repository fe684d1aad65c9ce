package ledger

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/medchain/docanchor/internal/common"
)

// Address is a 20-byte ledger account address. Principals (document subjects)
// and the uploader identity are both addresses.
type Address [20]byte

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ParseAddress validates and parses a principal address. Mixed-case input
// must carry a valid EIP-55 checksum; all-lowercase and all-uppercase forms
// are accepted as unchecksummed.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimSpace(s)
	if !addressPattern.MatchString(s) {
		return a, common.NewAppError(common.ErrInput, "BAD_ADDRESS",
			fmt.Sprintf("%q is not a 0x-prefixed 20-byte hex address", s), nil)
	}
	body := s[2:]
	lower := strings.ToLower(body)
	if body != lower && body != strings.ToUpper(body) {
		if s != checksumHex(lower) {
			return a, common.NewAppError(common.ErrInput, "BAD_ADDRESS_CHECKSUM",
				fmt.Sprintf("%q fails its EIP-55 checksum", s), nil)
		}
	}
	raw, err := hex.DecodeString(lower)
	if err != nil {
		return a, common.NewAppError(common.ErrInput, "BAD_ADDRESS", "address is not hex", err)
	}
	copy(a[:], raw)
	return a, nil
}

// Hex returns the EIP-55 checksummed string form.
func (a Address) Hex() string {
	return checksumHex(hex.EncodeToString(a[:]))
}

// checksumHex applies EIP-55 casing to a lowercase 40-char hex string and
// prepends "0x".
func checksumHex(lower string) string {
	sum := keccak256([]byte(lower))
	out := make([]byte, 40)
	for i := 0; i < 40; i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' {
			nibble := sum[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x0f >= 8 {
				c = c - 'a' + 'A'
			}
		}
		out[i] = c
	}
	return "0x" + string(out)
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
