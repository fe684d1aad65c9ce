package ledger

import (
	"encoding/hex"
)

// Minimal ABI encoding for the two contract entry points the pipeline calls.
// The contract's role model and storage layout are out of scope; only the
// call encoding lives here.

// UploaderRole is keccak256("UPLOADER_ROLE"), the role the signing account
// must hold for uploadReport to succeed.
var UploaderRole = roleHash("UPLOADER_ROLE")

func roleHash(name string) [32]byte {
	var r [32]byte
	copy(r[:], keccak256([]byte(name)))
	return r
}

// selector returns the first four bytes of keccak256(signature).
func selector(signature string) []byte {
	return keccak256([]byte(signature))[:4]
}

func padAddress(a Address) []byte {
	out := make([]byte, 32)
	copy(out[12:], a[:])
	return out
}

func padLen(n int) []byte {
	out := make([]byte, 32)
	v := uint64(n)
	for i := 31; i >= 24; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func padRight(data []byte) []byte {
	if rem := len(data) % 32; rem != 0 {
		return append(data, make([]byte, 32-rem)...)
	}
	return data
}

// packHasRole encodes hasRole(bytes32,address).
func packHasRole(role [32]byte, account Address) []byte {
	data := selector("hasRole(bytes32,address)")
	data = append(data, role[:]...)
	data = append(data, padAddress(account)...)
	return data
}

// packUploadReport encodes uploadReport(address,bytes32,bytes). The dynamic
// bytes argument (the CIDv1 binary form) goes in the tail with its offset in
// the third head slot.
func packUploadReport(subject Address, contentHash [32]byte, cidBytes []byte) []byte {
	data := selector("uploadReport(address,bytes32,bytes)")
	data = append(data, padAddress(subject)...)
	data = append(data, contentHash[:]...)
	data = append(data, padLen(3*32)...) // offset of the bytes tail
	data = append(data, padLen(len(cidBytes))...)
	data = append(data, padRight(append([]byte(nil), cidBytes...))...)
	return data
}

func hexData(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}
