package ledger

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustAddr(t *testing.T, s string) Address {
	t.Helper()
	a, err := ParseAddress(s)
	if err != nil {
		t.Fatalf("ParseAddress(%q): %v", s, err)
	}
	return a
}

func TestSelector_HasRole(t *testing.T) {
	// The canonical AccessControl selector for hasRole(bytes32,address).
	if got := hex.EncodeToString(selector("hasRole(bytes32,address)")); got != "91d14854" {
		t.Fatalf("selector = %s, want 91d14854", got)
	}
}

func TestPackHasRole_Layout(t *testing.T) {
	account := mustAddr(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	data := packHasRole(UploaderRole, account)

	if len(data) != 4+32+32 {
		t.Fatalf("call data length = %d, want 68", len(data))
	}
	if !bytes.Equal(data[4:36], UploaderRole[:]) {
		t.Fatal("role argument not at slot 0")
	}
	// address is right-aligned in its 32-byte slot
	if !bytes.Equal(data[36:48], make([]byte, 12)) {
		t.Fatal("address slot not left-padded")
	}
	if !bytes.Equal(data[48:68], account[:]) {
		t.Fatal("address argument not at slot 1")
	}
}

func TestPackUploadReport_Layout(t *testing.T) {
	subject := mustAddr(t, "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
	var contentHash [32]byte
	for i := range contentHash {
		contentHash[i] = byte(i)
	}
	cidBytes := bytes.Repeat([]byte{0xab}, 36) // CIDv1 raw sha2-256 length

	data := packUploadReport(subject, contentHash, cidBytes)

	// selector + 3 head slots + bytes length slot + 36 bytes padded to 64.
	if len(data) != 4+3*32+32+64 {
		t.Fatalf("call data length = %d", len(data))
	}
	if !bytes.Equal(data[16:36], subject[:]) {
		t.Fatal("subject not in head slot 0")
	}
	if !bytes.Equal(data[36:68], contentHash[:]) {
		t.Fatal("content hash not in head slot 1")
	}
	// offset slot must point at the tail (0x60).
	if data[99] != 0x60 || !bytes.Equal(data[68:99], make([]byte, 31)) {
		t.Fatal("bytes offset slot is not 0x60")
	}
	// length slot then payload padded with zeros.
	if data[131] != 36 {
		t.Fatalf("bytes length slot = %d, want 36", data[131])
	}
	if !bytes.Equal(data[132:168], cidBytes) {
		t.Fatal("cid bytes not in tail")
	}
	if !bytes.Equal(data[168:196], make([]byte, 28)) {
		t.Fatal("tail not zero-padded to a 32-byte boundary")
	}
}

func TestUploaderRole_Deterministic(t *testing.T) {
	if UploaderRole != roleHash("UPLOADER_ROLE") {
		t.Fatal("UploaderRole not stable")
	}
	if UploaderRole == roleHash("ADMIN_ROLE") {
		t.Fatal("distinct roles must hash differently")
	}
}
