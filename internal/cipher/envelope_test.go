package cipher

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/medchain/docanchor/internal/common"
)

var testSecret = []byte("deployment-secret-for-tests")

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	for _, plain := range []string{"", "glucose 110 mg/dl", "multi\nline\nreport"} {
		env, err := Encrypt(plain, testSecret)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		got, err := Decrypt(env, testSecret)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if got != plain {
			t.Fatalf("round trip mismatch: got %q want %q", got, plain)
		}
	}
}

func TestEncrypt_Randomized(t *testing.T) {
	e1, err := Encrypt("identical content", testSecret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	e2, err := Encrypt("identical content", testSecret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if e1.Salt == e2.Salt {
		t.Fatal("salt reused across encryptions")
	}
	if e1.IV == e2.IV {
		t.Fatal("nonce reused across encryptions")
	}
	b1, _ := e1.Marshal()
	b2, _ := e2.Marshal()
	if string(b1) == string(b2) {
		t.Fatal("identical envelopes for identical content; ciphertext must be randomized")
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	env, err := Encrypt("secret report", testSecret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	_, err = Decrypt(env, []byte("a different secret"))
	if !errors.Is(err, common.ErrIntegrity) {
		t.Fatalf("expected IntegrityError for wrong key, got %v", err)
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	env, err := Encrypt("secret report", testSecret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	flip := func(b64 string) string {
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		raw[0] ^= 0x01
		return base64.StdEncoding.EncodeToString(raw)
	}

	cases := map[string]func(e Envelope) Envelope{
		"ciphertext": func(e Envelope) Envelope { e.Data = flip(e.Data); return e },
		"tag":        func(e Envelope) Envelope { e.Tag = flip(e.Tag); return e },
		"salt":       func(e Envelope) Envelope { e.Salt = flip(e.Salt); return e },
		"nonce":      func(e Envelope) Envelope { e.IV = flip(e.IV); return e },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			bad := mutate(*env)
			if _, err := Decrypt(&bad, testSecret); !errors.Is(err, common.ErrIntegrity) {
				t.Fatalf("expected IntegrityError after tampering with %s, got %v", name, err)
			}
		})
	}
}

func TestUnmarshalEnvelope_SchemaValidation(t *testing.T) {
	env, err := Encrypt("content", testSecret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	raw, err := env.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := UnmarshalEnvelope(raw)
	if err != nil {
		t.Fatalf("UnmarshalEnvelope rejected a valid envelope: %v", err)
	}
	if parsed.Alg != Algorithm {
		t.Fatalf("alg = %q", parsed.Alg)
	}

	bad := [][]byte{
		[]byte(`not json`),
		[]byte(`{}`),
		[]byte(`{"alg":"ROT13","salt":"a","iv":"b","tag":"c","data":"d"}`),
		[]byte(`{"alg":"AES-256-GCM","salt":"a","iv":"b","tag":"c","data":"d","extra":1}`),
	}
	for _, b := range bad {
		if _, err := UnmarshalEnvelope(b); !errors.Is(err, common.ErrIntegrity) {
			t.Fatalf("expected IntegrityError for %s, got %v", b, err)
		}
	}
}
