// Package cipher implements the authenticated encryption envelope stored in
// the content-addressed store. Encryption is deliberately randomized: a fresh
// scrypt salt and GCM nonce per call mean identical plaintexts never produce
// identical envelopes, so the ciphertext CID is never a content identity;
// only the fingerprint is.
package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"

	"github.com/medchain/docanchor/internal/common"
)

const (
	// Algorithm is the envelope's algorithm tag.
	Algorithm = "AES-256-GCM"

	saltSize  = 16
	nonceSize = 12
	tagSize   = 16
	keySize   = 32

	// scrypt cost parameters. Matching the deployed envelopes is required:
	// changing them makes every stored blob undecryptable.
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// Envelope is the randomized authenticated-encryption output. All binary
// fields are base64 (std encoding) in the JSON wire form.
type Envelope struct {
	Alg  string `json:"alg"`
	Salt string `json:"salt"`
	IV   string `json:"iv"`
	Tag  string `json:"tag"`
	Data string `json:"data"`
}

// Marshal renders the envelope to its JSON wire form, the exact bytes handed
// to the content store.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Encrypt seals canonical text under a key derived from the deployment
// secret. The scrypt salt is fresh per call, so the effective encryption key
// differs per document even though the secret is fixed.
func Encrypt(canonical string, secret []byte) (*Envelope, error) {
	if len(secret) == 0 {
		return nil, common.NewAppError(common.ErrInput, "CIPHER_NO_SECRET", "encryption secret is empty", nil)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	aead, err := newAEAD(secret, salt)
	if err != nil {
		return nil, err
	}

	sealed := aead.Seal(nil, nonce, []byte(canonical), nil)
	ct, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return &Envelope{
		Alg:  Algorithm,
		Salt: base64.StdEncoding.EncodeToString(salt),
		IV:   base64.StdEncoding.EncodeToString(nonce),
		Tag:  base64.StdEncoding.EncodeToString(tag),
		Data: base64.StdEncoding.EncodeToString(ct),
	}, nil
}

// Decrypt is the exact inverse of Encrypt. A wrong key or any tampering with
// salt, nonce, tag, or ciphertext fails authentication and surfaces as an
// IntegrityError; no plaintext is ever returned in that case.
func Decrypt(env *Envelope, secret []byte) (string, error) {
	if env.Alg != Algorithm {
		return "", common.NewAppError(common.ErrIntegrity, "CIPHER_BAD_ALG",
			fmt.Sprintf("unsupported algorithm %q", env.Alg), nil)
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return "", integrityErr("salt is not base64", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return "", integrityErr("iv is not base64", err)
	}
	tag, err := base64.StdEncoding.DecodeString(env.Tag)
	if err != nil {
		return "", integrityErr("tag is not base64", err)
	}
	ct, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return "", integrityErr("data is not base64", err)
	}
	if len(salt) != saltSize || len(nonce) != nonceSize || len(tag) != tagSize {
		return "", integrityErr("envelope field has wrong length", nil)
	}

	aead, err := newAEAD(secret, salt)
	if err != nil {
		return "", err
	}

	plain, err := aead.Open(nil, nonce, append(ct, tag...), nil)
	if err != nil {
		return "", common.NewAppError(common.ErrIntegrity, "CIPHER_AUTH_FAILED",
			"authentication tag did not verify: ciphertext tampered or wrong key", err)
	}
	return string(plain), nil
}

func newAEAD(secret, salt []byte) (gocipher.AEAD, error) {
	key, err := scrypt.Key(secret, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return gocipher.NewGCM(block)
}

func integrityErr(msg string, cause error) error {
	return common.NewAppError(common.ErrIntegrity, "CIPHER_BAD_ENVELOPE", msg, cause)
}
