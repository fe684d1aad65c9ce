package cipher

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/medchain/docanchor/internal/common"
)

// envelopeSchema rejects malformed envelopes before any cryptographic work.
// Blobs fetched from the content store are attacker-reachable input, so shape
// errors are integrity failures, not parse warnings.
const envelopeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["alg", "salt", "iv", "tag", "data"],
  "additionalProperties": false,
  "properties": {
    "alg":  {"type": "string", "const": "AES-256-GCM"},
    "salt": {"type": "string", "minLength": 1},
    "iv":   {"type": "string", "minLength": 1},
    "tag":  {"type": "string", "minLength": 1},
    "data": {"type": "string"}
  }
}`

var compiledEnvelopeSchema = jsonschema.MustCompileString("envelope.schema.json", envelopeSchema)

// UnmarshalEnvelope parses and schema-validates envelope JSON fetched from
// the content store.
func UnmarshalEnvelope(data []byte) (*Envelope, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, common.NewAppError(common.ErrIntegrity, "CIPHER_BAD_ENVELOPE", "envelope is not valid JSON", err)
	}
	if err := compiledEnvelopeSchema.Validate(doc); err != nil {
		return nil, common.NewAppError(common.ErrIntegrity, "CIPHER_BAD_ENVELOPE", "envelope failed schema validation", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, common.NewAppError(common.ErrIntegrity, "CIPHER_BAD_ENVELOPE", "envelope JSON decode failed", err)
	}
	return &env, nil
}
