package storage

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// rawLeafLimit is the store's chunk size: blobs at or under it are stored as
// a single raw block, so their CID is exactly the raw sha2-256 CID of the
// bytes and can be recomputed locally.
const rawLeafLimit = 256 << 10

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec and a
// sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid codes; with SHA2_256 and -1
		// length this is unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// ParseCID validates a CID string.
func ParseCID(s string) (cid.Cid, error) {
	return cid.Decode(s)
}

// CIDBytes converts a CID string to its CIDv1 binary form, the representation
// the ledger contract stores alongside the fingerprint.
func CIDBytes(s string) ([]byte, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return nil, err
	}
	v1, err := toV1(c)
	if err != nil {
		return nil, err
	}
	return v1.Bytes(), nil
}

func toV1(c cid.Cid) (cid.Cid, error) {
	if c.Version() == 1 {
		return c, nil
	}
	return cid.NewCidV1(c.Type(), c.Hash()), nil
}
