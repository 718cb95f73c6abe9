package data

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CID builder used for atproto records: CIDv1, dag-cbor codec, sha2-256
var RecordCIDPrefix = cid.NewPrefixV1(cid.DagCBOR, multihash.SHA2_256)

// Computes the CID of generic record data, as it would be addressed in a repository: DAG-CBOR encoding, hashed with sha2-256, as a CIDv1.
func ComputeCID(obj map[string]any) (cid.Cid, error) {
	b, err := MarshalCBOR(obj)
	if err != nil {
		return cid.Undef, fmt.Errorf("encoding record as DAG-CBOR: %w", err)
	}
	if len(b) > MaxRecordCBORSize {
		return cid.Undef, fmt.Errorf("record too large: %d bytes", len(b))
	}
	return RecordCIDPrefix.Sum(b)
}
