package data

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
)

// The "bytes" type from the atproto data model. JSON form is {"$bytes": "<unpadded base64>"}; in DAG-CBOR it is a byte string.
type Bytes []byte

func (lb Bytes) MarshalJSON() ([]byte, error) {
	if lb == nil {
		return nil, fmt.Errorf("nil $bytes")
	}
	return json.Marshal(map[string]string{"$bytes": base64.RawStdEncoding.EncodeToString(lb)})
}

func (lb Bytes) MarshalCBOR(w io.Writer) error {
	return cbg.WriteByteArray(w, []byte(lb))
}
