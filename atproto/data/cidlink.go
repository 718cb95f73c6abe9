package data

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
)

// The "cid-link" type from the atproto data model. JSON form is {"$link": "<cid>"}; in DAG-CBOR it is a tag-42 CID.
type CIDLink cid.Cid

func (ll CIDLink) String() string {
	return cid.Cid(ll).String()
}

func (ll CIDLink) Defined() bool {
	return cid.Cid(ll).Defined()
}

func (ll CIDLink) MarshalJSON() ([]byte, error) {
	if !ll.Defined() {
		return nil, fmt.Errorf("cid-link has no CID")
	}
	return json.Marshal(map[string]string{"$link": ll.String()})
}

func (ll CIDLink) MarshalCBOR(w io.Writer) error {
	if !ll.Defined() {
		return fmt.Errorf("cid-link has no CID")
	}
	return cbg.WriteCid(w, cid.Cid(ll))
}
