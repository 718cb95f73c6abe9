package data

import (
	"fmt"
	"io"
	"sort"

	cbg "github.com/whyrusleeping/cbor-gen"
)

// Writes normalized data as DAG-CBOR: minimal-length headers, and map keys sorted by length and then bytewise.
func writeCBOR(cw *cbg.CborWriter, val any) error {
	switch v := val.(type) {
	case nil:
		_, err := cw.Write(cbg.CborNull)
		return err
	case bool:
		if v {
			_, err := cw.Write(cbg.CborBoolTrue)
			return err
		}
		_, err := cw.Write(cbg.CborBoolFalse)
		return err
	case int64:
		if v >= 0 {
			return cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(v))
		}
		return cw.WriteMajorTypeHeader(cbg.MajNegativeInt, uint64(-(v + 1)))
	case string:
		if err := cw.WriteMajorTypeHeader(cbg.MajTextString, uint64(len(v))); err != nil {
			return err
		}
		_, err := io.WriteString(cw, v)
		return err
	case CIDLink:
		return v.MarshalCBOR(cw)
	case Bytes:
		return v.MarshalCBOR(cw)
	case Blob:
		return writeCBOR(cw, v.fields())
	case []any:
		if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(len(v))); err != nil {
			return err
		}
		for _, elem := range v {
			if err := writeCBOR(cw, elem); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		if err := cw.WriteMajorTypeHeader(cbg.MajMap, uint64(len(v))); err != nil {
			return err
		}
		for _, k := range cborKeyOrder(v) {
			if err := writeCBOR(cw, k); err != nil {
				return err
			}
			if err := writeCBOR(cw, v[k]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("can not encode %T as DAG-CBOR", val)
	}
}

func cborKeyOrder(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
