/*
Package data handles schema-less atproto data: the generic form of records whose lexicon is not known, and the data model rules every record must follow.

The rules checked include:
  - numbers are integers
  - limits on string and byte lengths, container sizes, object keys and nesting depth
  - the exact shape of $link, $bytes and blob objects
  - $type, when present, is a non-empty string

Details are specified at https://atproto.com/specs/data-model

[UnmarshalJSON] and [UnmarshalCBOR] parse records in to map[string]any, with [CIDLink], [Bytes] and [Blob] standing in for the special object shapes. [MarshalCBOR] writes canonical DAG-CBOR, and [ComputeCID] gives the record CID of that encoding. Violations are reported as [ModelError], which carries the location of the bad value.

[Object] is an order-preserving JSON object holding uninterpreted (raw) property values. It is what typed lexicon structs use to carry properties they don't declare, and what objects with an unrecognized $type are decoded in to, so that data round-trips without loss.
*/
package data
