package data

// Size and shape limits on record data. Exceeding any of them makes the data invalid.
const (
	// DAG-CBOR encoding of a single record
	MaxRecordCBORSize = 1 * 1024 * 1024
	// JSON encoding of a single record
	MaxRecordJSONSize = 2 * 1024 * 1024
	// UTF-8 bytes in one string value
	MaxStringLen = MaxRecordCBORSize
	// length of one byte string
	MaxBytesLen = MaxRecordCBORSize
	// elements in one array, or entries in one object
	MaxContainerLen = 128 * 1024
	// arrays and objects nested inside each other, counting the record itself
	MaxNestingDepth = 32
	// UTF-8 bytes in one object key
	MaxObjectKeyLen = 8192
)
