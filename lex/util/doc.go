/*
Package util is the runtime shared by the generated lexicon types: the extensible object codec, union families and the type registry, enums with fallback values, and the lexicon scalar types (cid-link, bytes, blob, datetime).

Decoding is safe to run from many goroutines. Registration ([RegisterType], [Family.Register]) is meant for package init and is not synchronized with decoding.

Decoding has two side effects outside the returned value, both process-global:

  - Prometheus counters registered on the default registry: lexcodec_unknown_variant_total (per union family), lexcodec_enum_fallback_total (per enum) and lexcodec_decode_error_total (per error kind).
  - slog Debug records on the default logger for unrecognized union types and enum values.

These counters and the registry are the only mutable state in the package.
*/
package util
