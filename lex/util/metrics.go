package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var unknownVariants = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lexcodec_unknown_variant_total",
	Help: "Union values decoded with a $type not registered in their family",
}, []string{"family"})

var enumFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lexcodec_enum_fallback_total",
	Help: "Enum strings which were not recognized and decoded as the declared default",
}, []string{"enum"})

var decodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lexcodec_decode_error_total",
	Help: "Documents which failed to decode, by error kind",
}, []string{"kind"})
