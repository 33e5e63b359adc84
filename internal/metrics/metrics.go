package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
	"github.com/ironsheep/color-notation-mcp/internal/scanner"
)

// Scan sources.
const (
	SourceText     = "text"
	SourceDocument = "document"
	SourceImage    = "image"
)

var (
	Scans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "color_notation_scans_total",
		Help: "Total number of text buffers scanned for color literals",
	}, []string{"source"})
	Matches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "color_notation_matches_total",
		Help: "Total number of color literals found, by notation",
	}, []string{"notation"})
	Conversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "color_notation_conversions_total",
		Help: "Total number of literals converted, by source notation",
	}, []string{"notation"})
	Documents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "color_notation_documents",
		Help: "Number of documents currently cached",
	})
)

func init() {
	for _, src := range []string{SourceText, SourceDocument, SourceImage} {
		Scans.WithLabelValues(src).Add(0)
	}
	for _, n := range notation.All() {
		Matches.WithLabelValues(n.Name()).Add(0)
		Conversions.WithLabelValues(n.Name()).Add(0)
	}
}

// ObserveScan records one scan and the literals it found.
func ObserveScan(source string, matches []scanner.Match) {
	Scans.WithLabelValues(source).Inc()
	for _, m := range matches {
		Matches.WithLabelValues(m.Notation.Name()).Inc()
	}
}

// ObserveConversion records one conversion of a literal.
func ObserveConversion(conv scanner.Conversion) {
	Conversions.WithLabelValues(conv.Source).Inc()
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
