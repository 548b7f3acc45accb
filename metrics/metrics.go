package metrics

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	defaultMillisecondsDistribution = view.Distribution(0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, 10, 13, 16, 20, 25, 30, 40, 50, 65, 80, 100, 130, 160, 200, 250, 300, 400, 500, 650, 800, 1000, 2000, 5000, 10000, 20000, 50000, 100000)
)

// Keys
var (
	// KeyPeerID identifies the remote peer a sample was measured against.
	KeyPeerID, _ = tag.NewKey("peer_id")
)

const namePrefix = "p2p_node_stats_"

// Measures
var (
	PingLatencyMs         = stats.Float64(namePrefix+"ping_latency_ms", "Recorded round-trip ping latency samples", stats.UnitMilliseconds)
	TransmissionLatencyMs = stats.Float64(namePrefix+"transmission_latency_ms", "Recorded per-byte transmission latency samples", stats.UnitMilliseconds)
	ReportsGenerated      = stats.Int64(namePrefix+"reports_generated", "Total number of reports rendered", stats.UnitDimensionless)
)

// Views aggregate the measures above; consumers that want the engine's
// telemetry exported register them with view.Register.
var Views = []*view.View{{
	Measure:     PingLatencyMs,
	TagKeys:     []tag.Key{KeyPeerID},
	Aggregation: defaultMillisecondsDistribution,
}, {
	Measure:     TransmissionLatencyMs,
	TagKeys:     []tag.Key{KeyPeerID},
	Aggregation: defaultMillisecondsDistribution,
}, {
	Measure:     ReportsGenerated,
	Aggregation: view.Count(),
}}
