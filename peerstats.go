// Package peerstats aggregates network telemetry observed toward remote
// peers: round-trip ping latency and per-byte transmission latency. Only a
// bounded window of the most recent samples is retained per peer; on
// demand the engine reduces each window to a mean with a 95%
// confidence-interval error bound and renders a human-readable report.
//
// The engine is passive: it runs no goroutines of its own. The networking
// layer pushes samples as it measures them, possibly from many goroutines
// at once, while a reporting caller reads concurrently.
package peerstats

import (
	"context"
	"time"

	logging "github.com/ipfs/go-log"
	"github.com/libp2p/go-libp2p/core/peer"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/e-ivkov/p2p-node-stats/metrics"
	"github.com/e-ivkov/p2p-node-stats/persist"
	"github.com/e-ivkov/p2p-node-stats/window"
)

var logger = logging.Logger("peerstats")

const tracerName = "go-p2p-node-stats"

// Stats holds one bounded sample window per peer for each of the two
// tracked measurements. Safe for concurrent use; ingestion for different
// peers does not contend once their windows exist.
type Stats struct {
	selfID peer.ID
	tracer trace.Tracer

	pings         *window.Store
	transmissions *window.Store
}

// New creates a stats engine for the node identified by selfID. selfID is
// only used to label reports. The engine lives for the process lifetime;
// there is nothing to close.
func New(selfID peer.ID, opts ...Option) (*Stats, error) {
	var cfg config
	if err := cfg.apply(append([]Option{defaults}, opts...)...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Stats{
		selfID:        selfID,
		tracer:        otel.Tracer(tracerName),
		pings:         window.NewStore(cfg.windowSize),
		transmissions: window.NewStore(cfg.windowSize),
	}, nil
}

// RecordPing ingests a measured round-trip latency toward p. It cannot
// fail: once p's window is full the oldest sample is dropped to make room.
func (s *Stats) RecordPing(p peer.ID, rtt time.Duration) {
	s.pings.Record(p, rtt)
	recordSample(metrics.PingLatencyMs, p, rtt)
}

// RecordTransmission ingests a measured per-byte transmission latency
// toward p. Same append/evict semantics as RecordPing, in an independent
// store.
func (s *Stats) RecordTransmission(p peer.ID, perByte time.Duration) {
	s.transmissions.Record(p, perByte)
	recordSample(metrics.TransmissionLatencyMs, p, perByte)
}

func recordSample(m *stats.Float64Measure, p peer.ID, d time.Duration) {
	_ = stats.RecordWithTags(context.Background(),
		[]tag.Mutator{tag.Upsert(metrics.KeyPeerID, p.String())},
		m.M(float64(d)/float64(time.Millisecond)),
	)
}

// Persist stores the current report in the given snapshotter, replacing
// whatever report it held before.
func (s *Stats) Persist(ctx context.Context, snapshotter persist.Snapshotter) error {
	return snapshotter.Store(ctx, s.Report())
}
