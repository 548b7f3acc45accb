package peerstats

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.opencensus.io/stats"

	"github.com/e-ivkov/p2p-node-stats/durations"
	"github.com/e-ivkov/p2p-node-stats/metrics"
	"github.com/e-ivkov/p2p-node-stats/window"
)

// Report renders the current telemetry as text: the local peer id, then
// one line per known peer and measurement with the window's mean and its
// 95% confidence-interval error bound. Peers whose window is empty get an
// explicit no-data line. Peer order within a section is unspecified.
//
// The report is built from per-peer snapshots; it is internally consistent
// per peer but is not an atomic capture across peers or across the two
// stores.
func (s *Stats) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q\n", s.selfID)

	b.WriteString("Ping mean for each peer:\n")
	for _, ps := range s.pings.Snapshot() {
		appendPeerLine(&b, ps, "ping", "")
	}

	b.WriteString("Transmission rate mean by peer:\n")
	for _, ps := range s.transmissions.Snapshot() {
		appendPeerLine(&b, ps, "transmission", " per byte")
	}

	stats.Record(context.Background(), metrics.ReportsGenerated.M(1))
	return b.String()
}

// appendPeerLine renders a single peer entry: `"<peer>" <mean>±<error>`
// plus the optional unit suffix, or the no-data fallback when the window
// holds no samples.
func appendPeerLine(b *strings.Builder, ps window.PeerSamples, kind, suffix string) {
	mean, ok := durations.Mean(ps.Samples)
	ciErr, cok := durations.ErrorWithConfidence(ps.Samples)
	if !ok || !cok {
		fmt.Fprintf(b, "No %s data for peer %q\n", kind, ps.Peer)
		return
	}
	fmt.Fprintf(b, "%q %v±%v%s\n", ps.Peer, mean, ciErr, suffix)
}

// SaveToFile renders the report and writes it to path, creating or
// truncating the file. I/O failures are returned to the caller; there is
// no retry and no partial-write recovery.
func (s *Stats) SaveToFile(path string) error {
	_, span := s.tracer.Start(context.Background(), "PeerStats.SaveToFile")
	defer span.End()

	report := s.Report()
	f, err := os.Create(path)
	if err != nil {
		span.RecordError(err)
		logger.Warningf("failed to create report file %s; err: %s", path, err)
		return err
	}
	_, werr := f.WriteString(report)
	err = multierror.Append(werr, f.Close()).ErrorOrNil()
	if err != nil {
		span.RecordError(err)
		logger.Warningf("failed to write report to %s; err: %s", path, err)
	}
	return err
}
