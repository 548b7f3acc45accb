// Package persist offers one-shot persistence of rendered telemetry
// reports. Only the latest report is retained; storing a new one replaces
// the previous snapshot.
package persist

import (
	"context"
	"errors"

	ds "github.com/ipfs/go-datastore"
	nsds "github.com/ipfs/go-datastore/namespace"
	logging "github.com/ipfs/go-log"
)

var logSnapshot = logging.Logger("peerstats/persist")

var dsReportKey = ds.NewKey("stats_report")

// A Snapshotter saves and restores the latest rendered report.
type Snapshotter interface {
	// Store persists the report, replacing any previously stored one.
	Store(ctx context.Context, report string) error

	// Load returns the most recently stored report. The boolean is false
	// when no report has ever been stored.
	Load(ctx context.Context) (string, bool, error)
}

type dsSnapshotter struct {
	ds.Datastore
}

var _ Snapshotter = (*dsSnapshotter)(nil)

// NewDatastoreSnapshotter returns a Snapshotter backed by a datastore, under the
// specified non-optional namespace.
func NewDatastoreSnapshotter(dstore ds.Datastore, namespace string) (Snapshotter, error) {
	if dstore == nil {
		return nil, errors.New("datastore is nil when creating a datastore snapshotter")
	}
	if namespace == "" {
		return nil, errors.New("blank namespace when creating a datastore snapshotter")
	}
	dstore = nsds.Wrap(dstore, ds.NewKey(namespace))
	return &dsSnapshotter{dstore}, nil
}

func (dsp *dsSnapshotter) Store(ctx context.Context, report string) error {
	return dsp.Put(ctx, dsReportKey, []byte(report))
}

func (dsp *dsSnapshotter) Load(ctx context.Context) (string, bool, error) {
	val, err := dsp.Get(ctx, dsReportKey)
	switch err {
	case nil:
		return string(val), true, nil
	case ds.ErrNotFound:
		return "", false, nil
	default:
		logSnapshot.Warningf("failed to load report snapshot; err: %s", err)
		return "", false, err
	}
}
