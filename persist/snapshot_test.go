package persist

import (
	"context"
	"testing"

	ds "github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatastoreSnapshotterValidation(t *testing.T) {
	_, err := NewDatastoreSnapshotter(nil, "ns")
	assert.Error(t, err)

	_, err = NewDatastoreSnapshotter(dssync.MutexWrap(ds.NewMapDatastore()), "")
	assert.Error(t, err)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	sn, err := NewDatastoreSnapshotter(dssync.MutexWrap(ds.NewMapDatastore()), "peerstats")
	require.NoError(t, err)

	_, found, err := sn.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, sn.Store(ctx, "first report"))
	report, found, err := sn.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "first report", report)

	// Storing again replaces the previous snapshot.
	require.NoError(t, sn.Store(ctx, "second report"))
	report, found, err = sn.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "second report", report)
}

func TestNamespacesAreIndependent(t *testing.T) {
	ctx := context.Background()
	dstore := dssync.MutexWrap(ds.NewMapDatastore())

	a, err := NewDatastoreSnapshotter(dstore, "a")
	require.NoError(t, err)
	b, err := NewDatastoreSnapshotter(dstore, "b")
	require.NoError(t, err)

	require.NoError(t, a.Store(ctx, "report a"))
	_, found, err := b.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
