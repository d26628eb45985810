package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectInt64Sums(t *testing.T, reader sdkmetric.Reader) map[string]int64 {
	t.Helper()
	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	res := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				res[m.Name] += dp.Value
			}
		}
	}
	return res
}

func TestForwardList_Stats(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	defer func() {
		require.NoError(t, mp.Shutdown(context.Background()))
	}()

	flist, err := NewForwardListOf([]int{1, 2, 3},
		WithForwardListStats("stats-test"),
		WithForwardListCapacity(4),
		WithForwardListChunkSize(2),
	)
	require.NoError(t, err)

	sums := collectInt64Sums(t, reader)
	require.Equal(t, int64(3), sums["fwdlist.nodes.live"])
	require.Equal(t, int64(3), sums["fwdlist.nodes.allocated"])
	require.Equal(t, int64(2), sums["fwdlist.arena.chunks"])

	require.NoError(t, flist.PushFront(0))
	require.ErrorIs(t, flist.PushFront(-1), ErrNodeArenaExhausted)
	flist.PopFront()

	sums = collectInt64Sums(t, reader)
	require.Equal(t, int64(3), sums["fwdlist.nodes.live"])
	require.Equal(t, int64(4), sums["fwdlist.nodes.allocated"])
	require.Equal(t, int64(1), sums["fwdlist.nodes.recycled"])
	require.Equal(t, int64(1), sums["fwdlist.alloc.failures"])

	// Clones report to the same instruments.
	clone, err := flist.Clone()
	require.NoError(t, err)
	sums = collectInt64Sums(t, reader)
	require.Equal(t, int64(6), sums["fwdlist.nodes.live"])

	// Every node acquired is released again.
	clone.Clear()
	flist.Clear()
	sums = collectInt64Sums(t, reader)
	require.Equal(t, int64(0), sums["fwdlist.nodes.live"])
	require.Equal(t, sums["fwdlist.nodes.allocated"], sums["fwdlist.nodes.recycled"])
}

func TestForwardList_StatsFailedConstruction(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	defer func() {
		require.NoError(t, mp.Shutdown(context.Background()))
	}()

	_, err := NewForwardListOf([]string{"a", "b", "c"},
		WithForwardListStats("failed-construction"),
		WithForwardListCapacity(2),
	)
	require.ErrorIs(t, err, ErrNodeArenaExhausted)

	// The partially built chain is discarded.
	sums := collectInt64Sums(t, reader)
	require.Equal(t, int64(0), sums["fwdlist.nodes.live"])
	require.Equal(t, int64(2), sums["fwdlist.nodes.allocated"])
	require.Equal(t, int64(2), sums["fwdlist.nodes.recycled"])
	require.Equal(t, int64(1), sums["fwdlist.alloc.failures"])
}
