package list

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	FwdListStatsName = "xboot/fwdlist"
)

type fwdListStats struct {
	attrs         metric.MeasurementOption
	liveNodes     metric.Int64UpDownCounter
	chunks        metric.Int64Counter
	allocated     metric.Int64Counter
	recycled      metric.Int64Counter
	allocFailures metric.Int64Counter
}

func (stats *fwdListStats) recordAllocated() {
	if stats == nil {
		return
	}
	stats.allocated.Add(context.Background(), 1, stats.attrs)
	stats.liveNodes.Add(context.Background(), 1, stats.attrs)
}

func (stats *fwdListStats) recordRecycled() {
	if stats == nil {
		return
	}
	stats.recycled.Add(context.Background(), 1, stats.attrs)
	stats.liveNodes.Add(context.Background(), -1, stats.attrs)
}

func (stats *fwdListStats) recordAllocFailure() {
	if stats == nil {
		return
	}
	stats.allocFailures.Add(context.Background(), 1, stats.attrs)
}

func (stats *fwdListStats) recordChunkGrowth() {
	if stats == nil {
		return
	}
	stats.chunks.Add(context.Background(), 1, stats.attrs)
}

func newFwdListStats(name string) *fwdListStats {
	meter := otel.Meter(fmt.Sprintf("%s/%s", FwdListStatsName, name))
	return &fwdListStats{
		attrs: metric.WithAttributeSet(attribute.NewSet(
			attribute.String("fwdlist.name", name),
		)),
		liveNodes: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"fwdlist.nodes.live",
			metric.WithDescription("The number of nodes linked into forward lists."),
		)),
		chunks: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"fwdlist.arena.chunks",
			metric.WithDescription("The number of node chunks allocated by the arenas."),
		)),
		allocated: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"fwdlist.nodes.allocated",
			metric.WithDescription("The number of node allocations."),
		)),
		recycled: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"fwdlist.nodes.recycled",
			metric.WithDescription("The number of nodes released back to the arenas."),
		)),
		allocFailures: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"fwdlist.alloc.failures",
			metric.WithDescription("The number of node allocations refused by an exhausted arena."),
		)),
	}
}
