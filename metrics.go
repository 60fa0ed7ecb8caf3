// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// CacheLabel distinguishes the hits, misses and stale entries of the
	// operation caches.
	CacheLabel = "outcome"
)

type collector struct {
	m          *Manager
	allocated  *prometheus.Desc
	free       *prometheus.Desc
	live       *prometheus.Desc
	produced   *prometheus.Desc
	collection *prometheus.Desc
	reclaimed  *prometheus.Desc
	cache      *prometheus.Desc
}

// NewCollector returns a Prometheus collector that exports the statistics of
// manager m: size of the node table, number of free and live nodes, nodes
// produced and reclaimed, number of garbage collections and cache usage. The
// values are read each time the collector is scraped, which must not happen
// while m is used by another goroutine.
func NewCollector(m *Manager, namespace string) prometheus.Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, nil)
	}
	return &collector{
		m:          m,
		allocated:  desc("nodes_allocated", "Number of slots in the node table."),
		free:       desc("nodes_free", "Number of free slots in the node table."),
		live:       desc("nodes_live", "Number of nodes in the node table, terminal included."),
		produced:   desc("nodes_produced_total", "Number of nodes ever created."),
		collection: desc("gc_total", "Number of garbage collections."),
		reclaimed:  desc("nodes_reclaimed_total", "Number of nodes returned to the free list."),
		cache:      desc("cache_lookups_total", "Number of lookups in the operation caches.", CacheLabel),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocated
	ch <- c.free
	ch <- c.live
	ch <- c.produced
	ch <- c.collection
	ch <- c.reclaimed
	ch <- c.cache
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	m := c.m
	ch <- prometheus.MustNewConstMetric(c.allocated, prometheus.GaugeValue, float64(len(m.nodes)))
	ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(m.freenum))
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(m.LiveNodes()))
	ch <- prometheus.MustNewConstMetric(c.produced, prometheus.CounterValue, float64(m.produced))
	ch <- prometheus.MustNewConstMetric(c.collection, prometheus.CounterValue, float64(len(m.history)))
	ch <- prometheus.MustNewConstMetric(c.reclaimed, prometheus.CounterValue, float64(m.reclaimed))
	ch <- prometheus.MustNewConstMetric(c.cache, prometheus.CounterValue, float64(m.opHit), "hit")
	ch <- prometheus.MustNewConstMetric(c.cache, prometheus.CounterValue, float64(m.opMiss), "miss")
	ch <- prometheus.MustNewConstMetric(c.cache, prometheus.CounterValue, float64(m.opStale), "stale")
}
