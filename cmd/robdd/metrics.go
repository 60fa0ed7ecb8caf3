// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"io"

	"github.com/dalzilio/robdd"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "robdd"

// writeMetrics prints the statistics of m in the Prometheus text format.
func writeMetrics(w io.Writer, m *robdd.Manager) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(robdd.NewCollector(m, namespace)); err != nil {
		return errors.Wrap(err, "registering collector")
	}
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "writing metrics")
		}
	}
	return nil
}
