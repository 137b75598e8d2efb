// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Service struct {
	cycleCount    *prometheus.CounterVec
	cycleDuration *prometheus.HistogramVec

	switches        *prometheus.GaugeVec
	sessionDuration *prometheus.HistogramVec
}

func NewPrometheusService() (*Service, error) {
	cycleCount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provision_cycles_total",
		Help: "Counter for switch provisioning cycles",
	}, []string{"datapath", "result"})

	cycleDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provision_cycle_duration_seconds",
		Help:    "The latency of one full provisioning cycle",
		Buckets: []float64{1e-4, 1e-3, 1e-2, 1e-1, 1, 1e1},
	}, []string{"datapath"})

	switches := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "connected_switches",
		Help: "Number of switches currently connected to the controller",
	}, []string{"datapath"})

	sessionDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "switch_session_duration_seconds",
		Help: "The lifetime of a switch connection",
		Buckets: []float64{
			1 * time.Minute.Seconds(),
			10 * time.Minute.Seconds(),
			30 * time.Minute.Seconds(),

			1 * time.Hour.Seconds(),
			6 * time.Hour.Seconds(),
			12 * time.Hour.Seconds(),
			24 * time.Hour.Seconds(),

			7 * 24 * time.Hour.Seconds(),
		},
	}, []string{"datapath"})

	for _, c := range []prometheus.Collector{cycleCount, cycleDuration, switches, sessionDuration} {
		if err := prometheus.Register(c); err != nil {
			return nil, err
		}
	}

	s := &Service{
		cycleCount:    cycleCount,
		cycleDuration: cycleDuration,

		switches:        switches,
		sessionDuration: sessionDuration,
	}

	return s, nil
}

func (s *Service) SaveCycles(c *Cycle) {
	s.cycleCount.WithLabelValues(c.Datapath, c.Result).Inc()
	s.cycleDuration.WithLabelValues(c.Datapath).Observe(c.Duration)
}

func (s *Service) SaveSessions(sess *Session) {
	if sess.Duration == 0 {
		s.switches.WithLabelValues(sess.Datapath).Inc()
		return
	}

	s.switches.WithLabelValues(sess.Datapath).Dec()
	s.sessionDuration.WithLabelValues(sess.Datapath).Observe(sess.Duration)
}

func (s *Service) Stop() error {
	prometheus.Unregister(s.cycleCount)
	prometheus.Unregister(s.cycleDuration)
	prometheus.Unregister(s.switches)
	prometheus.Unregister(s.sessionDuration)

	return nil
}
