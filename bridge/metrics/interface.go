// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package metrics

import "time"

type Cycle struct {
	Datapath string
	Result   string

	StartedAt time.Time
	Duration  float64
}

func NewCycle(datapath string) *Cycle {
	return &Cycle{
		Datapath: datapath,

		StartedAt: time.Now(),
	}
}

func (c *Cycle) Finish(result string) {
	c.Result = result
	c.Duration = time.Since(c.StartedAt).Seconds()
}

type Session struct {
	Datapath string

	ConnectedAt time.Time
	Duration    float64
}

func NewSession(datapath string) *Session {
	return &Session{
		Datapath:    datapath,
		ConnectedAt: time.Now(),
	}
}

func (s *Session) Delete() {
	s.Duration = time.Since(s.ConnectedAt).Seconds()
}

type InstrumentProvision interface {
	SaveCycles(c *Cycle)
	SaveSessions(s *Session)
	Stop() error
}
