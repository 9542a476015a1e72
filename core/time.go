// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) Time {
	var interval time.Duration
	if cfg.EventPollDelay <= 0 {
		interval = time.Millisecond
	} else {
		interval = time.Duration(cfg.EventPollDelay) * time.Millisecond
	}

	return Time{
		eventPollDelay: interval,
		eventTicker:    time.NewTicker(interval),
	}
}

// Time contains the time services and tickers
type Time struct {
	eventPollDelay time.Duration
	eventTicker    *time.Ticker
}

// EventPollDelay gets the interval between window event polls
func (t Time) EventPollDelay() time.Duration {
	return t.eventPollDelay
}

// EventTicker gets the initialized event ticker for the event loop
func (t Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// Stop stops the tickers
func (t Time) Stop() {
	t.eventTicker.Stop()
}
