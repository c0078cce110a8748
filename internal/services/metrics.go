// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settingsSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blogdeck",
		Name:      "settings_saves_total",
		Help:      "Discussion settings saves issued on screen exit, by outcome.",
	}, []string{"outcome"})

	settingsSaveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blogdeck",
		Name:      "settings_save_duration_seconds",
		Help:      "Time spent persisting discussion settings.",
		Buckets:   prometheus.DefBuckets,
	})
)

const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
)
