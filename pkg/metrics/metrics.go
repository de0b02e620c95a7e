// Package metrics exposes Prometheus counters and histograms for the relay pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Stage string

const (
	StageChat       Stage = "chat"
	StageCompletion Stage = "completion"
	StageSynthesis  Stage = "synthesis"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "avatar_relay_requests_total",
		Help: "Total number of relay stage executions",
	}, []string{"stage", "status"})

	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "avatar_relay_stage_duration_seconds",
		Help:    "Duration of relay stages in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
	}, []string{"stage"})

	audioBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "avatar_relay_audio_bytes",
		Help:    "Size of synthesized audio in bytes",
		Buckets: prometheus.ExponentialBuckets(4096, 2, 10),
	})
)

// Observe records the outcome and duration of a stage that started at start.
func Observe(stage Stage, start time.Time, err error) {
	status := StatusSuccess

	if err != nil {
		status = StatusError
	}

	requestsTotal.WithLabelValues(string(stage), status).Inc()
	stageDuration.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())
}

func ObserveAudio(size int) {
	audioBytes.Observe(float64(size))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
