// Package observability exposes Prometheus metrics for computed and stored workouts.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	trainingsComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "training",
		Name:      "computed_total",
		Help:      "Number of workout summaries computed, by training type.",
	}, []string{"training_type"})
	trainingsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "training",
		Name:      "rejected_total",
		Help:      "Number of sensor packages rejected, by reason.",
	}, []string{"reason"})
	caloriesSpent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "training",
		Name:      "calories_total",
		Help:      "Calories burned across computed workouts, by training type.",
	}, []string{"training_type"})
	workoutStoredGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ftracker",
		Subsystem: "store",
		Name:      "last_workout_stored_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout written to the store.",
	})
)

func init() {
	prometheus.MustRegister(trainingsComputed, trainingsRejected, caloriesSpent, workoutStoredGauge)
}

// RecordComputed counts one computed summary.
func RecordComputed(trainingType string, calories float64) {
	trainingsComputed.WithLabelValues(trainingType).Inc()
	if calories > 0 {
		caloriesSpent.WithLabelValues(trainingType).Add(calories)
	}
}

// RecordRejected counts one package that failed to compute.
func RecordRejected(reason string) {
	trainingsRejected.WithLabelValues(reason).Inc()
}

// RecordStored updates the store watermark gauge.
func RecordStored(ts time.Time) {
	if ts.IsZero() {
		return
	}
	workoutStoredGauge.Set(float64(ts.Unix()))
}
