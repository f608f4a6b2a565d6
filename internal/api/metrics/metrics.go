// Package metrics defines and registers all custom Prometheus metrics for the
// hotel inventory API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ── Account metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts authentication attempts by classified outcome.
// Label:
//   - result: "success", "invalid_credentials", "blocked"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts successfully created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingConflictsTotal counts booking attempts rejected before commit.
// Label:
//   - reason: "overlap", "room_busy", "not_bookable"
var BookingConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of booking attempts rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Cleaning metrics ──────────────────────────────────────────────────────────

// CleaningTasksTotal counts cleaning task transitions.
// Label:
//   - status: "assigned" or "done"
var CleaningTasksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cleaning_tasks_total",
		Help:      "Total number of cleaning task transitions, by resulting status.",
	},
	[]string{"status"},
)

// ── Stay event metrics ────────────────────────────────────────────────────────

// EventsProcessedTotal counts stay events that completed processing.
// Labels:
//   - type: the event type (e.g. "checked_out")
//   - source: the reporting system (e.g. "front_desk")
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of stay events successfully processed.",
	},
	[]string{"type", "source"},
)

// EventsErrorsTotal counts stay events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "room_not_found")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of stay events that failed processing.",
	},
	[]string{"reason"},
)

// EventsQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// OccupancyRate exposes the occupancy percentage of the most recently
// computed daily report.
var OccupancyRate = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "occupancy_rate_percent",
		Help:      "Occupancy rate of the last computed daily report.",
	},
)
