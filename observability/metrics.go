package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConnectionsOnline tracks live realtime connections per wave
	ConnectionsOnline = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "traffic_connections_online",
			Help: "Number of realtime connections currently registered, by wave",
		},
		[]string{"wave"},
	)

	// WaveDeliveriesTotal counts new_post emits per wave
	WaveDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_wave_deliveries_total",
			Help: "Total number of private new_post emits, by wave",
		},
		[]string{"wave"},
	)

	// DistributionsTotal counts Distribute calls by mode (waves or broadcast)
	DistributionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_distributions_total",
			Help: "Total number of post distributions",
		},
		[]string{"mode"},
	)

	// ReupDecisionsTotal counts quota decisions
	ReupDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_reup_decisions_total",
			Help: "Total number of reup attempts by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	PointsTransferredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_points_transferred_total",
			Help: "Total number of points moved by ended views and clicks",
		},
		[]string{"source"},
	)

	WorkerRestartsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_worker_restarts_total",
			Help: "Total number of supervised worker restarts, by worker and reason",
		},
		[]string{"worker", "reason"},
	)

	// InboundEventsTotal counts realtime frames by event name and status
	InboundEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_inbound_events_total",
			Help: "Total number of realtime events handled",
		},
		[]string{"event", "status"},
	)
)

func WaveLabel(wave int) string {
	return strconv.Itoa(wave)
}

func RecordInbound(eventName string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	InboundEventsTotal.WithLabelValues(eventName, status).Inc()
}
