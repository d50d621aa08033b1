package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the game counters exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	TapsTotal        prometheus.Counter
	CoinsEarnedTotal prometheus.Counter
	CoinsSpentTotal  prometheus.Counter
	GamblesTotal     *prometheus.CounterVec
	PurchasesTotal   *prometheus.CounterVec
	CollectorTicks   prometheus.Counter
	CoinsBalance     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TapsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plink_taps_total",
			Help: "Coin taps handled",
		}),
		CoinsEarnedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plink_coins_earned_total",
			Help: "Coins credited by genuine earning events",
		}),
		CoinsSpentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plink_coins_spent_total",
			Help: "Coins debited by spends and purchases",
		}),
		GamblesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plink_gambles_total",
			Help: "Gamble rounds by outcome",
		}, []string{"outcome"}),
		PurchasesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plink_purchases_total",
			Help: "Completed upgrade purchases by upgrade id",
		}, []string{"upgrade"}),
		CollectorTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plink_collector_ticks_total",
			Help: "Auto-collector ticks that credited coins",
		}),
		CoinsBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plink_coins_balance",
			Help: "Current spendable coin balance",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.TapsTotal,
		m.CoinsEarnedTotal,
		m.CoinsSpentTotal,
		m.GamblesTotal,
		m.PurchasesTotal,
		m.CollectorTicks,
		m.CoinsBalance,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
