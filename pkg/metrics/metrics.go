// Package metrics provides Prometheus instrumentation for the shop.
//
// There is no HTTP listener; the registry is read back by the shell when
// the session ends (Summary) and by tests through prometheus/testutil.
//
//	m := metrics.New()
//	r.Use(m.Middleware())
//	m.Listen(bus, store.Products.Len)
package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

const namespace = "shop"

// Metrics owns a private registry and the shop collectors.
type Metrics struct {
	Registry *prometheus.Registry

	// ActionsTotal counts menu actions by option name and outcome
	// ("ok" | "error").
	ActionsTotal *prometheus.CounterVec

	// ActionDuration tracks how long each menu action takes, prompts
	// included.
	ActionDuration *prometheus.HistogramVec

	// EventsTotal counts domain events by name.
	EventsTotal *prometheus.CounterVec

	// CatalogProducts is the current catalog size.
	CatalogProducts prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "menu",
			Name:      "actions_total",
			Help:      "Total menu actions run.",
		}, []string{"action", "outcome"}),
		ActionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "menu",
			Name:      "action_duration_seconds",
			Help:      "Duration of menu actions in seconds.",
			Buckets:   []float64{.01, .1, 1, 5, 15, 60, 300},
		}, []string{"action"}),
		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total domain events fired.",
		}, []string{"event"}),
		CatalogProducts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "products",
			Help:      "Number of products in the catalog.",
		}),
	}

	m.Registry.MustRegister(collectors.NewGoCollector())
	m.Registry.MustRegister(
		m.ActionsTotal,
		m.ActionDuration,
		m.EventsTotal,
		m.CatalogProducts,
	)
	return m
}

// Middleware records count, outcome and duration of every menu action.
func (m *Metrics) Middleware() router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(ctx context.Context) error {
			action := "unknown"
			if o, ok := router.OptionFromCtx(ctx); ok {
				action = o.Name
			}

			start := time.Now()
			err := next(ctx)

			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			m.ActionsTotal.WithLabelValues(action, outcome).Inc()
			m.ActionDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Listen counts every event on bus and keeps CatalogProducts in step with
// catalogSize after product events.
func (m *Metrics) Listen(bus *event.Bus, catalogSize func() int) {
	m.CatalogProducts.Set(float64(catalogSize()))

	bus.ListenAll(func(_ context.Context, name string, _ event.Payload) {
		m.EventsTotal.WithLabelValues(name).Inc()
		if strings.HasPrefix(name, "product.") {
			m.CatalogProducts.Set(float64(catalogSize()))
		}
	})
}

// Summary flattens every shop_* counter and gauge into name → total, summing
// across label values.
func (m *Metrics) Summary() (map[string]float64, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				out[mf.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[mf.GetName()] += metric.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
