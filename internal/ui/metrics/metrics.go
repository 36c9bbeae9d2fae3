// Package metrics exposes dashboard counters on a private Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shellboard"

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	pages     *prometheus.CounterVec
	shell     *prometheus.CounterVec
	themes    *prometheus.CounterVec
	reloads   *prometheus.CounterVec
	listeners prometheus.Gauge
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Full page renders by route.",
		}, []string{"route"}),
		shell: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shell_transitions_total",
			Help:      "Sidebar open/close requests and whether the state changed.",
		}, []string{"action", "changed"}),
		themes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting theme.",
		}, []string{"theme"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_reloads_total",
			Help:      "Dashboard data file reloads by result.",
		}, []string{"result"}),
		listeners: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_listeners",
			Help:      "Open live-update streams.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.pages, m.shell, m.themes, m.reloads, m.listeners,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// PageRendered counts a full page render for route.
func (m *Metrics) PageRendered(route string) {
	if m == nil {
		return
	}
	m.pages.WithLabelValues(route).Inc()
}

// ShellTransition counts a sidebar action and whether it changed the state.
func (m *Metrics) ShellTransition(action string, changed bool) {
	if m == nil {
		return
	}
	m.shell.WithLabelValues(action, strconv.FormatBool(changed)).Inc()
}

// ThemeToggled counts a toggle by the theme it switched to.
func (m *Metrics) ThemeToggled(theme string) {
	if m == nil {
		return
	}
	m.themes.WithLabelValues(theme).Inc()
}

// DataReloaded counts a reload attempt; err == nil counts as "ok".
func (m *Metrics) DataReloaded(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

// ListenerAdded counts an opened live-update stream.
func (m *Metrics) ListenerAdded() {
	if m == nil {
		return
	}
	m.listeners.Inc()
}

// ListenerRemoved counts a closed live-update stream.
func (m *Metrics) ListenerRemoved() {
	if m == nil {
		return
	}
	m.listeners.Dec()
}
