// Package metrics records Prometheus metrics for the Sankhya conversion
// service: conversion counts by language, resolved mode and cache outcome,
// conversion latency, and error counts by error code.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache outcome label values.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
	CacheOff  = "off"
)

// ConversionMetrics holds the instruments for the conversion service.
type ConversionMetrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	errors      *prometheus.CounterVec
}

// NewConversionMetrics creates and registers the conversion instruments on a
// fresh registry.
func NewConversionMetrics() *ConversionMetrics {
	m := &ConversionMetrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sankhya_conversions_total",
			Help: "Conversions served, by language, resolved mode and cache outcome.",
		}, []string{"lang", "mode", "cache"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sankhya_conversion_duration_seconds",
			Help:    "Time to serve a conversion request.",
			Buckets: prometheus.DefBuckets,
		}, []string{"lang"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sankhya_conversion_errors_total",
			Help: "Errors while serving conversions, by error code.",
		}, []string{"errcode"}),
	}
	m.registry.MustRegister(m.conversions, m.duration, m.errors)
	return m
}

// RecordConversion counts one served conversion and its latency.
func (m *ConversionMetrics) RecordConversion(lang, mode, cacheOutcome string, elapsed time.Duration) {
	m.conversions.WithLabelValues(lang, mode, cacheOutcome).Inc()
	m.duration.WithLabelValues(lang).Observe(elapsed.Seconds())
}

// RecordError counts one error, whether it rejected a request or was
// absorbed (a cache outage).
func (m *ConversionMetrics) RecordError(errCode string) {
	m.errors.WithLabelValues(errCode).Inc()
}

// Handler exposes the registry in Prometheus text format, for mounting at
// /metrics.
func (m *ConversionMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
