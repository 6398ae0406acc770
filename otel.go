// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package endpoint

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level cached context reused across metric recordings. Encode
// and decode are synchronous in-memory operations with no cancellation,
// so context.Background() is always the right context and allocating one
// per call would be waste.
var bgCtx = context.Background()

// OTelRecorder records codec activity to OpenTelemetry metrics:
//
//   - endpoint.encode.total (counter, by variant)
//   - endpoint.decode.total (counter, by outcome and variant)
//   - endpoint.decode.duration (histogram, seconds, by outcome)
//
// Safe for concurrent use.
type OTelRecorder struct {
	encodes   metric.Int64Counter
	decodes   metric.Int64Counter
	decodeDur metric.Float64Histogram
}

// OTelOption configures an OTelRecorder.
type OTelOption func(*otelConfig)

type otelConfig struct {
	provider metric.MeterProvider
}

// WithMeterProvider supplies a custom OpenTelemetry [metric.MeterProvider].
// Without it, the global provider is used.
//
// Example:
//
//	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	rec, err := endpoint.NewOTelRecorder(endpoint.WithMeterProvider(mp))
func WithMeterProvider(provider metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		c.provider = provider
	}
}

// NewOTelRecorder creates a Recorder backed by OpenTelemetry metrics.
// It returns an error if any instrument cannot be created.
func NewOTelRecorder(opts ...OTelOption) (*OTelRecorder, error) {
	cfg := &otelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.provider == nil {
		cfg.provider = otel.GetMeterProvider()
	}

	meter := cfg.provider.Meter("rivaas.dev/endpoint")

	r := &OTelRecorder{}
	var err error

	r.encodes, err = meter.Int64Counter("endpoint.encode.total",
		metric.WithDescription("Endpoint values encoded to paths"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encode counter: %w", err)
	}

	r.decodes, err = meter.Int64Counter("endpoint.decode.total",
		metric.WithDescription("Path decode attempts by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create decode counter: %w", err)
	}

	r.decodeDur, err = meter.Float64Histogram("endpoint.decode.duration",
		metric.WithDescription("Path decode duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create decode histogram: %w", err)
	}

	return r, nil
}

// ObserveEncode implements [Recorder].
func (r *OTelRecorder) ObserveEncode(variant string, _ time.Duration) {
	r.encodes.Add(bgCtx, 1, metric.WithAttributes(
		attribute.String("endpoint.variant", variant),
	))
}

// ObserveDecode implements [Recorder].
func (r *OTelRecorder) ObserveDecode(_ string, variant string, matched bool, d time.Duration) {
	outcome := "match"
	if !matched {
		outcome = "no_match"
	}
	attrs := []attribute.KeyValue{
		attribute.String("endpoint.outcome", outcome),
	}
	if variant != "" {
		attrs = append(attrs, attribute.String("endpoint.variant", variant))
	}
	set := metric.WithAttributes(attrs...)
	r.decodes.Add(bgCtx, 1, set)
	r.decodeDur.Record(bgCtx, d.Seconds(), set)
}
