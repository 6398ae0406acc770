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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// recordingRecorder captures observations for assertions.
type recordingRecorder struct {
	encodes []string
	decodes []struct {
		path    string
		variant string
		matched bool
	}
}

func (r *recordingRecorder) ObserveEncode(variant string, _ time.Duration) {
	r.encodes = append(r.encodes, variant)
}

func (r *recordingRecorder) ObserveDecode(path, variant string, matched bool, _ time.Duration) {
	r.decodes = append(r.decodes, struct {
		path    string
		variant string
		matched bool
	}{path, variant, matched})
}

func TestCodecReportsToRecorder(t *testing.T) {
	rec := &recordingRecorder{}
	c := pageCodec(t, WithObservability(rec))

	c.Encode(User{ID: 1})
	c.Encode(Home{})
	c.Decode("/about")
	c.Decode("/nope")

	assert.Equal(t, []string{"User", "Home"}, rec.encodes)

	require.Len(t, rec.decodes, 2)
	assert.Equal(t, "/about", rec.decodes[0].path)
	assert.Equal(t, "About", rec.decodes[0].variant)
	assert.True(t, rec.decodes[0].matched)
	assert.Equal(t, "/nope", rec.decodes[1].path)
	assert.Equal(t, "", rec.decodes[1].variant)
	assert.False(t, rec.decodes[1].matched)
}

// collect drains the manual reader and indexes metrics by name.
func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func attrValue(t *testing.T, set attribute.Set, key string) string {
	t.Helper()
	v, ok := set.Value(attribute.Key(key))
	require.True(t, ok, "attribute %q", key)
	return v.AsString()
}

func TestOTelRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	rec, err := NewOTelRecorder(WithMeterProvider(provider))
	require.NoError(t, err)

	c := pageCodec(t, WithObservability(rec))
	c.Encode(User{ID: 1})
	c.Encode(User{ID: 2})
	c.Decode("/user/3")
	c.Decode("/nope")

	metrics := collect(t, reader)

	encodes, ok := metrics["endpoint.encode.total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, encodes.DataPoints, 1)
	assert.Equal(t, int64(2), encodes.DataPoints[0].Value)
	assert.Equal(t, "User", attrValue(t, encodes.DataPoints[0].Attributes, "endpoint.variant"))

	decodes, ok := metrics["endpoint.decode.total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, decodes.DataPoints, 2)
	byOutcome := map[string]metricdata.DataPoint[int64]{}
	for _, dp := range decodes.DataPoints {
		byOutcome[attrValue(t, dp.Attributes, "endpoint.outcome")] = dp
	}
	require.Contains(t, byOutcome, "match")
	require.Contains(t, byOutcome, "no_match")
	assert.Equal(t, int64(1), byOutcome["match"].Value)
	assert.Equal(t, "User", attrValue(t, byOutcome["match"].Attributes, "endpoint.variant"))
	assert.Equal(t, int64(1), byOutcome["no_match"].Value)

	hist, ok := metrics["endpoint.decode.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var samples uint64
	for _, dp := range hist.DataPoints {
		samples += dp.Count
	}
	assert.Equal(t, uint64(2), samples)
}

func TestOTelRecorderDefaultsToGlobalProvider(t *testing.T) {
	rec, err := NewOTelRecorder()
	require.NoError(t, err)
	require.NotNil(t, rec)

	// The global provider is a no-op by default; recording must not panic.
	rec.ObserveEncode("Home", time.Microsecond)
	rec.ObserveDecode("/", "Home", true, time.Microsecond)
}
