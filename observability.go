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

import "time"

// Recorder receives encode and decode lifecycle events from a codec.
// Implementations typically record metrics; [NewOTelRecorder] provides
// the OpenTelemetry-backed implementation.
//
// Encode and decode are pure in-memory operations, so the hooks carry the
// measured duration rather than start/end pairs.
//
// Thread safety: all methods must be safe for concurrent use.
type Recorder interface {
	// ObserveEncode is called after a value was written to a path.
	// variant is the concrete variant type name.
	ObserveEncode(variant string, d time.Duration)

	// ObserveDecode is called after a decode attempt. On a miss, matched
	// is false and variant is empty.
	ObserveDecode(path string, variant string, matched bool, d time.Duration)
}
