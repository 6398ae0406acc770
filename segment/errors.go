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

package segment

import "errors"

var (
	// ErrOverlappingVariants indicates two variants whose templates are
	// fully consumed at the same decision node, making the path ambiguous.
	ErrOverlappingVariants = errors.New("variants terminate at the same path")

	// ErrParameterConflict indicates variants whose templates place
	// parameters at the same position but disagree on field type or on
	// basic versus rest capture.
	ErrParameterConflict = errors.New("conflicting parameters at the same path position")

	// ErrUnsupportedShape indicates a shape kind the builder cannot derive
	// a segment for.
	ErrUnsupportedShape = errors.New("unsupported shape")
)
