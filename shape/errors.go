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

package shape

import "errors"

var (
	// ErrUnsupportedType indicates a type whose kind has no path encoding
	// (pointers, maps, channels, functions, complex numbers).
	ErrUnsupportedType = errors.New("unsupported endpoint type")

	// ErrNoVariants indicates an interface type with no registered variants.
	ErrNoVariants = errors.New("interface has no registered variants")

	// ErrVariantNotStruct indicates a registered variant that is not a struct type.
	ErrVariantNotStruct = errors.New("variant must be a struct type")

	// ErrDuplicateVariant indicates the same variant type registered twice.
	ErrDuplicateVariant = errors.New("variant registered more than once")

	// ErrTemplateSyntax indicates a malformed path template fragment.
	ErrTemplateSyntax = errors.New("invalid template syntax")

	// ErrUnknownTemplateField indicates a template parameter that names no
	// field of its variant.
	ErrUnknownTemplateField = errors.New("template references unknown field")

	// ErrDuplicateTemplateField indicates a field referenced by more than
	// one template parameter.
	ErrDuplicateTemplateField = errors.New("template references field more than once")

	// ErrUnreferencedField indicates a template that references some but
	// not all fields of its variant.
	ErrUnreferencedField = errors.New("template must reference every field")

	// ErrMultipleRest indicates more than one rest parameter in a template.
	ErrMultipleRest = errors.New("template declares more than one rest parameter")

	// ErrRestNotLast indicates fragments following a rest parameter.
	ErrRestNotLast = errors.New("rest parameter must be the final fragment")

	// ErrRestTarget indicates a rest parameter bound to a field that is
	// neither a slice nor a string.
	ErrRestTarget = errors.New("rest parameter requires a slice or string field")
)
