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

import "fmt"

// Option configures codec construction.
type Option func(*config)

// config collects options before validation.
type config struct {
	variants    []variantConfig
	diagnostics DiagnosticHandler
	recorder    Recorder
	errs        []error
}

type variantConfig struct {
	prototype any
	template  string
	declared  bool
}

func defaultConfig() *config {
	return &config{}
}

func (c *config) validate() error {
	for _, err := range c.errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// WithVariant registers a variant struct type of the endpoint interface,
// optionally with an explicit path template. The prototype value is only
// inspected for its type.
//
// Template syntax: slash-separated fragments, each a literal, a "{Field}"
// parameter, or a trailing "{*Field}" rest capture bound to a slice or
// string field. The templates "" and "/" match the root path. A rest
// capture over a slice decodes its empty case to an allocated empty
// slice, never nil; a nil slice encodes to the same path and therefore
// decodes back as the empty slice.
//
// Without a template argument, a PathTemplate() string method on the
// variant is consulted; failing that, the template defaults to the type
// name followed by one parameter per exported field.
//
// Example:
//
//	c := endpoint.MustNewCodec[Page](
//	    endpoint.WithVariant(Home{}, "/"),
//	    endpoint.WithVariant(User{}, "user/{ID}"),
//	    endpoint.WithVariant(Settings{}), // encodes as "/Settings"
//	)
func WithVariant(prototype any, template ...string) Option {
	return func(c *config) {
		if len(template) > 1 {
			c.errs = append(c.errs, fmt.Errorf("%w: variant %T got %d",
				ErrTooManyTemplates, prototype, len(template)))
			return
		}
		vc := variantConfig{prototype: prototype}
		if len(template) == 1 {
			vc.template = template[0]
			vc.declared = true
		}
		c.variants = append(c.variants, vc)
	}
}

// WithDiagnostics sets a diagnostic handler for codec construction.
//
// Diagnostic events are optional informational events describing how the
// codec was assembled, such as templates inferred for variants that did
// not declare one. The codec functions correctly whether diagnostics are
// collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := endpoint.DiagnosticHandlerFunc(func(e endpoint.DiagnosticEvent) {
//	    slog.Debug(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	c := endpoint.MustNewCodec[Page](
//	    endpoint.WithVariant(Home{}, "/"),
//	    endpoint.WithDiagnostics(handler),
//	)
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(c *config) {
		c.diagnostics = handler
	}
}

// WithObservability sets a recorder that receives encode and decode
// lifecycle events, typically backed by a metrics system. See
// [NewOTelRecorder] for the OpenTelemetry implementation.
//
// Example:
//
//	rec, err := endpoint.NewOTelRecorder()
//	if err != nil {
//	    return err
//	}
//	c := endpoint.MustNewCodec[Page](
//	    endpoint.WithVariant(Home{}, "/"),
//	    endpoint.WithObservability(rec),
//	)
func WithObservability(rec Recorder) Option {
	return func(c *config) {
		c.recorder = rec
	}
}
