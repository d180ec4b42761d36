/*
Copyright 2025 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package setup

import (
	"strings"

	"github.com/pkg/errors"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/controller"
)

const errFmtSetup = "cannot setup %s controller"

// SetupControllerFn initializes one controller with its scoped Options.
type SetupControllerFn func(ctrl.Manager, controller.Options) error //nolint:golint

type entry struct {
	name string
	fn   SetupControllerFn
}

// Batch sets up a group of controllers, each with the options overridden
// for "<prefix>.<name>".
type Batch struct {
	manager ctrl.Manager
	options controller.OptionsSet
	prefix  string
	entries []entry
}

// NewBatch returns a Batch whose controllers are scoped below prefix.
func NewBatch(manager ctrl.Manager, options controller.OptionsSet, prefix string) *Batch {
	return &Batch{
		manager: manager,
		options: options,
		prefix:  strings.TrimSuffix(prefix, "."),
	}
}

// Add registers the setup function of the controller called name.
func (b *Batch) Add(name string, fn SetupControllerFn) {
	b.entries = append(b.entries, entry{name: name, fn: fn})
}

// Names returns the scoped option keys of the registered controllers in
// registration order.
func (b *Batch) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = b.scoped(e.name)
	}
	return names
}

// Run sets up the controllers in registration order and stops at the first
// failure.
func (b *Batch) Run() error {
	for _, e := range b.entries {
		name := b.scoped(e.name)
		if err := e.fn(b.manager, b.options.Get(name)); err != nil {
			return errors.Wrapf(err, errFmtSetup, name)
		}
	}
	return nil
}

func (b *Batch) scoped(name string) string {
	if b.prefix == "" {
		return name
	}
	return b.prefix + "." + name
}
