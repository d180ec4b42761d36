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

// Package controller holds the options the ECR controllers are set up with
// and their per-controller overrides.
package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/crossplane/crossplane-runtime/pkg/controller"
	"sigs.k8s.io/yaml"

	connectaws "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/connect/aws"
)

const defaultScope = "default"

// Options configure a single controller.
type Options struct {
	controller.Options

	// PollIntervalJitter is added to the poll interval of every resource so
	// that resources created together are not polled together.
	PollIntervalJitter time.Duration

	// Timeout bounds a single reconciliation pass.
	Timeout time.Duration

	// AWSConfig returns the AWS configuration for a resource.
	AWSConfig connectaws.ConfigFn
}

// OptionsOverride allows to override specific Options properties.
type OptionsOverride struct {
	PollInterval            *time.Duration
	PollIntervalJitter      *time.Duration
	Timeout                 *time.Duration
	MaxConcurrentReconciles *int
}

func (override OptionsOverride) applyTo(options *Options) {
	if override.PollInterval != nil {
		options.PollInterval = *override.PollInterval
	}
	if override.PollIntervalJitter != nil {
		options.PollIntervalJitter = *override.PollIntervalJitter
	}
	if override.Timeout != nil {
		options.Timeout = *override.Timeout
	}
	if override.MaxConcurrentReconciles != nil {
		options.MaxConcurrentReconciles = *override.MaxConcurrentReconciles
	}
}

type overrideParser func(o *OptionsOverride, value string) error

func durationParser(set func(o *OptionsOverride, d *time.Duration)) overrideParser {
	return func(o *OptionsOverride, value string) error {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		if d < 0 {
			return fmt.Errorf("duration %s must not be negative", value)
		}
		set(o, &d)
		return nil
	}
}

var overrideParsers = map[string]overrideParser{
	"pollInterval":       durationParser(func(o *OptionsOverride, d *time.Duration) { o.PollInterval = d }),
	"pollIntervalJitter": durationParser(func(o *OptionsOverride, d *time.Duration) { o.PollIntervalJitter = d }),
	"timeout":            durationParser(func(o *OptionsOverride, d *time.Duration) { o.Timeout = d }),
	"maxConcurrentReconciles": func(o *OptionsOverride, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if n < 1 {
			return fmt.Errorf("%d must be positive", n)
		}
		o.MaxConcurrentReconciles = &n
		return nil
	},
}

// OptionsSet allows to override Options for specific controllers.
type OptionsSet struct {
	defaultOptions Options
	specific       map[string]OptionsOverride
}

// NewOptionsSet returns an OptionsSet without overrides.
func NewOptionsSet(defaultOptions Options) OptionsSet {
	return OptionsSet{
		defaultOptions: defaultOptions,
		specific:       map[string]OptionsOverride{},
	}
}

// AddOverrides adds overrides for specific controllers from the provided map
// which is similar to ConfigMap data.
// Key format is "<scope>.<property>", e.g. "ecr.repository.pollInterval".
// Properties without scope or with "default" scope override default values.
func (set *OptionsSet) AddOverrides(values map[string]string) error {
	for key, value := range values {
		if err := set.addOverride(key, value); err != nil {
			return fmt.Errorf("failed to add override for %s: %w", key, err)
		}
	}
	return nil
}

// AddOverridesYAML adds the overrides of a YAML document holding a flat map
// of keys to values. See AddOverrides for the key format.
func (set *OptionsSet) AddOverridesYAML(data []byte) error {
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse overrides: %w", err)
	}
	return set.AddOverrides(values)
}

func (set *OptionsSet) addOverride(key, value string) error {
	scope, propName := defaultScope, key
	if i := strings.LastIndex(key, "."); i != -1 {
		scope, propName = key[:i], key[i+1:]
	}
	parse, ok := overrideParsers[propName]
	if !ok {
		return fmt.Errorf("unknown override property %s", propName)
	}
	overrides := set.specific[scope]
	if err := parse(&overrides, value); err != nil {
		return fmt.Errorf("failed to parse %s value %s: %w", propName, value, err)
	}
	if scope == defaultScope {
		overrides.applyTo(&set.defaultOptions)
		return nil
	}
	set.specific[scope] = overrides
	return nil
}

// Default returns default Options.
func (set OptionsSet) Default() Options {
	return set.defaultOptions
}

// Get returns Options for the specific controller.
func (set OptionsSet) Get(name string) Options {
	result := set.defaultOptions
	if override, ok := set.specific[name]; ok {
		override.applyTo(&result)
	}
	return result
}
