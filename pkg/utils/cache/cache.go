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

// Package cache indexes managed resources in the manager's cache.
package cache

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"
)

// RegionField is the name of the index of resources by AWS region.
const RegionField = "spec.forProvider.region"

// A RegionFn returns the AWS region of the supplied object.
type RegionFn func(o client.Object) string

// IndexByRegion sets up an index by AWS region in the cache for a given
// resource type.
func IndexByRegion(ctx context.Context, indexer client.FieldIndexer, object client.Object, region RegionFn) error {
	return indexer.IndexField(ctx, object, RegionField, func(o client.Object) []string {
		return []string{region(o)}
	})
}

// ListByRegion lists objects in the cache by AWS region.
func ListByRegion(ctx context.Context, reader client.Reader, objects client.ObjectList, region string) error {
	return reader.List(ctx, objects, client.MatchingFields{RegionField: region})
}
