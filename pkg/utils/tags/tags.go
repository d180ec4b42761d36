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

// Package tags computes the changes needed to converge a set of AWS tags.
package tags

import "sort"

// DiffTags returns the tags that should be set on the remote resource and the
// keys that should be removed from it. Tags whose value changed are only set,
// since setting a tag overwrites its value. The removed keys are sorted.
func DiffTags(local, remote map[string]string) (set map[string]string, remove []string) {
	set = make(map[string]string, len(local))
	remove = []string{}
	for k, v := range local {
		if rv, ok := remote[k]; !ok || rv != v {
			set[k] = v
		}
	}
	for k := range remote {
		if _, ok := local[k]; !ok {
			remove = append(remove, k)
		}
	}
	sort.Strings(remove)
	return set, remove
}

// Equal returns true if both tag sets hold the same key value pairs.
func Equal(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
