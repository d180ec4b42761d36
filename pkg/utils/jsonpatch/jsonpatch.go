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

// Package jsonpatch compares JSON documents and values that marshal to JSON.
package jsonpatch

import (
	"encoding/json"
	"sort"

	jsonpatch "github.com/evanphx/json-patch"
	mjsonpatch "github.com/mattbaird/jsonpatch"
)

// ChangedPaths returns the sorted JSON pointer paths that differ between
// source and destination. It is empty when both marshal to equal JSON.
func ChangedPaths(source, destination any) ([]string, error) {
	sourceJSON, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}
	destinationJSON, err := json.Marshal(destination)
	if err != nil {
		return nil, err
	}
	ops, err := mjsonpatch.CreatePatch(sourceJSON, destinationJSON)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(ops))
	seen := map[string]bool{}
	for _, op := range ops {
		if seen[op.Path] {
			continue
		}
		seen[op.Path] = true
		paths = append(paths, op.Path)
	}
	sort.Strings(paths)
	return paths, nil
}

// EqualDocuments returns true if a and b are semantically equal JSON
// documents. Two empty documents are equal; documents that cannot be parsed
// are compared as text.
func EqualDocuments(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	if !json.Valid([]byte(a)) || !json.Valid([]byte(b)) {
		return a == b
	}
	return jsonpatch.Equal([]byte(a), []byte(b))
}
