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

// Package policy compares IAM policy documents such as ECR repository
// policies.
package policy

import (
	"encoding/json"
	"sort"

	"github.com/google/go-cmp/cmp"
)

// ArePolicyDocumentsEqual determines if the two policy documents can be
// considered equal. AWS returns policies re-formatted, with single-element
// lists collapsed and statements as a list, so both documents are normalized
// before they are compared. Documents that are not valid JSON are compared as
// text.
func ArePolicyDocumentsEqual(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	var docA, docB any
	if err := json.Unmarshal([]byte(a), &docA); err != nil {
		return a == b
	}
	if err := json.Unmarshal([]byte(b), &docB); err != nil {
		return false
	}
	return cmp.Equal(normalize("", docA), normalize("", docB))
}

// normalize rewrites v so that equivalent IAM encodings compare equal:
// Statement is always a list, a string is the same as a list holding only
// that string, and string lists are order insensitive.
func normalize(key string, v any) any {
	if m, ok := v.(map[string]any); ok && key == "Statement" {
		v = []any{m}
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(k, val)
		}
		return out
	case []any:
		if s, ok := stringList(t); ok {
			return normalizeStrings(s)
		}
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, normalize("", val))
		}
		return out
	case string:
		if key == "Version" || key == "Sid" || key == "Id" || key == "Effect" {
			return t
		}
		return normalizeStrings([]string{t})
	}
	return v
}

func stringList(l []any) ([]string, bool) {
	out := make([]string, 0, len(l))
	for _, v := range l {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func normalizeStrings(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}
