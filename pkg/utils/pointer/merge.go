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

// Package pointer contains helpers to project observed values into a
// status without ever clearing a previously observed value.
package pointer

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Merge returns observed if it is not the zero value of T. Otherwise it
// returns current.
func Merge[T comparable](current, observed T) T {
	var zero T
	if observed == zero {
		return current
	}
	return observed
}

// MergePtr returns observed if it is not nil. Otherwise it returns current.
func MergePtr[T any](current, observed *T) *T {
	if observed == nil {
		return current
	}
	return observed
}

// TimeToMetaTime converts a standard Go time.Time to a K8s metav1.Time.
func TimeToMetaTime(t *time.Time) *metav1.Time {
	if t == nil {
		return nil
	}
	return &metav1.Time{Time: *t}
}
