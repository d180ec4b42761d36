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

package tags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffTags(t *testing.T) {
	type args struct {
		local  map[string]string
		remote map[string]string
	}

	type want struct {
		set    map[string]string
		remove []string
	}

	cases := map[string]struct {
		args args
		want want
	}{
		"Add": {
			args: args{
				local:  map[string]string{"k1": "v1", "k2": "v2"},
				remote: map[string]string{},
			},
			want: want{
				set:    map[string]string{"k1": "v1", "k2": "v2"},
				remove: []string{},
			},
		},
		"Remove": {
			args: args{
				local:  map[string]string{},
				remote: map[string]string{"k2": "v2", "k1": "v1"},
			},
			want: want{
				set:    map[string]string{},
				remove: []string{"k1", "k2"},
			},
		},
		"UpdateValue": {
			args: args{
				local:  map[string]string{"k1": "v1", "k2": "v2.updated"},
				remote: map[string]string{"k1": "v1", "k2": "v2"},
			},
			want: want{
				set:    map[string]string{"k2": "v2.updated"},
				remove: []string{},
			},
		},
		"DropKey": {
			args: args{
				local:  map[string]string{"k1": "v1"},
				remote: map[string]string{"k1": "v1", "k2": "v2.updated"},
			},
			want: want{
				set:    map[string]string{},
				remove: []string{"k2"},
			},
		},
		"NoChange": {
			args: args{
				local:  map[string]string{"k1": "v1"},
				remote: map[string]string{"k1": "v1"},
			},
			want: want{
				set:    map[string]string{},
				remove: []string{},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			set, remove := DiffTags(tc.args.local, tc.args.remote)
			if diff := cmp.Diff(tc.want.set, set); diff != "" {
				t.Errorf("set: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.remove, remove); diff != "" {
				t.Errorf("remove: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	cases := map[string]struct {
		a, b map[string]string
		want bool
	}{
		"BothEmpty":   {want: true},
		"NilAndEmpty": {a: nil, b: map[string]string{}, want: true},
		"Same":        {a: map[string]string{"k1": "v1"}, b: map[string]string{"k1": "v1"}, want: true},
		"Value":       {a: map[string]string{"k1": "v1"}, b: map[string]string{"k1": "v2"}, want: false},
		"ExtraKey":    {a: map[string]string{"k1": "v1"}, b: map[string]string{"k1": "v1", "k2": "v2"}, want: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(...): want %t, got %t", tc.want, got)
			}
		})
	}
}
