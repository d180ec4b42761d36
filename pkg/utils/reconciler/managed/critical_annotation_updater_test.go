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

package managed

import (
	"context"
	"testing"

	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
)

func TestUpdateCriticalAnnotations(t *testing.T) {
	errTimeout := kerrors.NewTimeoutError("", 0)

	type args struct {
		c client.Client
		o client.Object
	}
	type want struct {
		err     error
		version string
	}

	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"Success": {
			reason: "The annotations should be written on the current object and the new version copied back.",
			args: args{
				c: &test.MockClient{
					MockGet: test.NewMockGetFn(nil, func(obj client.Object) error {
						obj.SetResourceVersion("1")
						obj.SetAnnotations(map[string]string{"existing": "yes"})
						return nil
					}),
					MockUpdate: test.NewMockUpdateFn(nil, func(obj client.Object) error {
						want := map[string]string{"existing": "yes", "new": "yes"}
						if diff := cmp.Diff(want, obj.GetAnnotations()); diff != "" {
							t.Errorf("Update(...): -want annotations, +got annotations:\n%s", diff)
						}
						if obj.GetNamespace() != "default" {
							t.Errorf("Update(...): expected namespace default, got %q", obj.GetNamespace())
						}
						obj.SetResourceVersion("2")
						return nil
					}),
				},
				o: &v1alpha1.Repository{
					ObjectMeta: metav1.ObjectMeta{Name: "test", Namespace: "default", Annotations: map[string]string{"new": "yes"}},
					Spec:       v1alpha1.RepositorySpec{ForProvider: v1alpha1.RepositoryParameters{Name: "pending-spec-change"}},
				},
			},
			want: want{version: "2"},
		},
		"GetError": {
			reason: "A non API error should not be retried.",
			args: args{
				c: &test.MockClient{
					MockGet: test.NewMockGetFn(errBoom),
				},
				o: &v1alpha1.Repository{ObjectMeta: metav1.ObjectMeta{Name: "test", Namespace: "default"}},
			},
			want: want{err: errors.Wrap(errBoom, errUpdateCriticalAnnotations)},
		},
		"UpdateError": {
			reason: "API errors should be returned once retries are exhausted.",
			args: args{
				c: &test.MockClient{
					MockGet:    test.NewMockGetFn(nil),
					MockUpdate: test.NewMockUpdateFn(errTimeout),
				},
				o: &v1alpha1.Repository{ObjectMeta: metav1.ObjectMeta{Name: "test", Namespace: "default"}},
			},
			want: want{err: errors.Wrap(errTimeout, errUpdateCriticalAnnotations)},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			u := NewRetryingCriticalAnnotationUpdater(tc.args.c)
			err := u.UpdateCriticalAnnotations(context.Background(), tc.args.o)
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("\n%s\nUpdateCriticalAnnotations(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tc.want.version, tc.args.o.GetResourceVersion()); diff != "" {
				t.Errorf("\n%s\nUpdateCriticalAnnotations(...): -want version, +got version:\n%s", tc.reason, diff)
			}
			if r, ok := tc.args.o.(*v1alpha1.Repository); ok && r.Spec.ForProvider.Name != "pending-spec-change" {
				t.Errorf("\n%s\nUpdateCriticalAnnotations(...): pending spec change was reset", tc.reason)
			}
		})
	}
}
