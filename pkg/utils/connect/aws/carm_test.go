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

package connectaws

import (
	"context"
	"testing"

	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

func TestRoleForNamespace(t *testing.T) {
	errBoom := errors.New("boom")
	account := "111122223333"
	role := "arn:aws:iam::111122223333:role/ecr-manager"

	getter := func(annotations map[string]string, roles map[string]string, cmErr error) *test.MockClient {
		return &test.MockClient{
			MockGet: func(_ context.Context, _ client.ObjectKey, obj client.Object) error {
				switch o := obj.(type) {
				case *corev1.Namespace:
					o.SetAnnotations(annotations)
				case *corev1.ConfigMap:
					if cmErr != nil {
						return cmErr
					}
					o.Data = roles
				}
				return nil
			},
		}
	}

	type want struct {
		role string
		err  error
	}
	cases := map[string]struct {
		reason string
		kube   client.Reader
		want   want
	}{
		"NoOwnerAccount": {
			reason: "Resources in namespaces without an owner account use the provider's credentials",
			kube:   getter(nil, nil, nil),
			want:   want{},
		},
		"GetNamespaceError": {
			kube: &test.MockClient{MockGet: test.NewMockGetFn(errBoom)},
			want: want{err: errors.Wrap(errBoom, errGetNamespace)},
		},
		"GetRoleMapError": {
			kube: getter(map[string]string{AnnotationOwnerAccountID: account}, nil, errBoom),
			want: want{err: errors.Wrap(errBoom, errGetRoleMap)},
		},
		"AccountNotMapped": {
			kube: getter(map[string]string{AnnotationOwnerAccountID: account}, map[string]string{"444455556666": role}, nil),
			want: want{err: errors.Errorf(errNoRoleForAccount, account)},
		},
		"RoleOfAnotherAccount": {
			reason: "A role must belong to the account it is mapped to",
			kube:   getter(map[string]string{AnnotationOwnerAccountID: account}, map[string]string{account: "arn:aws:iam::444455556666:role/x"}, nil),
			want:   want{err: errors.Errorf(errInvalidRole, "arn:aws:iam::444455556666:role/x", account)},
		},
		"Mapped": {
			kube: getter(map[string]string{AnnotationOwnerAccountID: account}, map[string]string{account: role}, nil),
			want: want{role: role},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := RoleForNamespace(context.Background(), tc.kube, "team-a", "crossplane-system")
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("%s\nRoleForNamespace(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.want.role, got); diff != "" {
				t.Errorf("%s\nRoleForNamespace(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}
