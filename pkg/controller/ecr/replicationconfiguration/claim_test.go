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

package replicationconfiguration

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	connectaws "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/connect/aws"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type configModifier func(*v1alpha1.ReplicationConfiguration)

func withRegistry(id string) configModifier {
	return func(c *v1alpha1.ReplicationConfiguration) { c.Spec.ForProvider.RegistryID = aws.String(id) }
}

func withObservedRegistry(id string) configModifier {
	return func(c *v1alpha1.ReplicationConfiguration) { c.Status.AtProvider.RegistryID = id }
}

func withRegion(r string) configModifier {
	return func(c *v1alpha1.ReplicationConfiguration) { c.Spec.ForProvider.Region = r }
}

func createdAfter(d time.Duration) configModifier {
	return func(c *v1alpha1.ReplicationConfiguration) { c.SetCreationTimestamp(metav1.NewTime(epoch.Add(d))) }
}

func config(namespace, name string, m ...configModifier) *v1alpha1.ReplicationConfiguration {
	c := &v1alpha1.ReplicationConfiguration{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name, CreationTimestamp: metav1.NewTime(epoch)},
		Spec:       v1alpha1.ReplicationConfigurationSpec{ForProvider: v1alpha1.ReplicationConfigurationParameters{Region: "us-east-1"}},
	}
	for _, f := range m {
		f(c)
	}
	return c
}

// kube returns a reader that lists the supplied configurations and knows the
// supplied namespace owner accounts.
func kube(owners map[string]string, items ...*v1alpha1.ReplicationConfiguration) *test.MockClient {
	return &test.MockClient{
		MockGet: func(_ context.Context, key client.ObjectKey, obj client.Object) error {
			ns, ok := obj.(*corev1.Namespace)
			if !ok {
				return errors.New("unexpected object")
			}
			ns.SetName(key.Name)
			if a := owners[key.Name]; a != "" {
				ns.SetAnnotations(map[string]string{connectaws.AnnotationOwnerAccountID: a})
			}
			return nil
		},
		MockList: func(_ context.Context, list client.ObjectList, _ ...client.ListOption) error {
			l := list.(*v1alpha1.ReplicationConfigurationList)
			for _, i := range items {
				l.Items = append(l.Items, *i)
			}
			return nil
		},
	}
}

func conflict(registry, namespace, name string) error {
	return errorutils.NewTerminalWithReason("ClaimConflict", errors.Errorf(errFmtClaimed, registry, "us-east-1", namespace, name))
}

func TestArbitrate(t *testing.T) {
	type args struct {
		kube client.Reader
		cr   *v1alpha1.ReplicationConfiguration
	}

	cases := map[string]struct {
		args args
		want error
	}{
		"OnlyClaim": {
			args: args{
				kube: kube(nil, config("a", "repl", withRegistry("111"))),
				cr:   config("a", "repl", withRegistry("111")),
			},
		},
		"OlderClaimOnSameRegistry": {
			args: args{
				kube: kube(nil,
					config("a", "first", withRegistry("111")),
					config("b", "second", withRegistry("111"), createdAfter(time.Minute)),
				),
				cr: config("b", "second", withRegistry("111"), createdAfter(time.Minute)),
			},
			want: conflict("111", "a", "first"),
		},
		"OldestOfSeveralClaims": {
			args: args{
				kube: kube(nil,
					config("b", "second", withRegistry("111"), createdAfter(time.Minute)),
					config("a", "first", withRegistry("111")),
					config("c", "third", withRegistry("111"), createdAfter(2*time.Minute)),
				),
				cr: config("c", "third", withRegistry("111"), createdAfter(2*time.Minute)),
			},
			want: conflict("111", "a", "first"),
		},
		"NewerClaimOnSameRegistry": {
			args: args{
				kube: kube(nil,
					config("a", "first", withRegistry("111")),
					config("b", "second", withRegistry("111"), createdAfter(time.Minute)),
				),
				cr: config("a", "first", withRegistry("111")),
			},
		},
		"SameAgeOrderedByName": {
			args: args{
				kube: kube(nil,
					config("a", "x", withRegistry("111")),
					config("a", "y", withRegistry("111")),
				),
				cr: config("a", "y", withRegistry("111")),
			},
			want: conflict("111", "a", "x"),
		},
		"DifferentRegistries": {
			args: args{
				kube: kube(nil,
					config("a", "first", withRegistry("111")),
					config("b", "second", withRegistry("222"), createdAfter(time.Minute)),
				),
				cr: config("b", "second", withRegistry("222"), createdAfter(time.Minute)),
			},
		},
		"DifferentRegions": {
			args: args{
				// The cache only returns configurations in the same region.
				kube: kube(nil, config("b", "second", withRegistry("111"), withRegion("eu-west-1"), createdAfter(time.Minute))),
				cr:   config("b", "second", withRegistry("111"), withRegion("eu-west-1"), createdAfter(time.Minute)),
			},
		},
		"OwnerAccountOfNamespace": {
			args: args{
				kube: kube(map[string]string{"team-a": "333", "team-b": "333"},
					config("team-a", "first"),
					config("team-b", "second", createdAfter(time.Minute)),
				),
				cr: config("team-b", "second", createdAfter(time.Minute)),
			},
			want: conflict("333", "team-a", "first"),
		},
		"ExplicitRegistryMatchesOwnerAccount": {
			args: args{
				kube: kube(map[string]string{"team-a": "333"},
					config("team-a", "first"),
					config("team-b", "second", withRegistry("333"), createdAfter(time.Minute)),
				),
				cr: config("team-b", "second", withRegistry("333"), createdAfter(time.Minute)),
			},
			want: conflict("333", "team-a", "first"),
		},
		"ObservedRegistry": {
			args: args{
				kube: kube(nil,
					config("a", "first", withObservedRegistry("444")),
					config("b", "second", withObservedRegistry("444"), createdAfter(time.Minute)),
				),
				cr: config("b", "second", withObservedRegistry("444"), createdAfter(time.Minute)),
			},
			want: conflict("444", "a", "first"),
		},
		"UnobservedOlderClaim": {
			args: args{
				kube: kube(nil,
					config("a", "first"),
					config("b", "second", withObservedRegistry("444"), createdAfter(time.Minute)),
				),
				cr: config("b", "second", withObservedRegistry("444"), createdAfter(time.Minute)),
			},
		},
		"UnknownRegistry": {
			args: args{
				kube: &test.MockClient{
					MockGet: test.NewMockGetFn(nil),
					MockList: func(context.Context, client.ObjectList, ...client.ListOption) error {
						return errors.New("list must not be called")
					},
				},
				cr: config("a", "first"),
			},
		},
		"ListFailed": {
			args: args{
				kube: &test.MockClient{
					MockList: func(context.Context, client.ObjectList, ...client.ListOption) error {
						return errors.New("boom")
					},
				},
				cr: config("a", "first", withRegistry("111")),
			},
			want: errors.Wrap(errors.New("boom"), errListClaims),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := newClaimant(tc.args.kube).arbitrate(context.Background(), tc.args.cr)
			if diff := cmp.Diff(tc.want, err, test.EquateErrors()); diff != "" {
				t.Errorf("arbitrate(...): -want, +got:\n%s", diff)
			}
			if errorutils.IsTerminal(tc.want) && errorutils.TerminalReason(err) != "ClaimConflict" {
				t.Errorf("arbitrate(...): want reason ClaimConflict, got %q", errorutils.TerminalReason(err))
			}
		})
	}
}
