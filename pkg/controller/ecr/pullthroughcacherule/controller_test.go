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

package pullthroughcacherule

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr/mock"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/reconciler/managed"
)

var (
	prefix      = "docker-hub"
	upstreamURL = "registry-1.docker.io"
	credARN     = "arn:aws:secretsmanager:us-east-1:123456789012:secret:ecr-pullthroughcache/docker-hub"
	testID      = "123456789012"
	created     = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	errBoom     = errors.New("boom")

	_ managed.ExternalClient = &external{}
)

type ruleModifier func(*v1alpha1.PullThroughCacheRule)

func withUpstreamURL(u string) ruleModifier {
	return func(r *v1alpha1.PullThroughCacheRule) { r.Spec.ForProvider.UpstreamRegistryURL = u }
}

func withCredential(arn string) ruleModifier {
	return func(r *v1alpha1.PullThroughCacheRule) { r.Spec.ForProvider.CredentialARN = aws.String(arn) }
}

func withStatus(s v1alpha1.PullThroughCacheRuleObservation) ruleModifier {
	return func(r *v1alpha1.PullThroughCacheRule) { r.Status.AtProvider = s }
}

func withDeletionTimestamp() ruleModifier {
	return func(r *v1alpha1.PullThroughCacheRule) {
		now := metav1.Now()
		r.SetDeletionTimestamp(&now)
	}
}

func rule(m ...ruleModifier) *v1alpha1.PullThroughCacheRule {
	cr := &v1alpha1.PullThroughCacheRule{Spec: v1alpha1.PullThroughCacheRuleSpec{
		ForProvider: v1alpha1.PullThroughCacheRuleParameters{
			Region:              "us-east-1",
			ECRRepositoryPrefix: prefix,
			UpstreamRegistryURL: upstreamURL,
		},
	}}
	for _, f := range m {
		f(cr)
	}
	return cr
}

func liveRule(m ...func(*ecrtypes.PullThroughCacheRule)) *awsecr.DescribePullThroughCacheRulesOutput {
	r := ecrtypes.PullThroughCacheRule{
		EcrRepositoryPrefix: aws.String(prefix),
		UpstreamRegistryUrl: aws.String(upstreamURL),
		RegistryId:          aws.String(testID),
		CreatedAt:           &created,
	}
	for _, f := range m {
		f(&r)
	}
	return &awsecr.DescribePullThroughCacheRulesOutput{PullThroughCacheRules: []ecrtypes.PullThroughCacheRule{r}}
}

func describeInput() *awsecr.DescribePullThroughCacheRulesInput {
	return &awsecr.DescribePullThroughCacheRulesInput{EcrRepositoryPrefixes: []string{prefix}}
}

func observed() v1alpha1.PullThroughCacheRuleObservation {
	return v1alpha1.PullThroughCacheRuleObservation{
		CreatedAt:  &metav1.Time{Time: created},
		RegistryID: testID,
	}
}

func TestObserve(t *testing.T) {
	type want struct {
		cr     *v1alpha1.PullThroughCacheRule
		result managed.ExternalObservation
		err    error
	}

	cases := map[string]struct {
		expect func(m *mock.MockPullThroughCacheRuleClientMockRecorder)
		cr     *v1alpha1.PullThroughCacheRule
		want   want
	}{
		"UpToDate": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.DescribePullThroughCacheRules(gomock.Any(), describeInput()).Return(liveRule(), nil)
			},
			cr: rule(),
			want: want{
				cr:     rule(withStatus(observed())),
				result: managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: true},
			},
		},
		"EquivalentUpstreamURL": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.DescribePullThroughCacheRules(gomock.Any(), describeInput()).Return(liveRule(), nil)
			},
			cr: rule(withUpstreamURL("https://Registry-1.docker.io/")),
			want: want{
				cr:     rule(withUpstreamURL("https://Registry-1.docker.io/"), withStatus(observed())),
				result: managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: true},
			},
		},
		"CredentialChanged": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.DescribePullThroughCacheRules(gomock.Any(), describeInput()).Return(liveRule(), nil)
			},
			cr: rule(withCredential(credARN)),
			want: want{
				cr:     rule(withCredential(credARN), withStatus(observed())),
				result: managed.ExternalObservation{ResourceExists: true, Diff: "credentialARN"},
			},
		},
		"UpstreamURLChanged": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.DescribePullThroughCacheRules(gomock.Any(), describeInput()).Return(liveRule(), nil)
			},
			cr: rule(withUpstreamURL("public.ecr.aws")),
			want: want{
				cr:     rule(withUpstreamURL("public.ecr.aws"), withStatus(observed())),
				result: managed.ExternalObservation{ResourceExists: true},
				err:    errorutils.Terminalf("upstreamRegistryURL cannot be changed from %q to %q: recreate the rule", upstreamURL, "public.ecr.aws"),
			},
		},
		"NotFound": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.DescribePullThroughCacheRules(gomock.Any(), describeInput()).Return(nil, &ecrtypes.PullThroughCacheRuleNotFoundException{})
			},
			cr:   rule(),
			want: want{cr: rule()},
		},
		"DescribeFailed": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.DescribePullThroughCacheRules(gomock.Any(), describeInput()).Return(nil, errBoom)
			},
			cr: rule(),
			want: want{
				cr:  rule(),
				err: errors.Wrap(errBoom, "cannot describe pull through cache rule"),
			},
		},
		"EmptyPrefix": {
			expect: func(*mock.MockPullThroughCacheRuleClientMockRecorder) {},
			cr:     rule(func(r *v1alpha1.PullThroughCacheRule) { r.Spec.ForProvider.ECRRepositoryPrefix = "" }),
			want: want{
				cr:  rule(func(r *v1alpha1.PullThroughCacheRule) { r.Spec.ForProvider.ECRRepositoryPrefix = "" }),
				err: errorutils.Terminalf("ecrRepositoryPrefix must not be empty"),
			},
		},
		"DeletingOnlyChecksExistence": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.DescribePullThroughCacheRules(gomock.Any(), describeInput()).Return(liveRule(), nil)
			},
			cr: rule(withDeletionTimestamp(), withUpstreamURL("public.ecr.aws")),
			want: want{
				cr:     rule(withDeletionTimestamp(), withUpstreamURL("public.ecr.aws")),
				result: managed.ExternalObservation{ResourceExists: true},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m := mock.NewMockPullThroughCacheRuleClient(gomock.NewController(t))
			tc.expect(m.EXPECT())
			e := &external{client: m}
			o, err := e.Observe(context.Background(), tc.cr)

			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.result, o); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want.cr.Status, tc.cr.Status, test.EquateConditions()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	cases := map[string]struct {
		expect func(m *mock.MockPullThroughCacheRuleClientMockRecorder)
		cr     *v1alpha1.PullThroughCacheRule
		want   *v1alpha1.PullThroughCacheRule
		err    error
	}{
		"Successful": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.CreatePullThroughCacheRule(gomock.Any(), &awsecr.CreatePullThroughCacheRuleInput{
					EcrRepositoryPrefix: aws.String(prefix),
					UpstreamRegistryUrl: aws.String(upstreamURL),
					UpstreamRegistry:    ecrtypes.UpstreamRegistryDockerHub,
					CredentialArn:       aws.String(credARN),
				}).Return(&awsecr.CreatePullThroughCacheRuleOutput{RegistryId: aws.String(testID), CreatedAt: &created}, nil)
			},
			cr: rule(withCredential(credARN), func(r *v1alpha1.PullThroughCacheRule) {
				r.Spec.ForProvider.UpstreamRegistry = aws.String(string(ecrtypes.UpstreamRegistryDockerHub))
			}),
			want: rule(withCredential(credARN), func(r *v1alpha1.PullThroughCacheRule) {
				r.Spec.ForProvider.UpstreamRegistry = aws.String(string(ecrtypes.UpstreamRegistryDockerHub))
			}, withStatus(observed())),
		},
		"Failed": {
			expect: func(m *mock.MockPullThroughCacheRuleClientMockRecorder) {
				m.CreatePullThroughCacheRule(gomock.Any(), gomock.Any()).Return(nil, errBoom)
			},
			cr:   rule(),
			want: rule(),
			err:  errors.Wrap(errBoom, errCreate),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m := mock.NewMockPullThroughCacheRuleClient(gomock.NewController(t))
			tc.expect(m.EXPECT())
			err := (&external{client: m}).Create(context.Background(), tc.cr)

			if diff := cmp.Diff(tc.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
			if diff := cmp.Diff(tc.want, tc.cr); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	updated := created.Add(time.Hour)

	m := mock.NewMockPullThroughCacheRuleClient(gomock.NewController(t))
	m.EXPECT().UpdatePullThroughCacheRule(gomock.Any(), &awsecr.UpdatePullThroughCacheRuleInput{
		EcrRepositoryPrefix: aws.String(prefix),
		CredentialArn:       aws.String(credARN),
	}).Return(&awsecr.UpdatePullThroughCacheRuleOutput{UpdatedAt: &updated}, nil)

	cr := rule(withCredential(credARN), withStatus(observed()))
	if err := (&external{client: m}).Update(context.Background(), cr); err != nil {
		t.Fatalf("Update(...): unexpected error: %v", err)
	}
	want := observed()
	want.UpdatedAt = &metav1.Time{Time: updated}
	if diff := cmp.Diff(want, cr.Status.AtProvider); diff != "" {
		t.Errorf("Update(...): -want, +got:\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	cases := map[string]struct {
		err  error
		want error
	}{
		"Successful": {},
		"AlreadyGone": {
			err: &ecrtypes.PullThroughCacheRuleNotFoundException{},
		},
		"Failed": {
			err:  errBoom,
			want: errors.Wrap(errBoom, errDelete),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m := mock.NewMockPullThroughCacheRuleClient(gomock.NewController(t))
			m.EXPECT().DeletePullThroughCacheRule(gomock.Any(), &awsecr.DeletePullThroughCacheRuleInput{
				EcrRepositoryPrefix: aws.String(prefix),
				RegistryId:          aws.String(testID),
			}).Return(&awsecr.DeletePullThroughCacheRuleOutput{}, tc.err)

			cr := rule(func(r *v1alpha1.PullThroughCacheRule) { r.Spec.ForProvider.RegistryID = aws.String(testID) })
			err := (&external{client: m}).Delete(context.Background(), cr)
			if diff := cmp.Diff(tc.want, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}
