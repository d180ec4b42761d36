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

package repositorycreationtemplate

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/aws/smithy-go/document"
	"github.com/crossplane/crossplane-runtime/pkg/logging"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr/fake"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/reconciler/managed"
)

var (
	prefix  = "team-a"
	testID  = "123456789012"
	created = time.Date(2025, 5, 2, 8, 30, 0, 0, time.UTC)
	errBoom = errors.New("boom")

	_ managed.ExternalClient = &external{}
)

type templateModifier func(*v1alpha1.RepositoryCreationTemplate)

func withDescription(d string) templateModifier {
	return func(t *v1alpha1.RepositoryCreationTemplate) { t.Spec.ForProvider.Description = aws.String(d) }
}

func withTags(tags ...v1alpha1.Tag) templateModifier {
	return func(t *v1alpha1.RepositoryCreationTemplate) { t.Spec.ForProvider.ResourceTags = tags }
}

func withStatus(s v1alpha1.RepositoryCreationTemplateObservation) templateModifier {
	return func(t *v1alpha1.RepositoryCreationTemplate) { t.Status.AtProvider = s }
}

func template(m ...templateModifier) *v1alpha1.RepositoryCreationTemplate {
	cr := &v1alpha1.RepositoryCreationTemplate{Spec: v1alpha1.RepositoryCreationTemplateSpec{
		ForProvider: v1alpha1.RepositoryCreationTemplateParameters{
			Region:     "us-east-1",
			Prefix:     prefix,
			AppliedFor: []string{v1alpha1.AppliedForCreateOnPush},
		},
	}}
	for _, f := range m {
		f(cr)
	}
	return cr
}

// liveTemplate is the template AWS reports for template().
func liveTemplate(m ...func(*ecrtypes.RepositoryCreationTemplate)) ecrtypes.RepositoryCreationTemplate {
	t := ecrtypes.RepositoryCreationTemplate{
		Prefix:     aws.String(prefix),
		AppliedFor: []ecrtypes.RCTAppliedFor{ecrtypes.RCTAppliedForCreateOnPush},
		CreatedAt:  &created,
	}
	for _, f := range m {
		f(&t)
	}
	return t
}

func describing(t ...ecrtypes.RepositoryCreationTemplate) *fake.MockCreationTemplateClient {
	return &fake.MockCreationTemplateClient{
		MockDescribeRepositoryCreationTemplates: func(_ context.Context, input *awsecr.DescribeRepositoryCreationTemplatesInput, _ []func(*awsecr.Options)) (*awsecr.DescribeRepositoryCreationTemplatesOutput, error) {
			return &awsecr.DescribeRepositoryCreationTemplatesOutput{RegistryId: aws.String(testID), RepositoryCreationTemplates: t}, nil
		},
	}
}

func observed() v1alpha1.RepositoryCreationTemplateObservation {
	return v1alpha1.RepositoryCreationTemplateObservation{CreatedAt: &metav1.Time{Time: created}, RegistryID: testID}
}

func TestObserve(t *testing.T) {
	type want struct {
		cr     *v1alpha1.RepositoryCreationTemplate
		result managed.ExternalObservation
		err    error
	}

	cases := map[string]struct {
		client *fake.MockCreationTemplateClient
		cr     *v1alpha1.RepositoryCreationTemplate
		want   want
	}{
		"UpToDate": {
			client: describing(liveTemplate()),
			cr:     template(),
			want: want{
				cr:     template(withStatus(observed())),
				result: managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: true},
			},
		},
		"DescriptionAndTagsChanged": {
			client: describing(liveTemplate(func(t *ecrtypes.RepositoryCreationTemplate) {
				t.Description = aws.String("old")
			})),
			cr: template(withDescription("new"), withTags(v1alpha1.Tag{Key: "team", Value: "a"})),
			want: want{
				cr: template(withDescription("new"), withTags(v1alpha1.Tag{Key: "team", Value: "a"}), withStatus(observed())),
				result: managed.ExternalObservation{
					ResourceExists: true,
					Diff:           "/description, /resourceTags/team",
				},
			},
		},
		"OtherPrefixOnly": {
			client: describing(liveTemplate(func(t *ecrtypes.RepositoryCreationTemplate) { t.Prefix = aws.String("team-a/sub") })),
			cr:     template(),
			want:   want{cr: template()},
		},
		"NotFound": {
			client: &fake.MockCreationTemplateClient{
				MockDescribeRepositoryCreationTemplates: func(context.Context, *awsecr.DescribeRepositoryCreationTemplatesInput, []func(*awsecr.Options)) (*awsecr.DescribeRepositoryCreationTemplatesOutput, error) {
					return nil, &ecrtypes.TemplateNotFoundException{}
				},
			},
			cr:   template(),
			want: want{cr: template()},
		},
		"UnknownAppliedFor": {
			client: describing(),
			cr:     template(func(t *v1alpha1.RepositoryCreationTemplate) { t.Spec.ForProvider.AppliedFor = []string{"ON_PULL"} }),
			want: want{
				cr:  template(func(t *v1alpha1.RepositoryCreationTemplate) { t.Spec.ForProvider.AppliedFor = []string{"ON_PULL"} }),
				err: errorutils.Terminalf("unknown appliedFor value %q", "ON_PULL"),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := &external{client: tc.client, log: logging.NewNopLogger()}
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
	var got *awsecr.CreateRepositoryCreationTemplateInput
	c := &fake.MockCreationTemplateClient{
		MockCreateRepositoryCreationTemplate: func(_ context.Context, input *awsecr.CreateRepositoryCreationTemplateInput, _ []func(*awsecr.Options)) (*awsecr.CreateRepositoryCreationTemplateOutput, error) {
			got = input
			tmpl := liveTemplate()
			return &awsecr.CreateRepositoryCreationTemplateOutput{RegistryId: aws.String(testID), RepositoryCreationTemplate: &tmpl}, nil
		},
	}
	cr := template(withDescription("team a"))
	if err := (&external{client: c, log: logging.NewNopLogger()}).Create(context.Background(), cr); err != nil {
		t.Fatalf("Create(...): unexpected error: %v", err)
	}

	want := &awsecr.CreateRepositoryCreationTemplateInput{
		Prefix:                  aws.String(prefix),
		AppliedFor:              []ecrtypes.RCTAppliedFor{ecrtypes.RCTAppliedForCreateOnPush},
		Description:             aws.String("team a"),
		EncryptionConfiguration: &ecrtypes.EncryptionConfigurationForRepositoryCreationTemplate{EncryptionType: ecrtypes.EncryptionTypeAes256},
		ImageTagMutability:      ecrtypes.ImageTagMutabilityMutable,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
		t.Errorf("CreateRepositoryCreationTemplateInput: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(observed(), cr.Status.AtProvider); diff != "" {
		t.Errorf("Create(...): -want, +got:\n%s", diff)
	}
}

func TestUpdate(t *testing.T) {
	cases := map[string]struct {
		err  error
		want error
	}{
		"Successful": {},
		"Rejected": {
			err:  errBoom,
			want: errors.Wrap(errBoom, errUpdate),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got *awsecr.UpdateRepositoryCreationTemplateInput
			c := &fake.MockCreationTemplateClient{
				MockUpdateRepositoryCreationTemplate: func(_ context.Context, input *awsecr.UpdateRepositoryCreationTemplateInput, _ []func(*awsecr.Options)) (*awsecr.UpdateRepositoryCreationTemplateOutput, error) {
					got = input
					if tc.err != nil {
						return nil, tc.err
					}
					return &awsecr.UpdateRepositoryCreationTemplateOutput{RegistryId: aws.String(testID)}, nil
				},
			}
			err := (&external{client: c, log: logging.NewNopLogger()}).Update(context.Background(), template())
			if diff := cmp.Diff(tc.want, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}

			// Cleared settings are sent explicitly.
			want := &awsecr.UpdateRepositoryCreationTemplateInput{
				Prefix:                  aws.String(prefix),
				AppliedFor:              []ecrtypes.RCTAppliedFor{ecrtypes.RCTAppliedForCreateOnPush},
				Description:             aws.String(""),
				CustomRoleArn:           aws.String(""),
				EncryptionConfiguration: &ecrtypes.EncryptionConfigurationForRepositoryCreationTemplate{EncryptionType: ecrtypes.EncryptionTypeAes256},
				ImageTagMutability:      ecrtypes.ImageTagMutabilityMutable,
				LifecyclePolicy:         aws.String(""),
				RepositoryPolicy:        aws.String(""),
				ResourceTags:            []ecrtypes.Tag{},
			}
			if diff := cmp.Diff(want, got, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("UpdateRepositoryCreationTemplateInput: -want, +got:\n%s", diff)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	cases := map[string]struct {
		err  error
		want error
	}{
		"Successful": {},
		"AlreadyGone": {
			err: &ecrtypes.TemplateNotFoundException{},
		},
		"Failed": {
			err:  errBoom,
			want: errors.Wrap(errBoom, errDelete),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := &fake.MockCreationTemplateClient{
				MockDeleteRepositoryCreationTemplate: func(_ context.Context, input *awsecr.DeleteRepositoryCreationTemplateInput, _ []func(*awsecr.Options)) (*awsecr.DeleteRepositoryCreationTemplateOutput, error) {
					if aws.ToString(input.Prefix) != prefix {
						t.Errorf("DeleteRepositoryCreationTemplate: want prefix %s, got %s", prefix, aws.ToString(input.Prefix))
					}
					return &awsecr.DeleteRepositoryCreationTemplateOutput{}, tc.err
				},
			}
			err := (&external{client: c, log: logging.NewNopLogger()}).Delete(context.Background(), template())
			if diff := cmp.Diff(tc.want, err, test.EquateErrors()); diff != "" {
				t.Errorf("r: -want, +got:\n%s", diff)
			}
		})
	}
}
