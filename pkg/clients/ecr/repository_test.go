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

package ecr

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/aws/smithy-go/document"
	"github.com/crossplane/crossplane-runtime/pkg/test"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
)

var (
	repositoryName = "repo"
	registryID     = "123456789012"
	repositoryARN  = "arn:aws:ecr:us-east-1:123456789012:repository/repo"
	repositoryURI  = "123456789012.dkr.ecr.us-east-1.amazonaws.com/repo"
	kmsKeyID       = "1234abcd-12ab-34cd-56ef-1234567890ab"
	kmsKeyARN      = "arn:aws:kms:us-east-1:123456789012:key/" + kmsKeyID
	createTime     = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	lifecycleText  = `{"rules":[{"rulePriority":1,"selection":{"tagStatus":"untagged","countType":"sinceImagePushed","countUnit":"days","countNumber":14},"action":{"type":"expire"}}]}`
)

func TestGenerateRepositoryState(t *testing.T) {
	type want struct {
		state RepositoryState
		err   error
	}

	cases := map[string]struct {
		in   v1alpha1.RepositoryParameters
		want want
	}{
		"Defaults": {
			in: v1alpha1.RepositoryParameters{Name: repositoryName},
			want: want{
				state: RepositoryState{
					Name:               repositoryName,
					EncryptionType:     ecrtypes.EncryptionTypeAes256,
					ImageTagMutability: ecrtypes.ImageTagMutabilityMutable,
					Tags:               map[string]string{},
				},
			},
		},
		"AllFields": {
			in: v1alpha1.RepositoryParameters{
				Name:       repositoryName,
				RegistryID: aws.String(registryID),
				EncryptionConfiguration: &v1alpha1.EncryptionConfiguration{
					EncryptionType: v1alpha1.EncryptionTypeKMS,
					KMSKey:         aws.String(kmsKeyID),
				},
				ImageScanningConfiguration: &v1alpha1.ImageScanningConfiguration{ScanOnPush: true},
				ImageTagMutability:         aws.String(v1alpha1.ImageTagMutabilityImmutableWithExclusion),
				ImageTagMutabilityExclusionFilters: []v1alpha1.ImageTagMutabilityExclusionFilter{
					{Filter: "latest"},
					{Filter: "dev-*", FilterType: "WILDCARD"},
					{Filter: "latest"},
				},
				LifecyclePolicy: aws.String("  " + lifecycleText + "\n"),
				Policy:          aws.String(""),
				Tags: []v1alpha1.Tag{
					{Key: "k1", Value: "v1"},
					{Key: "k2", Value: "v2"},
					{Key: "k1", Value: "v3"},
				},
			},
			want: want{
				state: RepositoryState{
					Name:               repositoryName,
					RegistryID:         aws.String(registryID),
					EncryptionType:     ecrtypes.EncryptionTypeKms,
					KMSKey:             aws.String(kmsKeyID),
					ScanOnPush:         true,
					ImageTagMutability: ecrtypes.ImageTagMutabilityImmutableWithExclusion,
					ExclusionFilters: []ecrtypes.ImageTagMutabilityExclusionFilter{
						{Filter: aws.String("dev-*"), FilterType: ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard},
						{Filter: aws.String("latest"), FilterType: ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard},
					},
					LifecyclePolicy: lifecycleText,
					Tags:            map[string]string{"k1": "v3", "k2": "v2"},
				},
			},
		},
		"EmptyRegistryID": {
			in: v1alpha1.RepositoryParameters{Name: repositoryName, RegistryID: aws.String("")},
			want: want{
				state: RepositoryState{
					Name:               repositoryName,
					EncryptionType:     ecrtypes.EncryptionTypeAes256,
					ImageTagMutability: ecrtypes.ImageTagMutabilityMutable,
					Tags:               map[string]string{},
				},
			},
		},
		"EmptyName": {
			in:   v1alpha1.RepositoryParameters{},
			want: want{err: errorutils.Terminalf("repository name must not be empty")},
		},
		"UnknownMutability": {
			in:   v1alpha1.RepositoryParameters{Name: repositoryName, ImageTagMutability: aws.String("SOMETIMES")},
			want: want{err: errorutils.Terminalf("unknown image tag mutability %q", "SOMETIMES")},
		},
		"ExclusionWithoutFilters": {
			in:   v1alpha1.RepositoryParameters{Name: repositoryName, ImageTagMutability: aws.String(v1alpha1.ImageTagMutabilityMutableWithExclusion)},
			want: want{err: errorutils.Terminalf("image tag mutability %s requires at least one exclusion filter", ecrtypes.ImageTagMutabilityMutableWithExclusion)},
		},
		"FiltersWithoutExclusion": {
			in: v1alpha1.RepositoryParameters{
				Name:                               repositoryName,
				ImageTagMutabilityExclusionFilters: []v1alpha1.ImageTagMutabilityExclusionFilter{{Filter: "latest"}},
			},
			want: want{err: errorutils.Terminalf("image tag mutability %s does not accept exclusion filters", ecrtypes.ImageTagMutabilityMutable)},
		},
		"KMSKeyWithAES256": {
			in: v1alpha1.RepositoryParameters{
				Name: repositoryName,
				EncryptionConfiguration: &v1alpha1.EncryptionConfiguration{
					EncryptionType: v1alpha1.EncryptionTypeAES256,
					KMSKey:         aws.String(kmsKeyID),
				},
			},
			want: want{err: errorutils.Terminalf("a KMS key cannot be used with encryption type %s", ecrtypes.EncryptionTypeAes256)},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := GenerateRepositoryState(tc.in)
			if diff := cmp.Diff(tc.want.err, err, test.EquateErrors()); diff != "" {
				t.Errorf("GenerateRepositoryState(...): -want error, +got error:\n%s", diff)
			}
			if tc.want.err != nil && !errorutils.IsTerminal(err) {
				t.Errorf("GenerateRepositoryState(...): want a terminal error, got %v", err)
			}
			if diff := cmp.Diff(tc.want.state, got, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("GenerateRepositoryState(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestGenerateCreateRepositoryInput(t *testing.T) {
	cases := map[string]struct {
		in   RepositoryState
		want *ecr.CreateRepositoryInput
	}{
		"Minimal": {
			in: RepositoryState{
				Name:               repositoryName,
				EncryptionType:     ecrtypes.EncryptionTypeAes256,
				ImageTagMutability: ecrtypes.ImageTagMutabilityMutable,
			},
			want: &ecr.CreateRepositoryInput{
				RepositoryName:             aws.String(repositoryName),
				EncryptionConfiguration:    &ecrtypes.EncryptionConfiguration{EncryptionType: ecrtypes.EncryptionTypeAes256},
				ImageScanningConfiguration: &ecrtypes.ImageScanningConfiguration{},
				ImageTagMutability:         ecrtypes.ImageTagMutabilityMutable,
			},
		},
		"Inline": {
			in: RepositoryState{
				Name:               repositoryName,
				RegistryID:         aws.String(registryID),
				EncryptionType:     ecrtypes.EncryptionTypeKms,
				KMSKey:             aws.String(kmsKeyID),
				ScanOnPush:         true,
				ImageTagMutability: ecrtypes.ImageTagMutabilityMutableWithExclusion,
				ExclusionFilters: []ecrtypes.ImageTagMutabilityExclusionFilter{
					{Filter: aws.String("latest"), FilterType: ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard},
				},
				LifecyclePolicy: lifecycleText,
				Tags:            map[string]string{"b": "2", "a": "1"},
			},
			want: &ecr.CreateRepositoryInput{
				RepositoryName: aws.String(repositoryName),
				RegistryId:     aws.String(registryID),
				EncryptionConfiguration: &ecrtypes.EncryptionConfiguration{
					EncryptionType: ecrtypes.EncryptionTypeKms,
					KmsKey:         aws.String(kmsKeyID),
				},
				ImageScanningConfiguration: &ecrtypes.ImageScanningConfiguration{ScanOnPush: true},
				ImageTagMutability:         ecrtypes.ImageTagMutabilityMutableWithExclusion,
				ImageTagMutabilityExclusionFilters: []ecrtypes.ImageTagMutabilityExclusionFilter{
					{Filter: aws.String("latest"), FilterType: ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard},
				},
				Tags: []ecrtypes.Tag{
					{Key: aws.String("a"), Value: aws.String("1")},
					{Key: aws.String("b"), Value: aws.String("2")},
				},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := GenerateCreateRepositoryInput(tc.in)
			if diff := cmp.Diff(tc.want, got, cmpopts.IgnoreTypes(document.NoSerde{})); diff != "" {
				t.Errorf("GenerateCreateRepositoryInput(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestGenerateRepositoryObservation(t *testing.T) {
	type args struct {
		current v1alpha1.RepositoryObservation
		repo    ecrtypes.Repository
	}

	cases := map[string]struct {
		args args
		want v1alpha1.RepositoryObservation
	}{
		"AllFilled": {
			args: args{
				repo: ecrtypes.Repository{
					CreatedAt:                  &createTime,
					ImageScanningConfiguration: &ecrtypes.ImageScanningConfiguration{ScanOnPush: true},
					ImageTagMutability:         ecrtypes.ImageTagMutabilityImmutable,
					EncryptionConfiguration:    &ecrtypes.EncryptionConfiguration{EncryptionType: ecrtypes.EncryptionTypeKms},
					RegistryId:                 aws.String(registryID),
					RepositoryName:             aws.String(repositoryName),
					RepositoryArn:              aws.String(repositoryARN),
					RepositoryUri:              aws.String(repositoryURI),
				},
			},
			want: v1alpha1.RepositoryObservation{
				CreatedAt:          &metav1.Time{Time: createTime},
				RegistryID:         registryID,
				RepositoryARN:      repositoryARN,
				RepositoryURI:      repositoryURI,
				ImageTagMutability: string(ecrtypes.ImageTagMutabilityImmutable),
				ScanOnPush:         aws.Bool(true),
				EncryptionType:     string(ecrtypes.EncryptionTypeKms),
			},
		},
		"KeepsUnobservedFields": {
			args: args{
				current: v1alpha1.RepositoryObservation{
					CreatedAt:      &metav1.Time{Time: createTime},
					RepositoryARN:  repositoryARN,
					RepositoryURI:  repositoryURI,
					ScanOnPush:     aws.Bool(true),
					EncryptionType: string(ecrtypes.EncryptionTypeAes256),
				},
				repo: ecrtypes.Repository{
					RegistryId:         aws.String(registryID),
					ImageTagMutability: ecrtypes.ImageTagMutabilityMutable,
				},
			},
			want: v1alpha1.RepositoryObservation{
				CreatedAt:          &metav1.Time{Time: createTime},
				RegistryID:         registryID,
				RepositoryARN:      repositoryARN,
				RepositoryURI:      repositoryURI,
				ImageTagMutability: string(ecrtypes.ImageTagMutabilityMutable),
				ScanOnPush:         aws.Bool(true),
				EncryptionType:     string(ecrtypes.EncryptionTypeAes256),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := GenerateRepositoryObservation(tc.args.current, tc.args.repo)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("GenerateRepositoryObservation(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestEncryptionUpToDate(t *testing.T) {
	type args struct {
		desiredType  ecrtypes.EncryptionType
		desiredKey   *string
		observedType ecrtypes.EncryptionType
		observedKey  *string
	}

	cases := map[string]struct {
		args args
		want bool
	}{
		"DefaultAES256": {
			args: args{desiredType: ecrtypes.EncryptionTypeAes256},
			want: true,
		},
		"TypeChanged": {
			args: args{desiredType: ecrtypes.EncryptionTypeKms, observedType: ecrtypes.EncryptionTypeAes256},
			want: false,
		},
		"AnyKeyWhenNoneDesired": {
			args: args{desiredType: ecrtypes.EncryptionTypeKms, observedType: ecrtypes.EncryptionTypeKms, observedKey: aws.String(kmsKeyARN)},
			want: true,
		},
		"KeyIDMatchesARN": {
			args: args{desiredType: ecrtypes.EncryptionTypeKms, desiredKey: aws.String(kmsKeyID), observedType: ecrtypes.EncryptionTypeKms, observedKey: aws.String(kmsKeyARN)},
			want: true,
		},
		"KeyChanged": {
			args: args{desiredType: ecrtypes.EncryptionTypeKms, desiredKey: aws.String("other"), observedType: ecrtypes.EncryptionTypeKms, observedKey: aws.String(kmsKeyARN)},
			want: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := EncryptionUpToDate(tc.args.desiredType, tc.args.desiredKey, tc.args.observedType, tc.args.observedKey)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("EncryptionUpToDate(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestExclusionFiltersEqual(t *testing.T) {
	latest := ecrtypes.ImageTagMutabilityExclusionFilter{Filter: aws.String("latest"), FilterType: ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard}
	dev := ecrtypes.ImageTagMutabilityExclusionFilter{Filter: aws.String("dev-*"), FilterType: ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard}

	cases := map[string]struct {
		a, b []ecrtypes.ImageTagMutabilityExclusionFilter
		want bool
	}{
		"BothEmpty": {
			a:    nil,
			b:    []ecrtypes.ImageTagMutabilityExclusionFilter{},
			want: true,
		},
		"OrderInsensitive": {
			a:    []ecrtypes.ImageTagMutabilityExclusionFilter{latest, dev},
			b:    []ecrtypes.ImageTagMutabilityExclusionFilter{dev, latest},
			want: true,
		},
		"DuplicatesIgnored": {
			a:    []ecrtypes.ImageTagMutabilityExclusionFilter{latest, latest, dev},
			b:    []ecrtypes.ImageTagMutabilityExclusionFilter{dev, latest},
			want: true,
		},
		"Different": {
			a:    []ecrtypes.ImageTagMutabilityExclusionFilter{latest},
			b:    []ecrtypes.ImageTagMutabilityExclusionFilter{dev},
			want: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ExclusionFiltersEqual(tc.a, tc.b)); diff != "" {
				t.Errorf("ExclusionFiltersEqual(...): -want, +got:\n%s", diff)
			}
		})
	}
}
