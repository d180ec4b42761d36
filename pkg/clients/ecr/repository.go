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
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/pkg/errors"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/pointer"
)

const (
	errDescribeRepository   = "cannot describe repository"
	errMultipleRepositories = "retrieved multiple repositories for the given name"
	errGetLifecyclePolicy   = "cannot get lifecycle policy"
	errGetRepositoryPolicy  = "cannot get repository policy"
	errListTags             = "cannot list tags"
)

// RepositoryState is the normalized desired state of a repository.
type RepositoryState struct {
	Name       string
	RegistryID *string

	EncryptionType ecrtypes.EncryptionType
	KMSKey         *string

	ScanOnPush bool

	ImageTagMutability ecrtypes.ImageTagMutability
	ExclusionFilters   []ecrtypes.ImageTagMutabilityExclusionFilter

	// LifecyclePolicy and Policy are empty when no policy is desired.
	LifecyclePolicy string
	Policy          string

	Tags map[string]string
}

// GenerateRepositoryState returns the normalized desired state of the
// supplied parameters. Structural problems are returned as terminal errors.
func GenerateRepositoryState(p v1alpha1.RepositoryParameters) (RepositoryState, error) {
	if p.Name == "" {
		return RepositoryState{}, errorutils.Terminalf("repository name must not be empty")
	}
	s := RepositoryState{
		Name:            p.Name,
		RegistryID:      emptyToNil(p.RegistryID),
		LifecyclePolicy: PolicyText(p.LifecyclePolicy),
		Policy:          PolicyText(p.Policy),
		Tags:            GenerateTagMap(p.Tags),
	}
	if p.ImageScanningConfiguration != nil {
		s.ScanOnPush = p.ImageScanningConfiguration.ScanOnPush
	}
	var err error
	if s.ImageTagMutability, s.ExclusionFilters, err = generateMutability(p.ImageTagMutability, p.ImageTagMutabilityExclusionFilters); err != nil {
		return RepositoryState{}, err
	}
	if s.EncryptionType, s.KMSKey, err = generateEncryption(p.EncryptionConfiguration); err != nil {
		return RepositoryState{}, err
	}
	return s, nil
}

// GenerateCreateRepositoryInput returns the input that creates a repository
// with every setting the create call accepts inline.
func GenerateCreateRepositoryInput(s RepositoryState) *ecr.CreateRepositoryInput {
	return &ecr.CreateRepositoryInput{
		RepositoryName: aws.String(s.Name),
		RegistryId:     s.RegistryID,
		EncryptionConfiguration: &ecrtypes.EncryptionConfiguration{
			EncryptionType: s.EncryptionType,
			KmsKey:         s.KMSKey,
		},
		ImageScanningConfiguration:         &ecrtypes.ImageScanningConfiguration{ScanOnPush: s.ScanOnPush},
		ImageTagMutability:                 s.ImageTagMutability,
		ImageTagMutabilityExclusionFilters: s.ExclusionFilters,
		Tags:                               GenerateECRTags(s.Tags),
	}
}

// GenerateRepositoryObservation merges what was observed about the supplied
// repository into the current observation. Fields that were not observed
// keep their current value.
func GenerateRepositoryObservation(current v1alpha1.RepositoryObservation, repo ecrtypes.Repository) v1alpha1.RepositoryObservation {
	o := current
	o.CreatedAt = pointer.MergePtr(o.CreatedAt, pointer.TimeToMetaTime(repo.CreatedAt))
	o.RegistryID = pointer.Merge(o.RegistryID, aws.ToString(repo.RegistryId))
	o.RepositoryARN = pointer.Merge(o.RepositoryARN, aws.ToString(repo.RepositoryArn))
	o.RepositoryURI = pointer.Merge(o.RepositoryURI, aws.ToString(repo.RepositoryUri))
	o.ImageTagMutability = pointer.Merge(o.ImageTagMutability, string(repo.ImageTagMutability))
	if repo.ImageScanningConfiguration != nil {
		o.ScanOnPush = aws.Bool(repo.ImageScanningConfiguration.ScanOnPush)
	}
	if repo.EncryptionConfiguration != nil {
		o.EncryptionType = pointer.Merge(o.EncryptionType, string(repo.EncryptionConfiguration.EncryptionType))
	}
	return o
}

// FetchRepository returns the named repository, or nil if it does not exist.
func FetchRepository(ctx context.Context, c RepositoryClient, name string, registryID *string) (*ecrtypes.Repository, error) {
	out, err := c.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{
		RepositoryNames: []string{name},
		RegistryId:      registryID,
	})
	if errorutils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errorutils.Wrap(err, errDescribeRepository)
	}
	switch len(out.Repositories) {
	case 0:
		return nil, nil
	case 1:
		return &out.Repositories[0], nil
	default:
		return nil, errors.New(errMultipleRepositories)
	}
}

// FetchLifecyclePolicy returns the lifecycle policy text of the named
// repository, or nil if it has none.
func FetchLifecyclePolicy(ctx context.Context, c RepositoryClient, name string, registryID *string) (*string, error) {
	out, err := c.GetLifecyclePolicy(ctx, &ecr.GetLifecyclePolicyInput{
		RepositoryName: aws.String(name),
		RegistryId:     registryID,
	})
	if errorutils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errorutils.Wrap(err, errGetLifecyclePolicy)
	}
	if aws.ToString(out.LifecyclePolicyText) == "" {
		return nil, nil
	}
	return out.LifecyclePolicyText, nil
}

// FetchRepositoryPolicy returns the repository policy text of the named
// repository, or nil if it has none.
func FetchRepositoryPolicy(ctx context.Context, c RepositoryClient, name string, registryID *string) (*string, error) {
	out, err := c.GetRepositoryPolicy(ctx, &ecr.GetRepositoryPolicyInput{
		RepositoryName: aws.String(name),
		RegistryId:     registryID,
	})
	if errorutils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errorutils.Wrap(err, errGetRepositoryPolicy)
	}
	if aws.ToString(out.PolicyText) == "" {
		return nil, nil
	}
	return out.PolicyText, nil
}

// FetchTags returns the tags of the resource with the supplied ARN.
func FetchTags(ctx context.Context, c RepositoryClient, arn string) (map[string]string, error) {
	out, err := c.ListTagsForResource(ctx, &ecr.ListTagsForResourceInput{ResourceArn: aws.String(arn)})
	if err != nil {
		return nil, errorutils.Wrap(err, errListTags)
	}
	return TagMap(out.Tags), nil
}
