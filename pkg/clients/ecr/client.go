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

// Package ecr turns ECR custom resources into normalized desired state and
// reads the live state of the corresponding ECR entities.
package ecr

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

// RepositoryClient is the external client used for the Repository custom
// resource and its sub-resources.
type RepositoryClient interface {
	CreateRepository(ctx context.Context, input *ecr.CreateRepositoryInput, opts ...func(*ecr.Options)) (*ecr.CreateRepositoryOutput, error)
	DescribeRepositories(ctx context.Context, input *ecr.DescribeRepositoriesInput, opts ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error)
	DeleteRepository(ctx context.Context, input *ecr.DeleteRepositoryInput, opts ...func(*ecr.Options)) (*ecr.DeleteRepositoryOutput, error)
	ListTagsForResource(ctx context.Context, input *ecr.ListTagsForResourceInput, opts ...func(*ecr.Options)) (*ecr.ListTagsForResourceOutput, error)
	TagResource(ctx context.Context, input *ecr.TagResourceInput, opts ...func(*ecr.Options)) (*ecr.TagResourceOutput, error)
	UntagResource(ctx context.Context, input *ecr.UntagResourceInput, opts ...func(*ecr.Options)) (*ecr.UntagResourceOutput, error)
	PutImageTagMutability(ctx context.Context, input *ecr.PutImageTagMutabilityInput, opts ...func(*ecr.Options)) (*ecr.PutImageTagMutabilityOutput, error)
	PutImageScanningConfiguration(ctx context.Context, input *ecr.PutImageScanningConfigurationInput, opts ...func(*ecr.Options)) (*ecr.PutImageScanningConfigurationOutput, error)
	GetLifecyclePolicy(ctx context.Context, input *ecr.GetLifecyclePolicyInput, opts ...func(*ecr.Options)) (*ecr.GetLifecyclePolicyOutput, error)
	PutLifecyclePolicy(ctx context.Context, input *ecr.PutLifecyclePolicyInput, opts ...func(*ecr.Options)) (*ecr.PutLifecyclePolicyOutput, error)
	DeleteLifecyclePolicy(ctx context.Context, input *ecr.DeleteLifecyclePolicyInput, opts ...func(*ecr.Options)) (*ecr.DeleteLifecyclePolicyOutput, error)
	GetRepositoryPolicy(ctx context.Context, input *ecr.GetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error)
	SetRepositoryPolicy(ctx context.Context, input *ecr.SetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.SetRepositoryPolicyOutput, error)
	DeleteRepositoryPolicy(ctx context.Context, input *ecr.DeleteRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.DeleteRepositoryPolicyOutput, error)
}

// PullThroughCacheRuleClient is the external client used for the
// PullThroughCacheRule custom resource.
type PullThroughCacheRuleClient interface {
	CreatePullThroughCacheRule(ctx context.Context, input *ecr.CreatePullThroughCacheRuleInput, opts ...func(*ecr.Options)) (*ecr.CreatePullThroughCacheRuleOutput, error)
	DescribePullThroughCacheRules(ctx context.Context, input *ecr.DescribePullThroughCacheRulesInput, opts ...func(*ecr.Options)) (*ecr.DescribePullThroughCacheRulesOutput, error)
	UpdatePullThroughCacheRule(ctx context.Context, input *ecr.UpdatePullThroughCacheRuleInput, opts ...func(*ecr.Options)) (*ecr.UpdatePullThroughCacheRuleOutput, error)
	DeletePullThroughCacheRule(ctx context.Context, input *ecr.DeletePullThroughCacheRuleInput, opts ...func(*ecr.Options)) (*ecr.DeletePullThroughCacheRuleOutput, error)
}

// RegistryClient is the external client used for the registry wide
// ReplicationConfiguration custom resource.
type RegistryClient interface {
	DescribeRegistry(ctx context.Context, input *ecr.DescribeRegistryInput, opts ...func(*ecr.Options)) (*ecr.DescribeRegistryOutput, error)
	PutReplicationConfiguration(ctx context.Context, input *ecr.PutReplicationConfigurationInput, opts ...func(*ecr.Options)) (*ecr.PutReplicationConfigurationOutput, error)
}

// CreationTemplateClient is the external client used for the
// RepositoryCreationTemplate custom resource.
type CreationTemplateClient interface {
	CreateRepositoryCreationTemplate(ctx context.Context, input *ecr.CreateRepositoryCreationTemplateInput, opts ...func(*ecr.Options)) (*ecr.CreateRepositoryCreationTemplateOutput, error)
	DescribeRepositoryCreationTemplates(ctx context.Context, input *ecr.DescribeRepositoryCreationTemplatesInput, opts ...func(*ecr.Options)) (*ecr.DescribeRepositoryCreationTemplatesOutput, error)
	UpdateRepositoryCreationTemplate(ctx context.Context, input *ecr.UpdateRepositoryCreationTemplateInput, opts ...func(*ecr.Options)) (*ecr.UpdateRepositoryCreationTemplateOutput, error)
	DeleteRepositoryCreationTemplate(ctx context.Context, input *ecr.DeleteRepositoryCreationTemplateInput, opts ...func(*ecr.Options)) (*ecr.DeleteRepositoryCreationTemplateOutput, error)
}

var (
	_ RepositoryClient           = (*ecr.Client)(nil)
	_ PullThroughCacheRuleClient = (*ecr.Client)(nil)
	_ RegistryClient             = (*ecr.Client)(nil)
	_ CreationTemplateClient     = (*ecr.Client)(nil)
)
