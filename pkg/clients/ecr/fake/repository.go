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

// Package fake contains func-field fakes of the ECR clients.
package fake

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecr"

	clientset "github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr"
)

var (
	_ clientset.RepositoryClient       = (*MockRepositoryClient)(nil)
	_ clientset.CreationTemplateClient = (*MockCreationTemplateClient)(nil)
)

// MockRepositoryClient is a func-field fake of the RepositoryClient interface.
type MockRepositoryClient struct {
	MockCreateRepository              func(ctx context.Context, input *ecr.CreateRepositoryInput, opts []func(*ecr.Options)) (*ecr.CreateRepositoryOutput, error)
	MockDescribeRepositories          func(ctx context.Context, input *ecr.DescribeRepositoriesInput, opts []func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error)
	MockDeleteRepository              func(ctx context.Context, input *ecr.DeleteRepositoryInput, opts []func(*ecr.Options)) (*ecr.DeleteRepositoryOutput, error)
	MockListTagsForResource           func(ctx context.Context, input *ecr.ListTagsForResourceInput, opts []func(*ecr.Options)) (*ecr.ListTagsForResourceOutput, error)
	MockTagResource                   func(ctx context.Context, input *ecr.TagResourceInput, opts []func(*ecr.Options)) (*ecr.TagResourceOutput, error)
	MockUntagResource                 func(ctx context.Context, input *ecr.UntagResourceInput, opts []func(*ecr.Options)) (*ecr.UntagResourceOutput, error)
	MockPutImageTagMutability         func(ctx context.Context, input *ecr.PutImageTagMutabilityInput, opts []func(*ecr.Options)) (*ecr.PutImageTagMutabilityOutput, error)
	MockPutImageScanningConfiguration func(ctx context.Context, input *ecr.PutImageScanningConfigurationInput, opts []func(*ecr.Options)) (*ecr.PutImageScanningConfigurationOutput, error)
	MockGetLifecyclePolicy            func(ctx context.Context, input *ecr.GetLifecyclePolicyInput, opts []func(*ecr.Options)) (*ecr.GetLifecyclePolicyOutput, error)
	MockPutLifecyclePolicy            func(ctx context.Context, input *ecr.PutLifecyclePolicyInput, opts []func(*ecr.Options)) (*ecr.PutLifecyclePolicyOutput, error)
	MockDeleteLifecyclePolicy         func(ctx context.Context, input *ecr.DeleteLifecyclePolicyInput, opts []func(*ecr.Options)) (*ecr.DeleteLifecyclePolicyOutput, error)
	MockGetRepositoryPolicy           func(ctx context.Context, input *ecr.GetRepositoryPolicyInput, opts []func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error)
	MockSetRepositoryPolicy           func(ctx context.Context, input *ecr.SetRepositoryPolicyInput, opts []func(*ecr.Options)) (*ecr.SetRepositoryPolicyOutput, error)
	MockDeleteRepositoryPolicy        func(ctx context.Context, input *ecr.DeleteRepositoryPolicyInput, opts []func(*ecr.Options)) (*ecr.DeleteRepositoryPolicyOutput, error)
}

// CreateRepository calls MockCreateRepository.
func (m *MockRepositoryClient) CreateRepository(ctx context.Context, input *ecr.CreateRepositoryInput, opts ...func(*ecr.Options)) (*ecr.CreateRepositoryOutput, error) {
	return m.MockCreateRepository(ctx, input, opts)
}

// DescribeRepositories calls MockDescribeRepositories.
func (m *MockRepositoryClient) DescribeRepositories(ctx context.Context, input *ecr.DescribeRepositoriesInput, opts ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error) {
	return m.MockDescribeRepositories(ctx, input, opts)
}

// DeleteRepository calls MockDeleteRepository.
func (m *MockRepositoryClient) DeleteRepository(ctx context.Context, input *ecr.DeleteRepositoryInput, opts ...func(*ecr.Options)) (*ecr.DeleteRepositoryOutput, error) {
	return m.MockDeleteRepository(ctx, input, opts)
}

// ListTagsForResource calls MockListTagsForResource.
func (m *MockRepositoryClient) ListTagsForResource(ctx context.Context, input *ecr.ListTagsForResourceInput, opts ...func(*ecr.Options)) (*ecr.ListTagsForResourceOutput, error) {
	return m.MockListTagsForResource(ctx, input, opts)
}

// TagResource calls MockTagResource.
func (m *MockRepositoryClient) TagResource(ctx context.Context, input *ecr.TagResourceInput, opts ...func(*ecr.Options)) (*ecr.TagResourceOutput, error) {
	return m.MockTagResource(ctx, input, opts)
}

// UntagResource calls MockUntagResource.
func (m *MockRepositoryClient) UntagResource(ctx context.Context, input *ecr.UntagResourceInput, opts ...func(*ecr.Options)) (*ecr.UntagResourceOutput, error) {
	return m.MockUntagResource(ctx, input, opts)
}

// PutImageTagMutability calls MockPutImageTagMutability.
func (m *MockRepositoryClient) PutImageTagMutability(ctx context.Context, input *ecr.PutImageTagMutabilityInput, opts ...func(*ecr.Options)) (*ecr.PutImageTagMutabilityOutput, error) {
	return m.MockPutImageTagMutability(ctx, input, opts)
}

// PutImageScanningConfiguration calls MockPutImageScanningConfiguration.
func (m *MockRepositoryClient) PutImageScanningConfiguration(ctx context.Context, input *ecr.PutImageScanningConfigurationInput, opts ...func(*ecr.Options)) (*ecr.PutImageScanningConfigurationOutput, error) {
	return m.MockPutImageScanningConfiguration(ctx, input, opts)
}

// GetLifecyclePolicy calls MockGetLifecyclePolicy.
func (m *MockRepositoryClient) GetLifecyclePolicy(ctx context.Context, input *ecr.GetLifecyclePolicyInput, opts ...func(*ecr.Options)) (*ecr.GetLifecyclePolicyOutput, error) {
	return m.MockGetLifecyclePolicy(ctx, input, opts)
}

// PutLifecyclePolicy calls MockPutLifecyclePolicy.
func (m *MockRepositoryClient) PutLifecyclePolicy(ctx context.Context, input *ecr.PutLifecyclePolicyInput, opts ...func(*ecr.Options)) (*ecr.PutLifecyclePolicyOutput, error) {
	return m.MockPutLifecyclePolicy(ctx, input, opts)
}

// DeleteLifecyclePolicy calls MockDeleteLifecyclePolicy.
func (m *MockRepositoryClient) DeleteLifecyclePolicy(ctx context.Context, input *ecr.DeleteLifecyclePolicyInput, opts ...func(*ecr.Options)) (*ecr.DeleteLifecyclePolicyOutput, error) {
	return m.MockDeleteLifecyclePolicy(ctx, input, opts)
}

// GetRepositoryPolicy calls MockGetRepositoryPolicy.
func (m *MockRepositoryClient) GetRepositoryPolicy(ctx context.Context, input *ecr.GetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.GetRepositoryPolicyOutput, error) {
	return m.MockGetRepositoryPolicy(ctx, input, opts)
}

// SetRepositoryPolicy calls MockSetRepositoryPolicy.
func (m *MockRepositoryClient) SetRepositoryPolicy(ctx context.Context, input *ecr.SetRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.SetRepositoryPolicyOutput, error) {
	return m.MockSetRepositoryPolicy(ctx, input, opts)
}

// DeleteRepositoryPolicy calls MockDeleteRepositoryPolicy.
func (m *MockRepositoryClient) DeleteRepositoryPolicy(ctx context.Context, input *ecr.DeleteRepositoryPolicyInput, opts ...func(*ecr.Options)) (*ecr.DeleteRepositoryPolicyOutput, error) {
	return m.MockDeleteRepositoryPolicy(ctx, input, opts)
}
