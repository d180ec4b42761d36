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

package fake

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

// MockCreationTemplateClient is a func-field fake of the CreationTemplateClient interface.
type MockCreationTemplateClient struct {
	MockCreateRepositoryCreationTemplate    func(ctx context.Context, input *ecr.CreateRepositoryCreationTemplateInput, opts []func(*ecr.Options)) (*ecr.CreateRepositoryCreationTemplateOutput, error)
	MockDescribeRepositoryCreationTemplates func(ctx context.Context, input *ecr.DescribeRepositoryCreationTemplatesInput, opts []func(*ecr.Options)) (*ecr.DescribeRepositoryCreationTemplatesOutput, error)
	MockUpdateRepositoryCreationTemplate    func(ctx context.Context, input *ecr.UpdateRepositoryCreationTemplateInput, opts []func(*ecr.Options)) (*ecr.UpdateRepositoryCreationTemplateOutput, error)
	MockDeleteRepositoryCreationTemplate    func(ctx context.Context, input *ecr.DeleteRepositoryCreationTemplateInput, opts []func(*ecr.Options)) (*ecr.DeleteRepositoryCreationTemplateOutput, error)
}

// CreateRepositoryCreationTemplate calls MockCreateRepositoryCreationTemplate.
func (m *MockCreationTemplateClient) CreateRepositoryCreationTemplate(ctx context.Context, input *ecr.CreateRepositoryCreationTemplateInput, opts ...func(*ecr.Options)) (*ecr.CreateRepositoryCreationTemplateOutput, error) {
	return m.MockCreateRepositoryCreationTemplate(ctx, input, opts)
}

// DescribeRepositoryCreationTemplates calls MockDescribeRepositoryCreationTemplates.
func (m *MockCreationTemplateClient) DescribeRepositoryCreationTemplates(ctx context.Context, input *ecr.DescribeRepositoryCreationTemplatesInput, opts ...func(*ecr.Options)) (*ecr.DescribeRepositoryCreationTemplatesOutput, error) {
	return m.MockDescribeRepositoryCreationTemplates(ctx, input, opts)
}

// UpdateRepositoryCreationTemplate calls MockUpdateRepositoryCreationTemplate.
func (m *MockCreationTemplateClient) UpdateRepositoryCreationTemplate(ctx context.Context, input *ecr.UpdateRepositoryCreationTemplateInput, opts ...func(*ecr.Options)) (*ecr.UpdateRepositoryCreationTemplateOutput, error) {
	return m.MockUpdateRepositoryCreationTemplate(ctx, input, opts)
}

// DeleteRepositoryCreationTemplate calls MockDeleteRepositoryCreationTemplate.
func (m *MockCreationTemplateClient) DeleteRepositoryCreationTemplate(ctx context.Context, input *ecr.DeleteRepositoryCreationTemplateInput, opts ...func(*ecr.Options)) (*ecr.DeleteRepositoryCreationTemplateOutput, error) {
	return m.MockDeleteRepositoryCreationTemplate(ctx, input, opts)
}
