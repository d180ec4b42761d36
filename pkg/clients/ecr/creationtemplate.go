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
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/pkg/errors"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/jsonpatch"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/pointer"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/policy"
)

const (
	errDescribeCreationTemplate = "cannot describe repository creation template"
	errDiffCreationTemplate     = "cannot compute repository creation template diff"
)

// CreationTemplateState is the normalized state of a repository creation
// template. It is used for both the desired and the observed side so the
// two can be diffed as JSON.
type CreationTemplateState struct {
	Prefix             string                                       `json:"prefix"`
	Description        string                                       `json:"description"`
	AppliedFor         []ecrtypes.RCTAppliedFor                     `json:"appliedFor"`
	EncryptionType     ecrtypes.EncryptionType                      `json:"encryptionType"`
	KMSKey             *string                                      `json:"kmsKey,omitempty"`
	ImageTagMutability ecrtypes.ImageTagMutability                  `json:"imageTagMutability"`
	ExclusionFilters   []ecrtypes.ImageTagMutabilityExclusionFilter `json:"imageTagMutabilityExclusionFilters"`
	LifecyclePolicy    string                                       `json:"lifecyclePolicy"`
	RepositoryPolicy   string                                       `json:"repositoryPolicy"`
	ResourceTags       map[string]string                            `json:"resourceTags"`
	CustomRoleARN      string                                       `json:"customRoleARN"`
}

// GenerateCreationTemplateState returns the normalized desired state of the
// supplied parameters.
func GenerateCreationTemplateState(p v1alpha1.RepositoryCreationTemplateParameters) (CreationTemplateState, error) {
	if p.Prefix == "" {
		return CreationTemplateState{}, errorutils.Terminalf("prefix must not be empty")
	}
	appliedFor, err := generateAppliedFor(p.AppliedFor)
	if err != nil {
		return CreationTemplateState{}, err
	}
	s := CreationTemplateState{
		Prefix:           p.Prefix,
		Description:      aws.ToString(p.Description),
		AppliedFor:       appliedFor,
		LifecyclePolicy:  PolicyText(p.LifecyclePolicy),
		RepositoryPolicy: PolicyText(p.RepositoryPolicy),
		ResourceTags:     GenerateTagMap(p.ResourceTags),
		CustomRoleARN:    aws.ToString(p.CustomRoleARN),
	}
	if s.ImageTagMutability, s.ExclusionFilters, err = generateMutability(p.ImageTagMutability, p.ImageTagMutabilityExclusionFilters); err != nil {
		return CreationTemplateState{}, err
	}
	if s.EncryptionType, s.KMSKey, err = generateEncryption(p.EncryptionConfiguration); err != nil {
		return CreationTemplateState{}, err
	}
	return s, nil
}

func generateAppliedFor(in []string) ([]ecrtypes.RCTAppliedFor, error) {
	if len(in) == 0 {
		return nil, errorutils.Terminalf("appliedFor must have at least one entry")
	}
	seen := make(map[ecrtypes.RCTAppliedFor]bool, len(in))
	out := make([]ecrtypes.RCTAppliedFor, 0, len(in))
	for _, a := range in {
		v := ecrtypes.RCTAppliedFor(a)
		switch v {
		case ecrtypes.RCTAppliedForReplication, ecrtypes.RCTAppliedForPullThroughCache, ecrtypes.RCTAppliedForCreateOnPush:
		default:
			return nil, errorutils.Terminalf("unknown appliedFor value %q", a)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return sortAppliedFor(out), nil
}

func sortAppliedFor(a []ecrtypes.RCTAppliedFor) []ecrtypes.RCTAppliedFor {
	if len(a) == 0 {
		return nil
	}
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	return a
}

// GenerateCreateCreationTemplateInput returns the input that creates the
// desired template.
func GenerateCreateCreationTemplateInput(s CreationTemplateState) *ecr.CreateRepositoryCreationTemplateInput {
	return &ecr.CreateRepositoryCreationTemplateInput{
		Prefix:                             aws.String(s.Prefix),
		AppliedFor:                         s.AppliedFor,
		Description:                        nilIfEmpty(s.Description),
		CustomRoleArn:                      nilIfEmpty(s.CustomRoleARN),
		EncryptionConfiguration:            templateEncryption(s),
		ImageTagMutability:                 s.ImageTagMutability,
		ImageTagMutabilityExclusionFilters: s.ExclusionFilters,
		LifecyclePolicy:                    nilIfEmpty(s.LifecyclePolicy),
		RepositoryPolicy:                   nilIfEmpty(s.RepositoryPolicy),
		ResourceTags:                       GenerateECRTags(s.ResourceTags),
	}
}

// GenerateUpdateCreationTemplateInput returns the input that replaces every
// setting of the template with the desired one. Text fields are sent even
// when empty so that clearing them in the spec clears them in AWS.
func GenerateUpdateCreationTemplateInput(s CreationTemplateState) *ecr.UpdateRepositoryCreationTemplateInput {
	tags := GenerateECRTags(s.ResourceTags)
	if tags == nil {
		tags = []ecrtypes.Tag{}
	}
	return &ecr.UpdateRepositoryCreationTemplateInput{
		Prefix:                             aws.String(s.Prefix),
		AppliedFor:                         s.AppliedFor,
		Description:                        aws.String(s.Description),
		CustomRoleArn:                      aws.String(s.CustomRoleARN),
		EncryptionConfiguration:            templateEncryption(s),
		ImageTagMutability:                 s.ImageTagMutability,
		ImageTagMutabilityExclusionFilters: s.ExclusionFilters,
		LifecyclePolicy:                    aws.String(s.LifecyclePolicy),
		RepositoryPolicy:                   aws.String(s.RepositoryPolicy),
		ResourceTags:                       tags,
	}
}

func templateEncryption(s CreationTemplateState) *ecrtypes.EncryptionConfigurationForRepositoryCreationTemplate {
	return &ecrtypes.EncryptionConfigurationForRepositoryCreationTemplate{
		EncryptionType: s.EncryptionType,
		KmsKey:         s.KMSKey,
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// FetchCreationTemplate returns the template with the supplied prefix and
// the ID of the registry it belongs to. The template is nil if it does not
// exist.
func FetchCreationTemplate(ctx context.Context, c CreationTemplateClient, prefix string) (*ecrtypes.RepositoryCreationTemplate, string, error) {
	out, err := c.DescribeRepositoryCreationTemplates(ctx, &ecr.DescribeRepositoryCreationTemplatesInput{
		Prefixes: []string{prefix},
	})
	if errorutils.IsNotFound(err) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", errorutils.Wrap(err, errDescribeCreationTemplate)
	}
	for i := range out.RepositoryCreationTemplates {
		if aws.ToString(out.RepositoryCreationTemplates[i].Prefix) == prefix {
			return &out.RepositoryCreationTemplates[i], aws.ToString(out.RegistryId), nil
		}
	}
	return nil, aws.ToString(out.RegistryId), nil
}

// ObservedCreationTemplateState returns the normalized state of the supplied
// template, defaulting what AWS omits the same way the desired state does.
func ObservedCreationTemplateState(t ecrtypes.RepositoryCreationTemplate) CreationTemplateState {
	s := CreationTemplateState{
		Prefix:             aws.ToString(t.Prefix),
		Description:        aws.ToString(t.Description),
		AppliedFor:         sortAppliedFor(append([]ecrtypes.RCTAppliedFor(nil), t.AppliedFor...)),
		EncryptionType:     ecrtypes.EncryptionTypeAes256,
		ImageTagMutability: MutabilityOrDefault(t.ImageTagMutability),
		ExclusionFilters:   NormalizeExclusionFilters(t.ImageTagMutabilityExclusionFilters),
		LifecyclePolicy:    PolicyText(t.LifecyclePolicy),
		RepositoryPolicy:   PolicyText(t.RepositoryPolicy),
		ResourceTags:       TagMap(t.ResourceTags),
		CustomRoleARN:      aws.ToString(t.CustomRoleArn),
	}
	if e := t.EncryptionConfiguration; e != nil {
		if e.EncryptionType != "" {
			s.EncryptionType = e.EncryptionType
		}
		s.KMSKey = e.KmsKey
	}
	return s
}

// CreationTemplateDiff returns the JSON pointer paths of the settings that
// differ between the desired and the observed template. Policies that are
// semantically equal and keys that name the same KMS key are not reported.
func CreationTemplateDiff(desired, observed CreationTemplateState) ([]string, error) {
	if jsonpatch.EqualDocuments(desired.LifecyclePolicy, observed.LifecyclePolicy) {
		observed.LifecyclePolicy = desired.LifecyclePolicy
	}
	if policy.ArePolicyDocumentsEqual(desired.RepositoryPolicy, observed.RepositoryPolicy) {
		observed.RepositoryPolicy = desired.RepositoryPolicy
	}
	if EncryptionUpToDate(desired.EncryptionType, desired.KMSKey, observed.EncryptionType, observed.KMSKey) {
		observed.EncryptionType, observed.KMSKey = desired.EncryptionType, desired.KMSKey
	}
	paths, err := jsonpatch.ChangedPaths(observed, desired)
	return paths, errors.Wrap(err, errDiffCreationTemplate)
}

// GenerateCreationTemplateObservation merges what was observed about the
// supplied template into the current observation.
func GenerateCreationTemplateObservation(current v1alpha1.RepositoryCreationTemplateObservation, t ecrtypes.RepositoryCreationTemplate, registryID string) v1alpha1.RepositoryCreationTemplateObservation {
	o := current
	o.CreatedAt = pointer.MergePtr(o.CreatedAt, pointer.TimeToMetaTime(t.CreatedAt))
	o.UpdatedAt = pointer.MergePtr(o.UpdatedAt, pointer.TimeToMetaTime(t.UpdatedAt))
	o.RegistryID = pointer.Merge(o.RegistryID, registryID)
	return o
}
