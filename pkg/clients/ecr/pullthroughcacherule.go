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
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/pointer"
)

const (
	errDescribePullThroughCacheRule = "cannot describe pull through cache rule"
)

// PullThroughCacheRuleState is the normalized desired state of a pull
// through cache rule.
type PullThroughCacheRuleState struct {
	Prefix     string
	RegistryID *string

	UpstreamRegistryURL      string
	UpstreamRegistry         ecrtypes.UpstreamRegistry
	UpstreamRepositoryPrefix *string

	CredentialARN *string
	CustomRoleARN *string
}

// GeneratePullThroughCacheRuleState returns the normalized desired state of
// the supplied parameters.
func GeneratePullThroughCacheRuleState(p v1alpha1.PullThroughCacheRuleParameters) (PullThroughCacheRuleState, error) {
	if p.ECRRepositoryPrefix == "" {
		return PullThroughCacheRuleState{}, errorutils.Terminalf("ecrRepositoryPrefix must not be empty")
	}
	if p.UpstreamRegistryURL == "" {
		return PullThroughCacheRuleState{}, errorutils.Terminalf("upstreamRegistryURL must not be empty")
	}
	return PullThroughCacheRuleState{
		Prefix:                   p.ECRRepositoryPrefix,
		RegistryID:               emptyToNil(p.RegistryID),
		UpstreamRegistryURL:      p.UpstreamRegistryURL,
		UpstreamRegistry:         ecrtypes.UpstreamRegistry(aws.ToString(p.UpstreamRegistry)),
		UpstreamRepositoryPrefix: emptyToNil(p.UpstreamRepositoryPrefix),
		CredentialARN:            emptyToNil(p.CredentialARN),
		CustomRoleARN:            emptyToNil(p.CustomRoleARN),
	}, nil
}

// GenerateCreatePullThroughCacheRuleInput returns the input that creates the
// desired rule.
func GenerateCreatePullThroughCacheRuleInput(s PullThroughCacheRuleState) *ecr.CreatePullThroughCacheRuleInput {
	return &ecr.CreatePullThroughCacheRuleInput{
		EcrRepositoryPrefix:      aws.String(s.Prefix),
		UpstreamRegistryUrl:      aws.String(s.UpstreamRegistryURL),
		UpstreamRegistry:         s.UpstreamRegistry,
		UpstreamRepositoryPrefix: s.UpstreamRepositoryPrefix,
		RegistryId:               s.RegistryID,
		CredentialArn:            s.CredentialARN,
		CustomRoleArn:            s.CustomRoleARN,
	}
}

// GenerateUpdatePullThroughCacheRuleInput returns the input that updates the
// mutable settings of the desired rule.
func GenerateUpdatePullThroughCacheRuleInput(s PullThroughCacheRuleState) *ecr.UpdatePullThroughCacheRuleInput {
	return &ecr.UpdatePullThroughCacheRuleInput{
		EcrRepositoryPrefix: aws.String(s.Prefix),
		RegistryId:          s.RegistryID,
		CredentialArn:       s.CredentialARN,
		CustomRoleArn:       s.CustomRoleARN,
	}
}

// FetchPullThroughCacheRule returns the rule with the supplied prefix, or nil
// if it does not exist.
func FetchPullThroughCacheRule(ctx context.Context, c PullThroughCacheRuleClient, prefix string, registryID *string) (*ecrtypes.PullThroughCacheRule, error) {
	out, err := c.DescribePullThroughCacheRules(ctx, &ecr.DescribePullThroughCacheRulesInput{
		EcrRepositoryPrefixes: []string{prefix},
		RegistryId:            registryID,
	})
	if errorutils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errorutils.Wrap(err, errDescribePullThroughCacheRule)
	}
	for i := range out.PullThroughCacheRules {
		if aws.ToString(out.PullThroughCacheRules[i].EcrRepositoryPrefix) == prefix {
			return &out.PullThroughCacheRules[i], nil
		}
	}
	return nil, nil
}

// PullThroughCacheRuleImmutableDrift returns a terminal error if a setting
// that cannot be updated differs between the desired state and the
// observed rule.
func PullThroughCacheRuleImmutableDrift(s PullThroughCacheRuleState, r ecrtypes.PullThroughCacheRule) error {
	if normalizeRegistryURL(s.UpstreamRegistryURL) != normalizeRegistryURL(aws.ToString(r.UpstreamRegistryUrl)) {
		return errorutils.Terminalf("upstreamRegistryURL cannot be changed from %q to %q: recreate the rule", aws.ToString(r.UpstreamRegistryUrl), s.UpstreamRegistryURL)
	}
	if s.UpstreamRepositoryPrefix != nil && aws.ToString(s.UpstreamRepositoryPrefix) != aws.ToString(r.UpstreamRepositoryPrefix) {
		return errorutils.Terminalf("upstreamRepositoryPrefix cannot be changed from %q to %q: recreate the rule", aws.ToString(r.UpstreamRepositoryPrefix), aws.ToString(s.UpstreamRepositoryPrefix))
	}
	return nil
}

// IsPullThroughCacheRuleUpToDate returns true if the mutable settings of the
// observed rule match the desired state.
func IsPullThroughCacheRuleUpToDate(s PullThroughCacheRuleState, r ecrtypes.PullThroughCacheRule) bool {
	return aws.ToString(s.CredentialARN) == aws.ToString(r.CredentialArn) &&
		aws.ToString(s.CustomRoleARN) == aws.ToString(r.CustomRoleArn)
}

// GeneratePullThroughCacheRuleObservation merges what was observed about the
// supplied rule into the current observation.
func GeneratePullThroughCacheRuleObservation(current v1alpha1.PullThroughCacheRuleObservation, r ecrtypes.PullThroughCacheRule) v1alpha1.PullThroughCacheRuleObservation {
	o := current
	o.CreatedAt = pointer.MergePtr(o.CreatedAt, pointer.TimeToMetaTime(r.CreatedAt))
	o.UpdatedAt = pointer.MergePtr(o.UpdatedAt, pointer.TimeToMetaTime(r.UpdatedAt))
	o.RegistryID = pointer.Merge(o.RegistryID, aws.ToString(r.RegistryId))
	return o
}

func normalizeRegistryURL(u string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	u = strings.TrimPrefix(u, "https://")
	return strings.TrimSuffix(u, "/")
}

func emptyToNil(s *string) *string {
	if aws.ToString(s) == "" {
		return nil
	}
	return s
}
