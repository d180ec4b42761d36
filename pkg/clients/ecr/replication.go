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
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/pointer"
)

const (
	errDescribeRegistry = "cannot describe registry"
)

// GenerateReplicationRules returns the replication rules of the supplied
// parameters in declaration order.
func GenerateReplicationRules(p v1alpha1.ReplicationConfigurationParameters) ([]ecrtypes.ReplicationRule, error) {
	rules := make([]ecrtypes.ReplicationRule, 0, len(p.Rules))
	for i, r := range p.Rules {
		if len(r.Destinations) == 0 {
			return nil, errorutils.Terminalf("replication rule %d must have at least one destination", i)
		}
		rule := ecrtypes.ReplicationRule{
			Destinations: make([]ecrtypes.ReplicationDestination, 0, len(r.Destinations)),
		}
		for _, d := range r.Destinations {
			if d.Region == "" || d.RegistryID == "" {
				return nil, errorutils.Terminalf("replication rule %d has a destination without region or registryID", i)
			}
			rule.Destinations = append(rule.Destinations, ecrtypes.ReplicationDestination{
				Region:     aws.String(d.Region),
				RegistryId: aws.String(d.RegistryID),
			})
		}
		for _, f := range r.RepositoryFilters {
			ft := ecrtypes.RepositoryFilterType(f.FilterType)
			if ft == "" {
				ft = ecrtypes.RepositoryFilterTypePrefixMatch
			}
			if ft != ecrtypes.RepositoryFilterTypePrefixMatch {
				return nil, errorutils.Terminalf("replication rule %d has unknown repository filter type %q", i, f.FilterType)
			}
			if f.Filter == "" {
				return nil, errorutils.Terminalf("replication rule %d has an empty repository filter", i)
			}
			rule.RepositoryFilters = append(rule.RepositoryFilters, ecrtypes.RepositoryFilter{
				Filter:     aws.String(f.Filter),
				FilterType: ft,
			})
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// GeneratePutReplicationConfigurationInput returns the input that replaces
// the whole replication configuration of the registry with the supplied
// rules. An empty list removes every rule.
func GeneratePutReplicationConfigurationInput(rules []ecrtypes.ReplicationRule) *ecr.PutReplicationConfigurationInput {
	if rules == nil {
		rules = []ecrtypes.ReplicationRule{}
	}
	return &ecr.PutReplicationConfigurationInput{
		ReplicationConfiguration: &ecrtypes.ReplicationConfiguration{Rules: rules},
	}
}

// FetchReplicationConfiguration returns the ID of the registry of the caller
// and its replication rules.
func FetchReplicationConfiguration(ctx context.Context, c RegistryClient) (string, []ecrtypes.ReplicationRule, error) {
	out, err := c.DescribeRegistry(ctx, &ecr.DescribeRegistryInput{})
	if err != nil {
		return "", nil, errorutils.Wrap(err, errDescribeRegistry)
	}
	if out.ReplicationConfiguration == nil {
		return aws.ToString(out.RegistryId), nil, nil
	}
	return aws.ToString(out.RegistryId), out.ReplicationConfiguration.Rules, nil
}

// ReplicationRulesEqual returns true if both lists hold the same rules the
// same number of times, regardless of order. Destinations and filters within
// a rule are compared as sets.
func ReplicationRulesEqual(a, b []ecrtypes.ReplicationRule) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, r := range a {
		counts[ruleKey(r)]++
	}
	for _, r := range b {
		k := ruleKey(r)
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}

func ruleKey(r ecrtypes.ReplicationRule) string {
	dests := make([]string, 0, len(r.Destinations))
	for _, d := range r.Destinations {
		dests = append(dests, aws.ToString(d.Region)+"/"+aws.ToString(d.RegistryId))
	}
	filters := make([]string, 0, len(r.RepositoryFilters))
	for _, f := range r.RepositoryFilters {
		filters = append(filters, string(f.FilterType)+"/"+aws.ToString(f.Filter))
	}
	sort.Strings(dests)
	sort.Strings(filters)
	return strings.Join(dests, ",") + "|" + strings.Join(filters, ",")
}

// GenerateReplicationObservation merges what was observed about the registry
// into the current observation.
func GenerateReplicationObservation(current v1alpha1.ReplicationConfigurationObservation, registryID string, rules []ecrtypes.ReplicationRule) v1alpha1.ReplicationConfigurationObservation {
	o := current
	o.RegistryID = pointer.Merge(o.RegistryID, registryID)
	o.RuleCount = aws.Int(len(rules))
	return o
}
