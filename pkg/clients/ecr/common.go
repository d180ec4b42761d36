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
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
)

// GenerateTagMap returns the supplied tags as a map. When a key is declared
// more than once the last value wins.
func GenerateTagMap(tags []v1alpha1.Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[t.Key] = t.Value
	}
	return m
}

// GenerateECRTags returns the supplied tag map as ECR tags sorted by key.
func GenerateECRTags(m map[string]string) []ecrtypes.Tag {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tags := make([]ecrtypes.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, ecrtypes.Tag{Key: aws.String(k), Value: aws.String(m[k])})
	}
	return tags
}

// TagMap returns the supplied ECR tags as a map.
func TagMap(tags []ecrtypes.Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}
	return m
}

// PolicyText returns the trimmed policy text, or an empty string when no
// policy is desired.
func PolicyText(p *string) string {
	return strings.TrimSpace(aws.ToString(p))
}

func generateMutability(m *string, filters []v1alpha1.ImageTagMutabilityExclusionFilter) (ecrtypes.ImageTagMutability, []ecrtypes.ImageTagMutabilityExclusionFilter, error) {
	mutability := ecrtypes.ImageTagMutability(aws.ToString(m))
	if mutability == "" {
		mutability = ecrtypes.ImageTagMutabilityMutable
	}
	withExclusion := false
	switch mutability {
	case ecrtypes.ImageTagMutabilityMutable, ecrtypes.ImageTagMutabilityImmutable:
	case ecrtypes.ImageTagMutabilityMutableWithExclusion, ecrtypes.ImageTagMutabilityImmutableWithExclusion:
		withExclusion = true
	default:
		return "", nil, errorutils.Terminalf("unknown image tag mutability %q", mutability)
	}

	out := make([]ecrtypes.ImageTagMutabilityExclusionFilter, 0, len(filters))
	for _, f := range filters {
		ft := ecrtypes.ImageTagMutabilityExclusionFilterType(f.FilterType)
		if ft == "" {
			ft = ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard
		}
		if ft != ecrtypes.ImageTagMutabilityExclusionFilterTypeWildcard {
			return "", nil, errorutils.Terminalf("unknown image tag mutability exclusion filter type %q", f.FilterType)
		}
		if f.Filter == "" {
			return "", nil, errorutils.Terminalf("image tag mutability exclusion filter must not be empty")
		}
		out = append(out, ecrtypes.ImageTagMutabilityExclusionFilter{FilterType: ft, Filter: aws.String(f.Filter)})
	}
	switch {
	case withExclusion && len(out) == 0:
		return "", nil, errorutils.Terminalf("image tag mutability %s requires at least one exclusion filter", mutability)
	case !withExclusion && len(out) != 0:
		return "", nil, errorutils.Terminalf("image tag mutability %s does not accept exclusion filters", mutability)
	}
	return mutability, NormalizeExclusionFilters(out), nil
}

// NormalizeExclusionFilters returns the supplied filters sorted and without
// duplicates. An empty list is returned as nil.
func NormalizeExclusionFilters(filters []ecrtypes.ImageTagMutabilityExclusionFilter) []ecrtypes.ImageTagMutabilityExclusionFilter {
	if len(filters) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(filters))
	out := make([]ecrtypes.ImageTagMutabilityExclusionFilter, 0, len(filters))
	for _, f := range filters {
		k := filterKey(f)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return filterKey(out[i]) < filterKey(out[j]) })
	return out
}

// ExclusionFiltersEqual returns true if both lists hold the same filters,
// regardless of order and duplicates.
func ExclusionFiltersEqual(a, b []ecrtypes.ImageTagMutabilityExclusionFilter) bool {
	return filterSet(a).Equal(filterSet(b))
}

func filterSet(filters []ecrtypes.ImageTagMutabilityExclusionFilter) mapset.Set[string] {
	s := mapset.NewThreadUnsafeSetWithSize[string](len(filters))
	for _, f := range filters {
		s.Add(filterKey(f))
	}
	return s
}

func filterKey(f ecrtypes.ImageTagMutabilityExclusionFilter) string {
	return string(f.FilterType) + "/" + aws.ToString(f.Filter)
}

// MutabilityOrDefault returns the observed mutability, defaulting to MUTABLE
// when AWS did not report one.
func MutabilityOrDefault(m ecrtypes.ImageTagMutability) ecrtypes.ImageTagMutability {
	if m == "" {
		return ecrtypes.ImageTagMutabilityMutable
	}
	return m
}

func generateEncryption(e *v1alpha1.EncryptionConfiguration) (ecrtypes.EncryptionType, *string, error) {
	if e == nil {
		return ecrtypes.EncryptionTypeAes256, nil, nil
	}
	t := ecrtypes.EncryptionType(e.EncryptionType)
	if t == "" {
		t = ecrtypes.EncryptionTypeAes256
	}
	switch t {
	case ecrtypes.EncryptionTypeAes256:
		if aws.ToString(e.KMSKey) != "" {
			return "", nil, errorutils.Terminalf("a KMS key cannot be used with encryption type %s", t)
		}
		return t, nil, nil
	case ecrtypes.EncryptionTypeKms, ecrtypes.EncryptionTypeKmsDsse:
		if aws.ToString(e.KMSKey) == "" {
			return t, nil, nil
		}
		return t, e.KMSKey, nil
	default:
		return "", nil, errorutils.Terminalf("unknown encryption type %q", e.EncryptionType)
	}
}

// EncryptionUpToDate returns true if the observed encryption type and key
// satisfy the desired ones. A desired key matches an observed key ARN that
// ends with it, since AWS reports the full ARN of a key given by ID. When no
// key is desired, any key satisfies a KMS encryption type.
func EncryptionUpToDate(desiredType ecrtypes.EncryptionType, desiredKey *string, observedType ecrtypes.EncryptionType, observedKey *string) bool {
	if observedType == "" {
		observedType = ecrtypes.EncryptionTypeAes256
	}
	if desiredType != observedType {
		return false
	}
	want, got := aws.ToString(desiredKey), aws.ToString(observedKey)
	if want == "" || want == got {
		return true
	}
	return strings.HasSuffix(got, "/"+want) || strings.HasSuffix(got, ":"+want)
}
