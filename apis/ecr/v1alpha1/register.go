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

package v1alpha1

import (
	"reflect"

	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// Package type metadata.
const (
	Group   = "ecr.aws.crossplane.io"
	Version = "v1alpha1"
)

var (
	// SchemeGroupVersion is group version used to register these objects
	SchemeGroupVersion = schema.GroupVersion{Group: Group, Version: Version}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: SchemeGroupVersion}
)

// Repository type metadata.
var (
	RepositoryKind             = reflect.TypeOf(Repository{}).Name()
	RepositoryGroupKind        = schema.GroupKind{Group: Group, Kind: RepositoryKind}.String()
	RepositoryKindAPIVersion   = RepositoryKind + "." + SchemeGroupVersion.String()
	RepositoryGroupVersionKind = SchemeGroupVersion.WithKind(RepositoryKind)
)

// PullThroughCacheRule type metadata.
var (
	PullThroughCacheRuleKind             = reflect.TypeOf(PullThroughCacheRule{}).Name()
	PullThroughCacheRuleGroupKind        = schema.GroupKind{Group: Group, Kind: PullThroughCacheRuleKind}.String()
	PullThroughCacheRuleKindAPIVersion   = PullThroughCacheRuleKind + "." + SchemeGroupVersion.String()
	PullThroughCacheRuleGroupVersionKind = SchemeGroupVersion.WithKind(PullThroughCacheRuleKind)
)

// ReplicationConfiguration type metadata.
var (
	ReplicationConfigurationKind             = reflect.TypeOf(ReplicationConfiguration{}).Name()
	ReplicationConfigurationGroupKind        = schema.GroupKind{Group: Group, Kind: ReplicationConfigurationKind}.String()
	ReplicationConfigurationKindAPIVersion   = ReplicationConfigurationKind + "." + SchemeGroupVersion.String()
	ReplicationConfigurationGroupVersionKind = SchemeGroupVersion.WithKind(ReplicationConfigurationKind)
)

// RepositoryCreationTemplate type metadata.
var (
	RepositoryCreationTemplateKind             = reflect.TypeOf(RepositoryCreationTemplate{}).Name()
	RepositoryCreationTemplateGroupKind        = schema.GroupKind{Group: Group, Kind: RepositoryCreationTemplateKind}.String()
	RepositoryCreationTemplateKindAPIVersion   = RepositoryCreationTemplateKind + "." + SchemeGroupVersion.String()
	RepositoryCreationTemplateGroupVersionKind = SchemeGroupVersion.WithKind(RepositoryCreationTemplateKind)
)

func init() {
	SchemeBuilder.Register(&Repository{}, &RepositoryList{})
	SchemeBuilder.Register(&PullThroughCacheRule{}, &PullThroughCacheRuleList{})
	SchemeBuilder.Register(&ReplicationConfiguration{}, &ReplicationConfigurationList{})
	SchemeBuilder.Register(&RepositoryCreationTemplate{}, &RepositoryCreationTemplateList{})
}
