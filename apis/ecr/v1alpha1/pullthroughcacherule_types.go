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
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PullThroughCacheRuleParameters define the desired state of a pull through
// cache rule.
type PullThroughCacheRuleParameters struct {
	// Region is the region you'd like your rule to be created in.
	Region string `json:"region"`

	// The repository name prefix to use when caching images from the source
	// registry.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="ecrRepositoryPrefix is immutable"
	ECRRepositoryPrefix string `json:"ecrRepositoryPrefix"`

	// The registry URL of the upstream public registry to use as the source
	// for the pull through cache rule. It cannot be changed after creation.
	UpstreamRegistryURL string `json:"upstreamRegistryURL"`

	// The name of the upstream registry, for example ecr-public or
	// docker-hub.
	// +optional
	UpstreamRegistry *string `json:"upstreamRegistry,omitempty"`

	// The repository name prefix of the upstream registry to match with the
	// upstream repository name.
	// +optional
	UpstreamRepositoryPrefix *string `json:"upstreamRepositoryPrefix,omitempty"`

	// The AWS account ID associated with the registry to create the rule in.
	// +optional
	RegistryID *string `json:"registryID,omitempty"`

	// The ARN of the Secrets Manager secret that identifies the credentials
	// to authenticate to the upstream registry.
	// +optional
	CredentialARN *string `json:"credentialARN,omitempty"`

	// The ARN of the IAM role used to authenticate to an upstream ECR
	// private registry.
	// +optional
	CustomRoleARN *string `json:"customRoleARN,omitempty"`
}

// A PullThroughCacheRuleSpec defines the desired state of a PullThroughCacheRule.
type PullThroughCacheRuleSpec struct {
	ForProvider PullThroughCacheRuleParameters `json:"forProvider"`
}

// PullThroughCacheRuleObservation keeps the state for the external resource
type PullThroughCacheRuleObservation struct {
	CreatedAt  *metav1.Time `json:"createdAt,omitempty"`
	UpdatedAt  *metav1.Time `json:"updatedAt,omitempty"`
	RegistryID string       `json:"registryID,omitempty"`
}

// A PullThroughCacheRuleStatus represents the observed state of a PullThroughCacheRule.
type PullThroughCacheRuleStatus struct {
	xpv1.ConditionedStatus `json:",inline"`
	AtProvider             PullThroughCacheRuleObservation `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true

// A PullThroughCacheRule caches images of an upstream registry in private
// repositories whose names start with a prefix.
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="PREFIX",type="string",JSONPath=".spec.forProvider.ecrRepositoryPrefix"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,categories={crossplane,aws,ecr}
type PullThroughCacheRule struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PullThroughCacheRuleSpec   `json:"spec"`
	Status PullThroughCacheRuleStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PullThroughCacheRuleList contains a list of PullThroughCacheRules
type PullThroughCacheRuleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PullThroughCacheRule `json:"items"`
}
