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

// Repository creation template triggers.
const (
	AppliedForReplication      = "REPLICATION"
	AppliedForPullThroughCache = "PULL_THROUGH_CACHE"
	AppliedForCreateOnPush     = "CREATE_ON_PUSH"
)

// RepositoryCreationTemplateParameters define the settings applied to
// repositories that ECR creates on your behalf.
type RepositoryCreationTemplateParameters struct {
	// Region is the region you'd like your template to be created in.
	Region string `json:"region"`

	// The repository namespace prefix the template applies to. ROOT applies
	// the template to every repository without a more specific template.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="prefix is immutable"
	Prefix string `json:"prefix"`

	// +optional
	Description *string `json:"description,omitempty"`

	// The features the template applies to.
	// +kubebuilder:validation:MinItems=1
	// +kubebuilder:validation:items:Enum=REPLICATION;PULL_THROUGH_CACHE;CREATE_ON_PUSH
	AppliedFor []string `json:"appliedFor"`

	// +optional
	EncryptionConfiguration *EncryptionConfiguration `json:"encryptionConfiguration,omitempty"`

	// +optional
	// +kubebuilder:validation:Enum=MUTABLE;IMMUTABLE;MUTABLE_WITH_EXCLUSION;IMMUTABLE_WITH_EXCLUSION
	ImageTagMutability *string `json:"imageTagMutability,omitempty"`

	// +optional
	ImageTagMutabilityExclusionFilters []ImageTagMutabilityExclusionFilter `json:"imageTagMutabilityExclusionFilters,omitempty"`

	// The lifecycle policy text applied to created repositories.
	// +optional
	LifecyclePolicy *string `json:"lifecyclePolicy,omitempty"`

	// The repository policy text applied to created repositories.
	// +optional
	RepositoryPolicy *string `json:"repositoryPolicy,omitempty"`

	// Tags applied to created repositories.
	// +optional
	ResourceTags []Tag `json:"resourceTags,omitempty"`

	// The ARN of the role ECR assumes to apply KMS encryption and tags to
	// created repositories.
	// +optional
	CustomRoleARN *string `json:"customRoleARN,omitempty"`
}

// A RepositoryCreationTemplateSpec defines the desired state of a RepositoryCreationTemplate.
type RepositoryCreationTemplateSpec struct {
	ForProvider RepositoryCreationTemplateParameters `json:"forProvider"`
}

// RepositoryCreationTemplateObservation keeps the state for the external resource
type RepositoryCreationTemplateObservation struct {
	CreatedAt  *metav1.Time `json:"createdAt,omitempty"`
	UpdatedAt  *metav1.Time `json:"updatedAt,omitempty"`
	RegistryID string       `json:"registryID,omitempty"`
}

// A RepositoryCreationTemplateStatus represents the observed state of a RepositoryCreationTemplate.
type RepositoryCreationTemplateStatus struct {
	xpv1.ConditionedStatus `json:",inline"`
	AtProvider             RepositoryCreationTemplateObservation `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true

// A RepositoryCreationTemplate defines the settings of repositories ECR
// creates through replication, pull through cache or create on push.
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="PREFIX",type="string",JSONPath=".spec.forProvider.prefix"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,categories={crossplane,aws,ecr}
type RepositoryCreationTemplate struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RepositoryCreationTemplateSpec   `json:"spec"`
	Status RepositoryCreationTemplateStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// RepositoryCreationTemplateList contains a list of RepositoryCreationTemplates
type RepositoryCreationTemplateList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []RepositoryCreationTemplate `json:"items"`
}
