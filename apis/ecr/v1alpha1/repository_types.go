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

// RepositoryParameters define the desired state of an AWS Elastic Container Repository
type RepositoryParameters struct {
	// Region is the region you'd like your Repository to be created in.
	Region string `json:"region"`

	// Name of the repository. It is the identity of the repository and
	// cannot be changed.
	// +kubebuilder:validation:MinLength=2
	// +kubebuilder:validation:MaxLength=256
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="name is immutable"
	Name string `json:"name"`

	// The AWS account ID associated with the registry to create the
	// repository in. Defaults to the account of the credentials in use.
	// +optional
	RegistryID *string `json:"registryID,omitempty"`

	// The encryption configuration for the repository. It cannot be changed
	// once the repository exists.
	// +optional
	EncryptionConfiguration *EncryptionConfiguration `json:"encryptionConfiguration,omitempty"`

	// The image scanning configuration for the repository. This determines whether
	// images are scanned for known vulnerabilities after being pushed to the repository.
	// +optional
	ImageScanningConfiguration *ImageScanningConfiguration `json:"imageScanningConfiguration,omitempty"`

	// The tag mutability setting for the repository. If this parameter is omitted,
	// the default setting of MUTABLE will be used.
	// +optional
	// +kubebuilder:validation:Enum=MUTABLE;IMMUTABLE;MUTABLE_WITH_EXCLUSION;IMMUTABLE_WITH_EXCLUSION
	ImageTagMutability *string `json:"imageTagMutability,omitempty"`

	// Tags excluded from the tag mutability setting. Required by the
	// *_WITH_EXCLUSION mutability settings.
	// +optional
	ImageTagMutabilityExclusionFilters []ImageTagMutabilityExclusionFilter `json:"imageTagMutabilityExclusionFilters,omitempty"`

	// The JSON lifecycle policy text to apply to the repository. An empty
	// value removes the lifecycle policy.
	// +optional
	LifecyclePolicy *string `json:"lifecyclePolicy,omitempty"`

	// The JSON repository policy text to apply to the repository. An empty
	// value removes the repository policy.
	// +optional
	Policy *string `json:"policy,omitempty"`

	// Metadata tagging key value pairs
	// +optional
	Tags []Tag `json:"tags,omitempty"`
}

// A RepositorySpec defines the desired state of a Elastic Container Repository.
type RepositorySpec struct {
	ForProvider RepositoryParameters `json:"forProvider"`
}

// RepositoryObservation keeps the state for the external resource
type RepositoryObservation struct {
	// The date and time when the repository was created.
	CreatedAt *metav1.Time `json:"createdAt,omitempty"`

	// The AWS account ID associated with the registry that contains the repository.
	RegistryID string `json:"registryID,omitempty"`

	// The Amazon Resource Name (ARN) that identifies the repository.
	RepositoryARN string `json:"repositoryARN,omitempty"`

	// The URI for the repository. You can use this URI for container image push
	// and pull operations.
	RepositoryURI string `json:"repositoryURI,omitempty"`

	// The last observed tag mutability setting.
	ImageTagMutability string `json:"imageTagMutability,omitempty"`

	// The last observed scan on push setting.
	ScanOnPush *bool `json:"scanOnPush,omitempty"`

	// The encryption type the repository was created with.
	EncryptionType string `json:"encryptionType,omitempty"`
}

// A RepositoryStatus represents the observed state of a Elastic Container Repository.
type RepositoryStatus struct {
	xpv1.ConditionedStatus `json:",inline"`
	AtProvider             RepositoryObservation `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true

// A Repository represents an Elastic Container Repository together with its
// lifecycle policy, repository policy and tags.
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="URI",type="string",JSONPath=".status.atProvider.repositoryURI"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,categories={crossplane,aws,ecr}
type Repository struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RepositorySpec   `json:"spec"`
	Status RepositoryStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// RepositoryList contains a list of Repositories
type RepositoryList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Repository `json:"items"`
}
