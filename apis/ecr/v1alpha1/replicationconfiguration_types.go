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

// RepositoryFilterTypePrefixMatch is the only supported replication
// repository filter type.
const RepositoryFilterTypePrefixMatch = "PREFIX_MATCH"

// ReplicationDestination is a registry that images are replicated to.
type ReplicationDestination struct {
	// Region to replicate to.
	Region string `json:"region"`

	// The AWS account ID of the destination registry.
	RegistryID string `json:"registryID"`
}

// RepositoryFilter selects the repositories a replication rule applies to.
type RepositoryFilter struct {
	// The repository filter details. With PREFIX_MATCH it is a repository
	// name prefix.
	Filter string `json:"filter"`

	// +kubebuilder:validation:Enum=PREFIX_MATCH
	// +kubebuilder:default=PREFIX_MATCH
	FilterType string `json:"filterType"`
}

// ReplicationRule replicates the repositories matching the filters to every
// destination.
type ReplicationRule struct {
	// +kubebuilder:validation:MinItems=1
	Destinations []ReplicationDestination `json:"destinations"`

	// +optional
	RepositoryFilters []RepositoryFilter `json:"repositoryFilters,omitempty"`
}

// ReplicationConfigurationParameters define the desired replication
// configuration of a registry. A registry has exactly one replication
// configuration, so a single ReplicationConfiguration may claim a registry.
type ReplicationConfigurationParameters struct {
	// Region of the registry whose replication configuration is managed.
	Region string `json:"region"`

	// The AWS account ID of the registry. Defaults to the account of the
	// credentials in use.
	// +optional
	RegistryID *string `json:"registryID,omitempty"`

	// Rules, evaluated in order.
	// +optional
	Rules []ReplicationRule `json:"rules,omitempty"`
}

// A ReplicationConfigurationSpec defines the desired state of a ReplicationConfiguration.
type ReplicationConfigurationSpec struct {
	ForProvider ReplicationConfigurationParameters `json:"forProvider"`
}

// ReplicationConfigurationObservation keeps the state for the external resource
type ReplicationConfigurationObservation struct {
	RegistryID string `json:"registryID,omitempty"`
	RuleCount  *int   `json:"ruleCount,omitempty"`
}

// A ReplicationConfigurationStatus represents the observed state of a ReplicationConfiguration.
type ReplicationConfigurationStatus struct {
	xpv1.ConditionedStatus `json:",inline"`
	AtProvider             ReplicationConfigurationObservation `json:"atProvider,omitempty"`
}

// +kubebuilder:object:root=true

// A ReplicationConfiguration manages the replication rules of a registry.
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="SYNCED",type="string",JSONPath=".status.conditions[?(@.type=='Synced')].status"
// +kubebuilder:printcolumn:name="REGISTRY",type="string",JSONPath=".status.atProvider.registryID"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,categories={crossplane,aws,ecr}
type ReplicationConfiguration struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ReplicationConfigurationSpec   `json:"spec"`
	Status ReplicationConfigurationStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ReplicationConfigurationList contains a list of ReplicationConfigurations
type ReplicationConfigurationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ReplicationConfiguration `json:"items"`
}
