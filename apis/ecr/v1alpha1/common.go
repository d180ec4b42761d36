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

// Image tag mutability settings.
const (
	ImageTagMutabilityMutable                = "MUTABLE"
	ImageTagMutabilityImmutable              = "IMMUTABLE"
	ImageTagMutabilityMutableWithExclusion   = "MUTABLE_WITH_EXCLUSION"
	ImageTagMutabilityImmutableWithExclusion = "IMMUTABLE_WITH_EXCLUSION"
)

// Encryption types.
const (
	EncryptionTypeAES256  = "AES256"
	EncryptionTypeKMS     = "KMS"
	EncryptionTypeKMSDSSE = "KMS_DSSE"
)

// Tag defines a tag
type Tag struct {

	// Key is the name of the tag.
	Key string `json:"key"`

	// Value is the value of the tag.
	Value string `json:"value"`
}

// EncryptionConfiguration is the encryption configuration for a repository.
// It can only be set at creation time.
type EncryptionConfiguration struct {
	// The encryption type to use. Defaults to AES256.
	// +kubebuilder:validation:Enum=AES256;KMS;KMS_DSSE
	EncryptionType string `json:"encryptionType"`

	// If you use the KMS encryption type, specify the KMS key to use for
	// encryption. If no key is specified, the default AWS managed KMS key for
	// Amazon ECR will be used.
	// +optional
	KMSKey *string `json:"kmsKey,omitempty"`
}

// ImageScanningConfiguration Scanning Configuration
type ImageScanningConfiguration struct {

	// The setting that determines whether images are scanned after being pushed
	// to a repository. If set to true, images will be scanned after being pushed.
	// If this parameter is not specified, it will default to false and images will
	// not be scanned unless a scan is manually started with the StartImageScan
	// API.
	ScanOnPush bool `json:"scanOnPush"`
}

// ImageTagMutabilityExclusionFilter excludes matching tags from the
// repository's tag mutability setting.
type ImageTagMutabilityExclusionFilter struct {
	// +kubebuilder:validation:Enum=WILDCARD
	// +kubebuilder:default=WILDCARD
	FilterType string `json:"filterType"`

	// Filter is the tag pattern, for example "latest" or "release-*".
	Filter string `json:"filter"`
}
