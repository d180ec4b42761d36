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

package managed

import (
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"sigs.k8s.io/controller-runtime/pkg/client"

	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
)

// Annotations recognized on every managed ECR resource.
const (
	AnnotationDeletionPolicy = "ecr.aws.crossplane.io/deletion-policy"
	AnnotationAdoptionPolicy = "ecr.aws.crossplane.io/adoption-policy"
	AnnotationForceDelete    = "ecr.aws.crossplane.io/force-delete"
)

// A DeletionPolicy determines what happens to the external resource when the
// custom resource is deleted.
type DeletionPolicy string

// Deletion policies.
const (
	DeletionPolicyDelete DeletionPolicy = "delete"
	DeletionPolicyRetain DeletionPolicy = "retain"
)

// An AdoptionPolicy determines what happens when the external resource
// already exists before the custom resource is bound to it.
type AdoptionPolicy string

// Adoption policies.
const (
	AdoptionPolicyCreate        AdoptionPolicy = "create"
	AdoptionPolicyAdoptOrCreate AdoptionPolicy = "adopt-or-create"
)

// GetDeletionPolicy returns the deletion policy of o. An absent annotation
// means DeletionPolicyDelete; an unknown value is a terminal error.
func GetDeletionPolicy(o client.Object) (DeletionPolicy, error) {
	switch p := DeletionPolicy(o.GetAnnotations()[AnnotationDeletionPolicy]); p {
	case "", DeletionPolicyDelete:
		return DeletionPolicyDelete, nil
	case DeletionPolicyRetain:
		return p, nil
	default:
		return "", errorutils.Terminalf("unknown %s %q: must be %q or %q", AnnotationDeletionPolicy, p, DeletionPolicyDelete, DeletionPolicyRetain)
	}
}

// GetAdoptionPolicy returns the adoption policy of o. An absent annotation
// means AdoptionPolicyCreate; an unknown value is a terminal error.
func GetAdoptionPolicy(o client.Object) (AdoptionPolicy, error) {
	switch p := AdoptionPolicy(o.GetAnnotations()[AnnotationAdoptionPolicy]); p {
	case "", AdoptionPolicyCreate:
		return AdoptionPolicyCreate, nil
	case AdoptionPolicyAdoptOrCreate:
		return p, nil
	default:
		return "", errorutils.Terminalf("unknown %s %q: must be %q or %q", AnnotationAdoptionPolicy, p, AdoptionPolicyCreate, AdoptionPolicyAdoptOrCreate)
	}
}

// ForceDelete returns true if the external resource should be deleted even
// when it still holds data, e.g. a repository that contains images.
func ForceDelete(o client.Object) bool {
	return o.GetAnnotations()[AnnotationForceDelete] == "true"
}

// IsBound returns true if o has been bound to its external resource, either
// by creating or by adopting it. Only bound resources are ever deleted
// externally.
func IsBound(o client.Object) bool {
	return !meta.GetExternalCreateSucceeded(o).IsZero()
}
