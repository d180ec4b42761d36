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

package connectaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	// AnnotationOwnerAccountID on a namespace selects the AWS account the
	// resources in that namespace are reconciled in.
	AnnotationOwnerAccountID = "ecr.aws.crossplane.io/owner-account-id"

	// RoleAccountMapName is the ConfigMap in the provider namespace that maps
	// AWS account IDs to the IAM role assumed for that account.
	RoleAccountMapName = "ecr-role-account-map"
)

const (
	errGetNamespace     = "cannot get namespace"
	errGetRoleMap       = "cannot get role account map"
	errNoRoleForAccount = "no role is mapped to account %s in the role account map"
	errInvalidRole      = "role %q mapped to account %s is not an IAM role ARN of that account"
)

// OwnerAccountID returns the owner account of the supplied namespace, or an
// empty string if resources in it use the provider's own account.
func OwnerAccountID(ctx context.Context, c client.Reader, namespace string) (string, error) {
	if namespace == "" {
		return "", nil
	}
	ns := &corev1.Namespace{}
	if err := c.Get(ctx, types.NamespacedName{Name: namespace}, ns); err != nil {
		return "", errors.Wrap(err, errGetNamespace)
	}
	return ns.GetAnnotations()[AnnotationOwnerAccountID], nil
}

// RoleForNamespace returns the IAM role to assume for resources in the
// supplied namespace, or an empty string if no role should be assumed.
func RoleForNamespace(ctx context.Context, c client.Reader, namespace, providerNamespace string) (string, error) {
	account, err := OwnerAccountID(ctx, c, namespace)
	if err != nil || account == "" {
		return "", err
	}
	cm := &corev1.ConfigMap{}
	if err := c.Get(ctx, types.NamespacedName{Namespace: providerNamespace, Name: RoleAccountMapName}, cm); err != nil {
		return "", errors.Wrap(err, errGetRoleMap)
	}
	role := cm.Data[account]
	if role == "" {
		return "", errors.Errorf(errNoRoleForAccount, account)
	}
	a, err := arn.Parse(role)
	if err != nil || a.Service != "iam" || a.AccountID != account {
		return "", errors.Errorf(errInvalidRole, role, account)
	}
	return role, nil
}
