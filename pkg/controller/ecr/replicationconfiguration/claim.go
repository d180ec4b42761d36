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

package replicationconfiguration

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/cache"
	connectaws "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/connect/aws"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/reconciler/managed"
)

const (
	errListClaims   = "cannot list replication configurations"
	errOwnerAccount = "cannot determine owner account"
	errFmtClaimed   = "registry %s in %s is already managed by ReplicationConfiguration %s/%s"
)

// A claimant knows the registry every ReplicationConfiguration claims. Owner
// accounts are looked up once per namespace.
type claimant struct {
	kube     client.Reader
	accounts map[string]string
}

func newClaimant(kube client.Reader) *claimant {
	return &claimant{kube: kube, accounts: map[string]string{}}
}

// registry returns the ID of the registry claimed by cr: its registryID, else
// the owner account of its namespace, else the registry it was last observed
// in. It is empty when none is known yet.
func (c *claimant) registry(ctx context.Context, cr *v1alpha1.ReplicationConfiguration) (string, error) {
	if id := aws.ToString(cr.Spec.ForProvider.RegistryID); id != "" {
		return id, nil
	}
	ns := cr.GetNamespace()
	account, ok := c.accounts[ns]
	if !ok {
		var err error
		if account, err = connectaws.OwnerAccountID(ctx, c.kube, ns); err != nil {
			return "", errors.Wrap(err, errOwnerAccount)
		}
		c.accounts[ns] = account
	}
	if account != "" {
		return account, nil
	}
	return cr.Status.AtProvider.RegistryID, nil
}

// arbitrate returns a terminal error if an older ReplicationConfiguration in
// the same region claims the same registry as cr.
func (c *claimant) arbitrate(ctx context.Context, cr *v1alpha1.ReplicationConfiguration) error {
	key, owner, err := c.owner(ctx, cr)
	if err != nil || owner == nil {
		return err
	}
	return errorutils.NewTerminalWithReason(string(managed.ReasonClaimConflict),
		errors.Errorf(errFmtClaimed, key, cr.Spec.ForProvider.Region, owner.GetNamespace(), owner.GetName()))
}

// owner returns the registry claimed by cr and the oldest other
// ReplicationConfiguration in the same region that claims it, if any.
func (c *claimant) owner(ctx context.Context, cr *v1alpha1.ReplicationConfiguration) (string, *v1alpha1.ReplicationConfiguration, error) {
	key, err := c.registry(ctx, cr)
	if err != nil || key == "" {
		return key, nil, err
	}
	l := &v1alpha1.ReplicationConfigurationList{}
	if err := cache.ListByRegion(ctx, c.kube, l, cr.Spec.ForProvider.Region); err != nil {
		return key, nil, errors.Wrap(err, errListClaims)
	}
	var owner *v1alpha1.ReplicationConfiguration
	for i := range l.Items {
		other := &l.Items[i]
		if sameObject(other, cr) || !older(other, cr) {
			continue
		}
		k, err := c.registry(ctx, other)
		if err != nil {
			return key, nil, err
		}
		if k == key && (owner == nil || older(other, owner)) {
			owner = other
		}
	}
	return key, owner, nil
}

func sameObject(a, b client.Object) bool {
	return a.GetNamespace() == b.GetNamespace() && a.GetName() == b.GetName()
}

// older orders by creation time, then by namespace and name.
func older(a, b client.Object) bool {
	ta, tb := a.GetCreationTimestamp(), b.GetCreationTimestamp()
	if !ta.Equal(&tb) {
		return ta.Before(&tb)
	}
	return strings.Compare(a.GetNamespace()+"/"+a.GetName(), b.GetNamespace()+"/"+b.GetName()) < 0
}
