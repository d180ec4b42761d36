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

package repository

import (
	"context"

	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/pkg/errors"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/metrics"
)

// Sub-resource names. They name the failing part of a repository in
// condition messages and metrics.
const (
	subresourceScanning        = "imageScanningConfiguration"
	subresourceMutability      = "imageTagMutability"
	subresourceLifecyclePolicy = "lifecyclePolicy"
	subresourcePolicy          = "policy"
	subresourceTags            = "tags"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// A pass is what a single reconciliation pass knows about a repository.
type pass struct {
	cr      *v1alpha1.Repository
	desired ecr.RepositoryState
	// repo was described during this pass.
	repo *ecrtypes.Repository
}

// A subresource is one independently converged part of a repository whose
// live state has type L.
type subresource[L any] struct {
	id string

	// fetch returns the live state.
	fetch func(ctx context.Context, p *pass) (L, error)

	// upToDate returns true if the live state is the desired one.
	upToDate func(p *pass, live L) bool

	// apply issues the calls that turn the live state into the desired one.
	apply func(ctx context.Context, p *pass, live L) error

	// project records the live state in the status. Optional.
	project func(p *pass, live L)

	// applied returns the live state after a successful apply, which is
	// projected in place of the state fetched before it. Optional.
	applied func(p *pass) L
}

// A syncer is a subresource with its live state type erased, so that
// sub-resources of different types can be driven by one loop.
type syncer interface {
	name() string

	// observe returns true if the sub-resource is up to date.
	observe(ctx context.Context, p *pass) (bool, error)

	// sync observes the sub-resource and applies the desired state if it
	// is not up to date.
	sync(ctx context.Context, p *pass) error
}

func (s subresource[L]) name() string { return s.id }

func (s subresource[L]) read(ctx context.Context, p *pass) (L, bool, error) {
	live, err := s.fetch(ctx, p)
	if err != nil {
		return live, false, errors.Wrap(err, s.id)
	}
	if s.project != nil {
		s.project(p, live)
	}
	return live, s.upToDate(p, live), nil
}

func (s subresource[L]) observe(ctx context.Context, p *pass) (bool, error) {
	_, upToDate, err := s.read(ctx, p)
	return upToDate, err
}

func (s subresource[L]) sync(ctx context.Context, p *pass) error {
	live, upToDate, err := s.read(ctx, p)
	if err != nil || upToDate {
		return err
	}
	if err := s.apply(ctx, p, live); err != nil {
		metrics.IncSubresourceApply(v1alpha1.RepositoryKind, s.id, resultError)
		return errors.Wrap(err, s.id)
	}
	metrics.IncSubresourceApply(v1alpha1.RepositoryKind, s.id, resultSuccess)
	if s.project != nil && s.applied != nil {
		s.project(p, s.applied(p))
	}
	return nil
}

// newSubresources returns every sub-resource of a repository in the order
// they are converged.
func newSubresources(client ecr.RepositoryClient) []syncer {
	return []syncer{
		newScanningConfiguration(client),
		newTagMutability(client),
		newLifecyclePolicy(client),
		newRepositoryPolicy(client),
		newTags(client),
	}
}
