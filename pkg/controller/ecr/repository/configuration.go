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

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"

	"github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
)

const (
	errUpdateScan       = "cannot update image scanning configuration"
	errUpdateMutability = "cannot update image tag mutability"
)

func newScanningConfiguration(client ecr.RepositoryClient) syncer {
	return subresource[bool]{
		id: subresourceScanning,
		fetch: func(_ context.Context, p *pass) (bool, error) {
			return p.repo.ImageScanningConfiguration != nil && p.repo.ImageScanningConfiguration.ScanOnPush, nil
		},
		upToDate: func(p *pass, scanOnPush bool) bool {
			return scanOnPush == p.desired.ScanOnPush
		},
		apply: func(ctx context.Context, p *pass, _ bool) error {
			_, err := client.PutImageScanningConfiguration(ctx, &awsecr.PutImageScanningConfigurationInput{
				RepositoryName:             aws.String(p.desired.Name),
				RegistryId:                 p.desired.RegistryID,
				ImageScanningConfiguration: &ecrtypes.ImageScanningConfiguration{ScanOnPush: p.desired.ScanOnPush},
			})
			return errorutils.Wrap(err, errUpdateScan)
		},
		project: func(p *pass, scanOnPush bool) {
			p.cr.Status.AtProvider.ScanOnPush = aws.Bool(scanOnPush)
		},
		applied: func(p *pass) bool {
			return p.desired.ScanOnPush
		},
	}
}

type mutability struct {
	setting ecrtypes.ImageTagMutability
	filters []ecrtypes.ImageTagMutabilityExclusionFilter
}

func newTagMutability(client ecr.RepositoryClient) syncer {
	return subresource[mutability]{
		id: subresourceMutability,
		fetch: func(_ context.Context, p *pass) (mutability, error) {
			return mutability{
				setting: ecr.MutabilityOrDefault(p.repo.ImageTagMutability),
				filters: p.repo.ImageTagMutabilityExclusionFilters,
			}, nil
		},
		upToDate: func(p *pass, live mutability) bool {
			return live.setting == p.desired.ImageTagMutability && ecr.ExclusionFiltersEqual(live.filters, p.desired.ExclusionFilters)
		},
		apply: func(ctx context.Context, p *pass, _ mutability) error {
			_, err := client.PutImageTagMutability(ctx, &awsecr.PutImageTagMutabilityInput{
				RepositoryName:                     aws.String(p.desired.Name),
				RegistryId:                         p.desired.RegistryID,
				ImageTagMutability:                 p.desired.ImageTagMutability,
				ImageTagMutabilityExclusionFilters: p.desired.ExclusionFilters,
			})
			return errorutils.Wrap(err, errUpdateMutability)
		},
		project: func(p *pass, live mutability) {
			p.cr.Status.AtProvider.ImageTagMutability = string(live.setting)
		},
		applied: func(p *pass) mutability {
			return mutability{setting: p.desired.ImageTagMutability, filters: p.desired.ExclusionFilters}
		},
	}
}
