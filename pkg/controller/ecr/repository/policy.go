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

	"github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/policy"
)

const (
	errSetRepositoryPolicy    = "cannot set repository policy"
	errDeleteRepositoryPolicy = "cannot delete repository policy"
)

func newRepositoryPolicy(client ecr.RepositoryClient) syncer {
	return subresource[*string]{
		id: subresourcePolicy,
		fetch: func(ctx context.Context, p *pass) (*string, error) {
			return ecr.FetchRepositoryPolicy(ctx, client, p.desired.Name, p.desired.RegistryID)
		},
		upToDate: func(p *pass, live *string) bool {
			return policy.ArePolicyDocumentsEqual(p.desired.Policy, ecr.PolicyText(live))
		},
		apply: func(ctx context.Context, p *pass, _ *string) error {
			if p.desired.Policy == "" {
				_, err := client.DeleteRepositoryPolicy(ctx, &awsecr.DeleteRepositoryPolicyInput{
					RepositoryName: aws.String(p.desired.Name),
					RegistryId:     p.desired.RegistryID,
				})
				if errorutils.IsNotFound(err) {
					return nil
				}
				return errorutils.Wrap(err, errDeleteRepositoryPolicy)
			}
			_, err := client.SetRepositoryPolicy(ctx, &awsecr.SetRepositoryPolicyInput{
				RepositoryName: aws.String(p.desired.Name),
				RegistryId:     p.desired.RegistryID,
				PolicyText:     aws.String(p.desired.Policy),
			})
			return errorutils.Wrap(err, errSetRepositoryPolicy)
		},
	}
}
