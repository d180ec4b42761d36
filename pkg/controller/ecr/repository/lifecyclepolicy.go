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
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/jsonpatch"
)

const (
	errPutLifecyclePolicy    = "cannot put lifecycle policy"
	errDeleteLifecyclePolicy = "cannot delete lifecycle policy"
)

// newLifecyclePolicy returns the lifecycle policy sub-resource. An empty
// desired policy removes the live one. Policies are compared as JSON
// documents since AWS returns them re-formatted.
func newLifecyclePolicy(client ecr.RepositoryClient) syncer {
	return subresource[*string]{
		id: subresourceLifecyclePolicy,
		fetch: func(ctx context.Context, p *pass) (*string, error) {
			return ecr.FetchLifecyclePolicy(ctx, client, p.desired.Name, p.desired.RegistryID)
		},
		upToDate: func(p *pass, live *string) bool {
			return jsonpatch.EqualDocuments(p.desired.LifecyclePolicy, ecr.PolicyText(live))
		},
		apply: func(ctx context.Context, p *pass, _ *string) error {
			if p.desired.LifecyclePolicy == "" {
				_, err := client.DeleteLifecyclePolicy(ctx, &awsecr.DeleteLifecyclePolicyInput{
					RepositoryName: aws.String(p.desired.Name),
					RegistryId:     p.desired.RegistryID,
				})
				if errorutils.IsNotFound(err) {
					return nil
				}
				return errorutils.Wrap(err, errDeleteLifecyclePolicy)
			}
			_, err := client.PutLifecyclePolicy(ctx, &awsecr.PutLifecyclePolicyInput{
				RepositoryName:      aws.String(p.desired.Name),
				RegistryId:          p.desired.RegistryID,
				LifecyclePolicyText: aws.String(p.desired.LifecyclePolicy),
			})
			return errorutils.Wrap(err, errPutLifecyclePolicy)
		},
	}
}
