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
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/tags"
)

const (
	errTag   = "cannot tag repository"
	errUntag = "cannot untag repository"
)

// newTags returns the tags sub-resource. Tags that are not desired are
// removed before the desired ones are set.
func newTags(client ecr.RepositoryClient) syncer {
	return subresource[map[string]string]{
		id: subresourceTags,
		fetch: func(ctx context.Context, p *pass) (map[string]string, error) {
			return ecr.FetchTags(ctx, client, aws.ToString(p.repo.RepositoryArn))
		},
		upToDate: func(p *pass, live map[string]string) bool {
			return tags.Equal(p.desired.Tags, live)
		},
		apply: func(ctx context.Context, p *pass, live map[string]string) error {
			set, remove := tags.DiffTags(p.desired.Tags, live)
			if len(remove) != 0 {
				if _, err := client.UntagResource(ctx, &awsecr.UntagResourceInput{ResourceArn: p.repo.RepositoryArn, TagKeys: remove}); err != nil {
					return errorutils.Wrap(err, errUntag)
				}
			}
			if len(set) != 0 {
				if _, err := client.TagResource(ctx, &awsecr.TagResourceInput{ResourceArn: p.repo.RepositoryArn, Tags: ecr.GenerateECRTags(set)}); err != nil {
					return errorutils.Wrap(err, errTag)
				}
			}
			return nil
		},
	}
}
