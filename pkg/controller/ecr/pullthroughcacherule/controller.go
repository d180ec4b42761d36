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

package pullthroughcacherule

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr"
	connectaws "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/connect/aws"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/controller"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/pointer"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject = "managed resource is not a PullThroughCacheRule"
	errCreate           = "cannot create pull through cache rule"
	errUpdate           = "cannot update pull through cache rule"
	errDelete           = "cannot delete pull through cache rule"
)

// SetupPullThroughCacheRule adds a controller that reconciles
// PullThroughCacheRule.
func SetupPullThroughCacheRule(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha1.PullThroughCacheRuleKind)
	log := o.Logger.WithValues("controller", name)

	r := managed.NewReconciler(mgr, v1alpha1.PullThroughCacheRuleGroupVersionKind,
		managed.WithExternalConnecter(&connector{
			config:    o.AWSConfig,
			newClient: func(cfg aws.Config) ecr.PullThroughCacheRuleClient { return awsecr.NewFromConfig(cfg) },
		}),
		managed.WithPollInterval(o.PollInterval),
		managed.WithPollJitter(o.PollIntervalJitter),
		managed.WithTimeout(o.Timeout),
		managed.WithLogger(log),
		managed.WithRecorder(event.NewAPIRecorder(mgr.GetEventRecorderFor(name))))

	return ctrl.NewControllerManagedBy(mgr).
		Named(name).
		WithOptions(o.ForControllerRuntime()).
		WithEventFilter(resource.DesiredStateChanged()).
		For(&v1alpha1.PullThroughCacheRule{}).
		Complete(r)
}

type connector struct {
	config    connectaws.ConfigFn
	newClient func(cfg aws.Config) ecr.PullThroughCacheRuleClient
}

func (c *connector) Connect(ctx context.Context, o managed.Object) (managed.ExternalClient, error) {
	cr, ok := o.(*v1alpha1.PullThroughCacheRule)
	if !ok {
		return nil, errors.New(errUnexpectedObject)
	}
	cfg, err := c.config(ctx, cr, cr.Spec.ForProvider.Region)
	if err != nil {
		return nil, err
	}
	return &external{client: c.newClient(*cfg)}, nil
}

type external struct {
	client ecr.PullThroughCacheRuleClient
}

func (e *external) Observe(ctx context.Context, o managed.Object) (managed.ExternalObservation, error) {
	cr, ok := o.(*v1alpha1.PullThroughCacheRule)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}
	p := cr.Spec.ForProvider

	if meta.WasDeleted(cr) {
		rule, err := ecr.FetchPullThroughCacheRule(ctx, e.client, p.ECRRepositoryPrefix, registryID(p))
		return managed.ExternalObservation{ResourceExists: rule != nil}, err
	}

	desired, err := ecr.GeneratePullThroughCacheRuleState(p)
	if err != nil {
		return managed.ExternalObservation{}, err
	}
	rule, err := ecr.FetchPullThroughCacheRule(ctx, e.client, desired.Prefix, desired.RegistryID)
	if err != nil || rule == nil {
		return managed.ExternalObservation{}, err
	}
	cr.Status.AtProvider = ecr.GeneratePullThroughCacheRuleObservation(cr.Status.AtProvider, *rule)

	if err := ecr.PullThroughCacheRuleImmutableDrift(desired, *rule); err != nil {
		return managed.ExternalObservation{ResourceExists: true}, err
	}
	return managed.ExternalObservation{
		ResourceExists:   true,
		ResourceUpToDate: ecr.IsPullThroughCacheRuleUpToDate(desired, *rule),
		Diff:             diff(desired, *rule),
	}, nil
}

func (e *external) Create(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.PullThroughCacheRule)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	desired, err := ecr.GeneratePullThroughCacheRuleState(cr.Spec.ForProvider)
	if err != nil {
		return err
	}
	out, err := e.client.CreatePullThroughCacheRule(ctx, ecr.GenerateCreatePullThroughCacheRuleInput(desired))
	if err != nil {
		return errorutils.Wrap(err, errCreate)
	}
	cr.Status.AtProvider.RegistryID = pointer.Merge(cr.Status.AtProvider.RegistryID, aws.ToString(out.RegistryId))
	cr.Status.AtProvider.CreatedAt = pointer.MergePtr(cr.Status.AtProvider.CreatedAt, pointer.TimeToMetaTime(out.CreatedAt))
	return nil
}

func (e *external) Update(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.PullThroughCacheRule)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	desired, err := ecr.GeneratePullThroughCacheRuleState(cr.Spec.ForProvider)
	if err != nil {
		return err
	}
	out, err := e.client.UpdatePullThroughCacheRule(ctx, ecr.GenerateUpdatePullThroughCacheRuleInput(desired))
	if err != nil {
		return errorutils.Wrap(err, errUpdate)
	}
	cr.Status.AtProvider.UpdatedAt = pointer.MergePtr(cr.Status.AtProvider.UpdatedAt, pointer.TimeToMetaTime(out.UpdatedAt))
	return nil
}

func (e *external) Delete(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.PullThroughCacheRule)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	_, err := e.client.DeletePullThroughCacheRule(ctx, &awsecr.DeletePullThroughCacheRuleInput{
		EcrRepositoryPrefix: aws.String(cr.Spec.ForProvider.ECRRepositoryPrefix),
		RegistryId:          registryID(cr.Spec.ForProvider),
	})
	if errorutils.IsNotFound(err) {
		return nil
	}
	return errorutils.Wrap(err, errDelete)
}

// diff names the mutable settings that differ from the observed rule.
func diff(s ecr.PullThroughCacheRuleState, r ecrtypes.PullThroughCacheRule) string {
	var fields []string
	if aws.ToString(s.CredentialARN) != aws.ToString(r.CredentialArn) {
		fields = append(fields, "credentialARN")
	}
	if aws.ToString(s.CustomRoleARN) != aws.ToString(r.CustomRoleArn) {
		fields = append(fields, "customRoleARN")
	}
	return strings.Join(fields, ", ")
}

func registryID(p v1alpha1.PullThroughCacheRuleParameters) *string {
	if aws.ToString(p.RegistryID) == "" {
		return nil
	}
	return p.RegistryID
}
