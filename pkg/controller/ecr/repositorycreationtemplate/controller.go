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

package repositorycreationtemplate

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/logging"
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
	errUnexpectedObject = "managed resource is not a RepositoryCreationTemplate"
	errCreate           = "cannot create repository creation template"
	errUpdate           = "cannot update repository creation template"
	errDelete           = "cannot delete repository creation template"
)

// SetupRepositoryCreationTemplate adds a controller that reconciles
// RepositoryCreationTemplate.
func SetupRepositoryCreationTemplate(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha1.RepositoryCreationTemplateKind)
	log := o.Logger.WithValues("controller", name)

	r := managed.NewReconciler(mgr, v1alpha1.RepositoryCreationTemplateGroupVersionKind,
		managed.WithExternalConnecter(&connector{
			config:    o.AWSConfig,
			newClient: func(cfg aws.Config) ecr.CreationTemplateClient { return awsecr.NewFromConfig(cfg) },
			log:       log,
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
		For(&v1alpha1.RepositoryCreationTemplate{}).
		Complete(r)
}

type connector struct {
	config    connectaws.ConfigFn
	newClient func(cfg aws.Config) ecr.CreationTemplateClient
	log       logging.Logger
}

func (c *connector) Connect(ctx context.Context, o managed.Object) (managed.ExternalClient, error) {
	cr, ok := o.(*v1alpha1.RepositoryCreationTemplate)
	if !ok {
		return nil, errors.New(errUnexpectedObject)
	}
	cfg, err := c.config(ctx, cr, cr.Spec.ForProvider.Region)
	if err != nil {
		return nil, err
	}
	return &external{client: c.newClient(*cfg), log: c.log}, nil
}

type external struct {
	client ecr.CreationTemplateClient
	log    logging.Logger
}

func (e *external) Observe(ctx context.Context, o managed.Object) (managed.ExternalObservation, error) {
	cr, ok := o.(*v1alpha1.RepositoryCreationTemplate)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	if meta.WasDeleted(cr) {
		t, _, err := ecr.FetchCreationTemplate(ctx, e.client, cr.Spec.ForProvider.Prefix)
		return managed.ExternalObservation{ResourceExists: t != nil}, err
	}

	desired, err := ecr.GenerateCreationTemplateState(cr.Spec.ForProvider)
	if err != nil {
		return managed.ExternalObservation{}, err
	}
	t, registryID, err := ecr.FetchCreationTemplate(ctx, e.client, desired.Prefix)
	if err != nil || t == nil {
		return managed.ExternalObservation{}, err
	}
	cr.Status.AtProvider = ecr.GenerateCreationTemplateObservation(cr.Status.AtProvider, *t, registryID)

	paths, err := ecr.CreationTemplateDiff(desired, ecr.ObservedCreationTemplateState(*t))
	if err != nil {
		return managed.ExternalObservation{ResourceExists: true}, err
	}
	return managed.ExternalObservation{
		ResourceExists:   true,
		ResourceUpToDate: len(paths) == 0,
		Diff:             strings.Join(paths, ", "),
	}, nil
}

func (e *external) Create(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.RepositoryCreationTemplate)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	desired, err := ecr.GenerateCreationTemplateState(cr.Spec.ForProvider)
	if err != nil {
		return err
	}
	out, err := e.client.CreateRepositoryCreationTemplate(ctx, ecr.GenerateCreateCreationTemplateInput(desired))
	if err != nil {
		return errorutils.Wrap(err, errCreate)
	}
	if out.RepositoryCreationTemplate != nil {
		cr.Status.AtProvider = ecr.GenerateCreationTemplateObservation(cr.Status.AtProvider, *out.RepositoryCreationTemplate, aws.ToString(out.RegistryId))
	}
	return nil
}

// Update replaces every setting of the template, since the update call has
// no way to leave a setting unchanged.
func (e *external) Update(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.RepositoryCreationTemplate)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	desired, err := ecr.GenerateCreationTemplateState(cr.Spec.ForProvider)
	if err != nil {
		return err
	}
	out, err := e.client.UpdateRepositoryCreationTemplate(ctx, ecr.GenerateUpdateCreationTemplateInput(desired))
	if err != nil {
		return errorutils.Wrap(err, errUpdate)
	}
	e.log.Debug("Updated repository creation template", "prefix", desired.Prefix)
	cr.Status.AtProvider.RegistryID = pointer.Merge(cr.Status.AtProvider.RegistryID, aws.ToString(out.RegistryId))
	if out.RepositoryCreationTemplate != nil {
		cr.Status.AtProvider = ecr.GenerateCreationTemplateObservation(cr.Status.AtProvider, *out.RepositoryCreationTemplate, aws.ToString(out.RegistryId))
	}
	return nil
}

func (e *external) Delete(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.RepositoryCreationTemplate)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	_, err := e.client.DeleteRepositoryCreationTemplate(ctx, &awsecr.DeleteRepositoryCreationTemplateInput{
		Prefix: aws.String(cr.Spec.ForProvider.Prefix),
	})
	if errorutils.IsNotFound(err) {
		return nil
	}
	return errorutils.Wrap(err, errDelete)
}
