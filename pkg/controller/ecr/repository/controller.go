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
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
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
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject   = "managed resource is not a Repository"
	errCreate             = "cannot create repository"
	errDelete             = "cannot delete repository"
	errRepositoryGone     = "repository no longer exists"
	errFmtEncryptionDrift = "encryption configuration cannot be changed from %s to %s: recreate the repository"
)

// SetupRepository adds a controller that reconciles Repository.
func SetupRepository(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha1.RepositoryKind)
	log := o.Logger.WithValues("controller", name)

	r := managed.NewReconciler(mgr, v1alpha1.RepositoryGroupVersionKind,
		managed.WithExternalConnecter(&connector{
			config:    o.AWSConfig,
			newClient: func(cfg aws.Config) ecr.RepositoryClient { return awsecr.NewFromConfig(cfg) },
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
		For(&v1alpha1.Repository{}).
		Complete(r)
}

type connector struct {
	config    connectaws.ConfigFn
	newClient func(cfg aws.Config) ecr.RepositoryClient
	log       logging.Logger
}

func (c *connector) Connect(ctx context.Context, o managed.Object) (managed.ExternalClient, error) {
	cr, ok := o.(*v1alpha1.Repository)
	if !ok {
		return nil, errors.New(errUnexpectedObject)
	}
	cfg, err := c.config(ctx, cr, cr.Spec.ForProvider.Region)
	if err != nil {
		return nil, err
	}
	return newExternal(c.newClient(*cfg), c.log), nil
}

type external struct {
	client       ecr.RepositoryClient
	subresources []syncer
	log          logging.Logger
}

func newExternal(client ecr.RepositoryClient, log logging.Logger) *external {
	return &external{
		client:       client,
		subresources: newSubresources(client),
		log:          log,
	}
}

func (e *external) Observe(ctx context.Context, o managed.Object) (managed.ExternalObservation, error) {
	cr, ok := o.(*v1alpha1.Repository)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	// A repository that is going away only needs to be found.
	if meta.WasDeleted(cr) {
		repo, err := ecr.FetchRepository(ctx, e.client, cr.Spec.ForProvider.Name, registryID(cr))
		return managed.ExternalObservation{ResourceExists: repo != nil}, err
	}

	desired, err := ecr.GenerateRepositoryState(cr.Spec.ForProvider)
	if err != nil {
		return managed.ExternalObservation{}, err
	}
	repo, err := ecr.FetchRepository(ctx, e.client, desired.Name, desired.RegistryID)
	if err != nil || repo == nil {
		return managed.ExternalObservation{}, err
	}
	cr.Status.AtProvider = ecr.GenerateRepositoryObservation(cr.Status.AtProvider, *repo)

	observedType, observedKey := ecrtypes.EncryptionTypeAes256, (*string)(nil)
	if enc := repo.EncryptionConfiguration; enc != nil {
		observedType, observedKey = enc.EncryptionType, enc.KmsKey
	}
	if !ecr.EncryptionUpToDate(desired.EncryptionType, desired.KMSKey, observedType, observedKey) {
		return managed.ExternalObservation{ResourceExists: true}, errorutils.Terminalf(errFmtEncryptionDrift, describeEncryption(observedType, observedKey), describeEncryption(desired.EncryptionType, desired.KMSKey))
	}

	p := &pass{cr: cr, desired: desired, repo: repo}
	var stale []string
	for _, s := range e.subresources {
		upToDate, err := s.observe(ctx, p)
		if err != nil {
			e.log.Debug("Cannot observe sub-resource", "subresource", s.name(), "error", err)
		}
		if err != nil || !upToDate {
			stale = append(stale, s.name())
		}
	}
	return managed.ExternalObservation{
		ResourceExists:   true,
		ResourceUpToDate: len(stale) == 0,
		Diff:             strings.Join(stale, ", "),
	}, nil
}

func (e *external) Create(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.Repository)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	desired, err := ecr.GenerateRepositoryState(cr.Spec.ForProvider)
	if err != nil {
		return err
	}
	out, err := e.client.CreateRepository(ctx, ecr.GenerateCreateRepositoryInput(desired))
	if err != nil {
		return errorutils.Wrap(err, errCreate)
	}
	if out.Repository != nil {
		cr.Status.AtProvider = ecr.GenerateRepositoryObservation(cr.Status.AtProvider, *out.Repository)
	}
	return nil
}

// Update converges every sub-resource of the repository. A failing
// sub-resource does not keep the others from converging.
func (e *external) Update(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.Repository)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	desired, err := ecr.GenerateRepositoryState(cr.Spec.ForProvider)
	if err != nil {
		return err
	}
	repo, err := ecr.FetchRepository(ctx, e.client, desired.Name, desired.RegistryID)
	if err != nil {
		return err
	}
	if repo == nil {
		return errors.New(errRepositoryGone)
	}

	p := &pass{cr: cr, desired: desired, repo: repo}
	var errs []error
	for _, s := range e.subresources {
		if err := s.sync(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errorutils.Combine(errs)
}

func (e *external) Delete(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.Repository)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	_, err := e.client.DeleteRepository(ctx, &awsecr.DeleteRepositoryInput{
		RepositoryName: aws.String(cr.Spec.ForProvider.Name),
		RegistryId:     registryID(cr),
		Force:          managed.ForceDelete(cr),
	})
	if errorutils.IsNotFound(err) {
		return nil
	}
	return errorutils.Wrap(err, errDelete)
}

func registryID(cr *v1alpha1.Repository) *string {
	if aws.ToString(cr.Spec.ForProvider.RegistryID) == "" {
		return nil
	}
	return cr.Spec.ForProvider.RegistryID
}

func describeEncryption(t ecrtypes.EncryptionType, key *string) string {
	if aws.ToString(key) == "" {
		return string(t)
	}
	return string(t) + " (" + aws.ToString(key) + ")"
}
