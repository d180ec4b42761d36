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

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/logging"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/clients/ecr"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/cache"
	connectaws "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/connect/aws"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/controller"
	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/reconciler/managed"
)

const (
	errUnexpectedObject = "managed resource is not a ReplicationConfiguration"
	errIndex            = "cannot index replication configurations by region"
	errPut              = "cannot put replication configuration"
	errFmtWrongRegistry = "registryID is %s but the credentials in use manage registry %s"

	diffRules = "rules"
)

// SetupReplicationConfiguration adds a controller that reconciles
// ReplicationConfiguration.
func SetupReplicationConfiguration(mgr ctrl.Manager, o controller.Options) error {
	name := managed.ControllerName(v1alpha1.ReplicationConfigurationKind)
	log := o.Logger.WithValues("controller", name)

	if err := cache.IndexByRegion(context.Background(), mgr.GetFieldIndexer(), &v1alpha1.ReplicationConfiguration{}, func(o client.Object) string {
		return o.(*v1alpha1.ReplicationConfiguration).Spec.ForProvider.Region
	}); err != nil {
		return errors.Wrap(err, errIndex)
	}

	r := managed.NewReconciler(mgr, v1alpha1.ReplicationConfigurationGroupVersionKind,
		managed.WithExternalConnecter(&connector{
			kube:      mgr.GetClient(),
			config:    o.AWSConfig,
			newClient: func(cfg aws.Config) ecr.RegistryClient { return awsecr.NewFromConfig(cfg) },
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
		For(&v1alpha1.ReplicationConfiguration{}).
		Complete(r)
}

type connector struct {
	kube      client.Reader
	config    connectaws.ConfigFn
	newClient func(cfg aws.Config) ecr.RegistryClient
	log       logging.Logger
}

func (c *connector) Connect(ctx context.Context, o managed.Object) (managed.ExternalClient, error) {
	cr, ok := o.(*v1alpha1.ReplicationConfiguration)
	if !ok {
		return nil, errors.New(errUnexpectedObject)
	}
	cfg, err := c.config(ctx, cr, cr.Spec.ForProvider.Region)
	if err != nil {
		return nil, err
	}
	return &external{client: c.newClient(*cfg), claims: newClaimant(c.kube), log: c.log}, nil
}

// external manages the replication configuration of the registry of the
// credentials in use. The registry always exists, so a configuration exists
// when it holds at least one rule, or when this resource already created an
// empty one.
type external struct {
	client ecr.RegistryClient
	claims *claimant
	log    logging.Logger
}

func (e *external) Observe(ctx context.Context, o managed.Object) (managed.ExternalObservation, error) {
	cr, ok := o.(*v1alpha1.ReplicationConfiguration)
	if !ok {
		return managed.ExternalObservation{}, errors.New(errUnexpectedObject)
	}

	if meta.WasDeleted(cr) {
		return e.observeDeletion(ctx, cr)
	}

	rules, err := ecr.GenerateReplicationRules(cr.Spec.ForProvider)
	if err != nil {
		return managed.ExternalObservation{}, err
	}
	registryID, live, err := ecr.FetchReplicationConfiguration(ctx, e.client)
	if err != nil {
		return managed.ExternalObservation{}, err
	}
	if want := aws.ToString(cr.Spec.ForProvider.RegistryID); want != "" && registryID != "" && want != registryID {
		return managed.ExternalObservation{}, errorutils.Terminalf(errFmtWrongRegistry, want, registryID)
	}
	cr.Status.AtProvider = ecr.GenerateReplicationObservation(cr.Status.AtProvider, registryID, live)

	// A resource that does not own the registry must not write to it.
	if err := e.claims.arbitrate(ctx, cr); err != nil {
		return managed.ExternalObservation{}, err
	}

	if len(live) == 0 && (len(rules) != 0 || !managed.IsBound(cr)) {
		return managed.ExternalObservation{ResourceExists: false}, nil
	}
	upToDate := ecr.ReplicationRulesEqual(rules, live)
	obs := managed.ExternalObservation{ResourceExists: true, ResourceUpToDate: upToDate}
	if !upToDate {
		obs.Diff = diffRules
	}
	return obs, nil
}

// observeDeletion reports the rules of the registry as gone when another
// resource owns the registry, so that deleting this one only detaches it.
func (e *external) observeDeletion(ctx context.Context, cr *v1alpha1.ReplicationConfiguration) (managed.ExternalObservation, error) {
	registryID, live, err := ecr.FetchReplicationConfiguration(ctx, e.client)
	if err != nil || len(live) == 0 {
		return managed.ExternalObservation{}, err
	}
	cr.Status.AtProvider = ecr.GenerateReplicationObservation(cr.Status.AtProvider, registryID, live)
	_, owner, err := e.claims.owner(ctx, cr)
	if err != nil {
		return managed.ExternalObservation{}, err
	}
	if owner != nil {
		e.log.Debug("Registry is owned by another resource, detaching", "owner", owner.GetNamespace()+"/"+owner.GetName())
		return managed.ExternalObservation{}, nil
	}
	return managed.ExternalObservation{ResourceExists: true}, nil
}

func (e *external) Create(ctx context.Context, o managed.Object) error {
	return e.put(ctx, o)
}

func (e *external) Update(ctx context.Context, o managed.Object) error {
	return e.put(ctx, o)
}

// put replaces every rule of the registry with the desired ones.
func (e *external) put(ctx context.Context, o managed.Object) error {
	cr, ok := o.(*v1alpha1.ReplicationConfiguration)
	if !ok {
		return errors.New(errUnexpectedObject)
	}
	rules, err := ecr.GenerateReplicationRules(cr.Spec.ForProvider)
	if err != nil {
		return err
	}
	out, err := e.client.PutReplicationConfiguration(ctx, ecr.GeneratePutReplicationConfigurationInput(rules))
	if err != nil {
		return errorutils.Wrap(err, errPut)
	}
	e.log.Debug("Put replication configuration", "rules", len(rules))
	if out.ReplicationConfiguration != nil {
		cr.Status.AtProvider = ecr.GenerateReplicationObservation(cr.Status.AtProvider, "", out.ReplicationConfiguration.Rules)
	}
	return nil
}

// Delete removes every replication rule of the registry.
func (e *external) Delete(ctx context.Context, o managed.Object) error {
	if _, ok := o.(*v1alpha1.ReplicationConfiguration); !ok {
		return errors.New(errUnexpectedObject)
	}
	_, err := e.client.PutReplicationConfiguration(ctx, ecr.GeneratePutReplicationConfigurationInput(nil))
	return errorutils.Wrap(err, errPut)
}
