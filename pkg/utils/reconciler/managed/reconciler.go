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

// Package managed reconciles namespaced ECR custom resources with their
// external AWS counterparts. Its Reconciler follows crossplane-runtime's
// managed reconciler, extended with annotation driven deletion and adoption
// policies, terminal errors and per-resource poll jitter.
package managed

import (
	"context"
	"math/rand"
	"strings"
	"time"

	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/logging"
	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	errorutils "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/errors"
)

const (
	// FinalizerName is added to every resource the Reconciler manages.
	FinalizerName = "finalizer.ecr.aws.crossplane.io"

	reconcileGracePeriod = 30 * time.Second
	defaultPollInterval  = 1 * time.Minute
	defaultTimeout       = 2 * time.Minute
)

// Error strings.
const (
	errGetManaged       = "cannot get managed resource"
	errUpdateStatus     = "cannot update managed resource status"
	errAddFinalizer     = "cannot add finalizer"
	errRemoveFinalizer  = "cannot remove finalizer"
	errReconcileConnect = "connect failed"
	errReconcileObserve = "observe failed"
	errReconcileCreate  = "create failed"
	errReconcileUpdate  = "update failed"
	errReconcileDelete  = "delete failed"
	errReadPolicy       = "cannot read resource policy annotations"

	errFmtNotManaged = "external resource already exists and is not managed by this resource: set the %s annotation to %q to adopt it"
)

// Event reasons.
const (
	reasonCannotConnect       event.Reason = "CannotConnectToProvider"
	reasonCannotObserve       event.Reason = "CannotObserveExternalResource"
	reasonCannotCreate        event.Reason = "CannotCreateExternalResource"
	reasonCannotUpdate        event.Reason = "CannotUpdateExternalResource"
	reasonCannotDelete        event.Reason = "CannotDeleteExternalResource"
	reasonCannotBind          event.Reason = "CannotBindExternalResource"
	reasonCannotUpdateManaged event.Reason = "CannotUpdateManagedResource"
	reasonInvalidPolicy       event.Reason = "InvalidResourcePolicy"

	reasonCreated  event.Reason = "CreatedExternalResource"
	reasonAdopted  event.Reason = "AdoptedExternalResource"
	reasonUpdated  event.Reason = "UpdatedExternalResource"
	reasonDeleted  event.Reason = "DeletedExternalResource"
	reasonDetached event.Reason = "DetachedExternalResource"

	reasonReconciliationPaused event.Reason = "ReconciliationPaused"
)

// ControllerName returns the recommended name for controllers that use this
// package to reconcile a particular kind of managed resource.
func ControllerName(kind string) string {
	return "managed/" + strings.ToLower(kind)
}

// An Object is a Kubernetes object with status conditions.
type Object interface {
	client.Object
	resource.Conditioned
}

// An ExternalObservation is the result of an observation of an external
// resource.
type ExternalObservation struct {
	// ResourceExists must be true if the external resource exists.
	ResourceExists bool

	// ResourceUpToDate should be true if the external resource is in its
	// desired state. Update is called when it is false.
	ResourceUpToDate bool

	// Diff describes how the external resource differs from its desired
	// state. It is only logged.
	Diff string
}

// An ExternalClient manages the lifecycle of an external resource.
type ExternalClient interface {
	// Observe the external resource the supplied object represents, and
	// project what was observed into its status.
	Observe(ctx context.Context, o Object) (ExternalObservation, error)

	// Create an external resource per the specifications of the supplied
	// object.
	Create(ctx context.Context, o Object) error

	// Update the external resource represented by the supplied object.
	Update(ctx context.Context, o Object) error

	// Delete the external resource upon deletion of its object.
	Delete(ctx context.Context, o Object) error
}

// An ExternalConnecter produces a new ExternalClient given the supplied
// object.
type ExternalConnecter interface {
	Connect(ctx context.Context, o Object) (ExternalClient, error)
}

// An ExternalConnectorFn is a function that satisfies the ExternalConnecter
// interface.
type ExternalConnectorFn func(ctx context.Context, o Object) (ExternalClient, error)

// Connect to the provider specified by the supplied object.
func (ec ExternalConnectorFn) Connect(ctx context.Context, o Object) (ExternalClient, error) {
	return ec(ctx, o)
}

// ExternalClientFns are a series of functions that satisfy the
// ExternalClient interface.
type ExternalClientFns struct {
	ObserveFn func(ctx context.Context, o Object) (ExternalObservation, error)
	CreateFn  func(ctx context.Context, o Object) error
	UpdateFn  func(ctx context.Context, o Object) error
	DeleteFn  func(ctx context.Context, o Object) error
}

// Observe the external resource the supplied object represents, if any.
func (e ExternalClientFns) Observe(ctx context.Context, o Object) (ExternalObservation, error) {
	return e.ObserveFn(ctx, o)
}

// Create an external resource per the specifications of the supplied object.
func (e ExternalClientFns) Create(ctx context.Context, o Object) error {
	return e.CreateFn(ctx, o)
}

// Update the external resource represented by the supplied object.
func (e ExternalClientFns) Update(ctx context.Context, o Object) error {
	return e.UpdateFn(ctx, o)
}

// Delete the external resource upon deletion of its object.
func (e ExternalClientFns) Delete(ctx context.Context, o Object) error {
	return e.DeleteFn(ctx, o)
}

// A Reconciler reconciles objects of one kind with their external resources.
type Reconciler struct {
	client    client.Client
	newObject func() Object

	pollInterval time.Duration
	pollJitter   time.Duration
	timeout      time.Duration

	external    ExternalConnecter
	finalizer   resource.Finalizer
	annotations CriticalAnnotationUpdater

	log    logging.Logger
	record event.Recorder
}

// A ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithPollInterval specifies how long the Reconciler should wait before
// queueing a new reconciliation after a successful reconcile.
func WithPollInterval(after time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		r.pollInterval = after
	}
}

// WithPollJitter adds a random duration of up to jitter to every poll
// interval.
func WithPollJitter(jitter time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		r.pollJitter = jitter
	}
}

// WithTimeout specifies the timeout duration cumulatively for all the calls
// that happen in the reconciliation function.
func WithTimeout(duration time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		r.timeout = duration
	}
}

// WithExternalConnecter specifies how the Reconciler should connect to the
// API used to sync and delete external resources.
func WithExternalConnecter(c ExternalConnecter) ReconcilerOption {
	return func(r *Reconciler) {
		r.external = c
	}
}

// WithFinalizer specifies how the Reconciler should add and remove
// finalizers to and from the managed resource.
func WithFinalizer(f resource.Finalizer) ReconcilerOption {
	return func(r *Reconciler) {
		r.finalizer = f
	}
}

// WithCriticalAnnotationUpdater specifies how the Reconciler should persist
// the annotations that record whether an object is bound to its external
// resource.
func WithCriticalAnnotationUpdater(u CriticalAnnotationUpdater) ReconcilerOption {
	return func(r *Reconciler) {
		r.annotations = u
	}
}

// WithLogger specifies how the Reconciler should log messages.
func WithLogger(l logging.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.log = l
	}
}

// WithRecorder specifies how the Reconciler should record events.
func WithRecorder(er event.Recorder) ReconcilerOption {
	return func(r *Reconciler) {
		r.record = er
	}
}

// NewReconciler returns a Reconciler that reconciles objects of the supplied
// kind. The kind must be registered with the manager's scheme.
func NewReconciler(m manager.Manager, of schema.GroupVersionKind, o ...ReconcilerOption) *Reconciler {
	nr := func() Object {
		obj, err := m.GetScheme().New(of)
		if err != nil {
			panic(errors.Wrapf(err, "cannot create an object of kind %s", of))
		}
		mo, ok := obj.(Object)
		if !ok {
			panic(errors.Errorf("%s is not a conditioned client.Object", of))
		}
		return mo
	}
	// Panic early if the kind is not usable.
	_ = nr()

	r := &Reconciler{
		client:       m.GetClient(),
		newObject:    nr,
		pollInterval: defaultPollInterval,
		timeout:      defaultTimeout,
		external:     ExternalConnectorFn(func(context.Context, Object) (ExternalClient, error) { return nil, errors.New("no external connecter") }),
		finalizer:    resource.NewAPIFinalizer(m.GetClient(), FinalizerName),
		annotations:  NewRetryingCriticalAnnotationUpdater(m.GetClient()),
		log:          logging.NewNopLogger(),
		record:       event.NewNopRecorder(),
	}
	for _, ro := range o {
		ro(r)
	}
	if r.timeout <= 0 {
		r.timeout = defaultTimeout
	}
	if r.pollInterval <= 0 {
		r.pollInterval = defaultPollInterval
	}
	return r
}

// Reconcile an object with its external resource.
func (r *Reconciler) Reconcile(ctx context.Context, req reconcile.Request) (reconcile.Result, error) { //nolint:gocyclo // Mirrors the linear flow of crossplane-runtime's managed reconciler.
	log := r.log.WithValues("request", req)
	log.Debug("Reconciling")

	ctx, cancel := context.WithTimeout(ctx, r.timeout+reconcileGracePeriod)
	defer cancel()

	// External calls get the shorter timeout so that there is time left to
	// record their failure.
	externalCtx, externalCancel := context.WithTimeout(ctx, r.timeout)
	defer externalCancel()

	o := r.newObject()
	if err := r.client.Get(ctx, req.NamespacedName, o); err != nil {
		// There's no need to requeue if the resource no longer exists.
		// Otherwise we'll be requeued implicitly because we return an error.
		log.Debug("Cannot get managed resource", "error", err)
		return reconcile.Result{}, errors.Wrap(resource.IgnoreNotFound(err), errGetManaged)
	}

	log = log.WithValues(
		"uid", o.GetUID(),
		"version", o.GetResourceVersion(),
	)

	if meta.IsPaused(o) {
		log.Debug("Reconciliation is paused via the pause annotation", "annotation", meta.AnnotationKeyReconciliationPaused, "value", "true")
		r.record.Event(o, event.Normal(reasonReconciliationPaused, "Reconciliation is paused via the pause annotation"))
		o.SetConditions(xpv1.ReconcilePaused())
		// If the pause annotation is removed, we will have a chance to
		// reconcile again and resume.
		return r.updateStatus(ctx, o, reconcile.Result{})
	}

	deletion, err := GetDeletionPolicy(o)
	if err != nil {
		return r.fail(ctx, log, o, reasonInvalidPolicy, errors.Wrap(err, errReadPolicy))
	}
	adoption, err := GetAdoptionPolicy(o)
	if err != nil {
		return r.fail(ctx, log, o, reasonInvalidPolicy, errors.Wrap(err, errReadPolicy))
	}

	if meta.WasDeleted(o) {
		return r.reconcileDelete(ctx, externalCtx, log.WithValues("deletion-timestamp", o.GetDeletionTimestamp()), o, deletion)
	}

	if err := r.finalizer.AddFinalizer(ctx, o); err != nil {
		if kerrors.IsConflict(err) {
			return reconcile.Result{Requeue: true}, nil
		}
		return r.fail(ctx, log, o, reasonCannotUpdateManaged, errors.Wrap(err, errAddFinalizer))
	}

	ext, err := r.external.Connect(externalCtx, o)
	if err != nil {
		return r.fail(ctx, log, o, reasonCannotConnect, errors.Wrap(err, errReconcileConnect))
	}

	obs, err := ext.Observe(externalCtx, o)
	if err != nil {
		return r.fail(ctx, log, o, reasonCannotObserve, errors.Wrap(err, errReconcileObserve))
	}

	if !obs.ResourceExists {
		return r.reconcileCreate(ctx, externalCtx, log, o, ext, adoption)
	}
	o.SetConditions(xpv1.Available())

	if !IsBound(o) {
		switch {
		case meta.ExternalCreateIncomplete(o):
			// We created the resource but did not get to record it.
			log.Debug("Binding to external resource of an unrecorded create")
		case adoption == AdoptionPolicyAdoptOrCreate:
			log.Debug("Adopting external resource")
			o.SetConditions(Adopted())
			r.record.Event(o, event.Normal(reasonAdopted, "Adopted existing external resource"))
		default:
			return r.fail(ctx, log, o, reasonCannotBind, errorutils.Terminalf(errFmtNotManaged, AnnotationAdoptionPolicy, AdoptionPolicyAdoptOrCreate))
		}
		meta.SetExternalCreateSucceeded(o, time.Now())
		if err := r.annotations.UpdateCriticalAnnotations(ctx, o); err != nil {
			return r.fail(ctx, log, o, reasonCannotUpdateManaged, err)
		}
	}

	if !obs.ResourceUpToDate {
		log.Debug("External resource differs from desired state", "diff", obs.Diff)
		if err := ext.Update(externalCtx, o); err != nil {
			return r.fail(ctx, log, o, reasonCannotUpdate, errors.Wrap(err, errReconcileUpdate))
		}
		log.Debug("Successfully requested update of external resource")
		r.record.Event(o, event.Normal(reasonUpdated, "Successfully requested update of external resource"))
	}

	clearTerminal(o)
	o.SetConditions(xpv1.ReconcileSuccess())
	after := r.nextPoll()
	log.Debug("External resource is up to date", "requeue-after", time.Now().Add(after))
	return r.updateStatus(ctx, o, reconcile.Result{RequeueAfter: after})
}

func (r *Reconciler) reconcileCreate(ctx, externalCtx context.Context, log logging.Logger, o Object, ext ExternalClient, adoption AdoptionPolicy) (reconcile.Result, error) {
	// The pending annotation is persisted before the external call, so that
	// a resource created by a pass that crashes before recording success is
	// still considered ours when it is observed.
	meta.SetExternalCreatePending(o, time.Now())
	if err := r.annotations.UpdateCriticalAnnotations(ctx, o); err != nil {
		return r.fail(ctx, log, o, reasonCannotUpdateManaged, err)
	}

	if err := ext.Create(externalCtx, o); err != nil {
		// Only a rejected create proves nothing was created. After any other
		// failure the resource may exist, so the pending annotation stays the
		// latest and the next pass binds what it observes.
		if createRejected(err) {
			meta.SetExternalCreateFailed(o, time.Now())
			if aerr := r.annotations.UpdateCriticalAnnotations(ctx, o); aerr != nil {
				log.Debug("Cannot record failed create", "error", aerr)
			}
		}
		// The resource appeared between observation and creation. It is
		// adopted by the next pass or never.
		if errorutils.IsConflict(err) && adoption == AdoptionPolicyCreate {
			err = errorutils.NewTerminal(err)
		}
		return r.fail(ctx, log, o, reasonCannotCreate, errors.Wrap(err, errReconcileCreate))
	}

	meta.SetExternalCreateSucceeded(o, time.Now())
	if err := r.annotations.UpdateCriticalAnnotations(ctx, o); err != nil {
		return r.fail(ctx, log, o, reasonCannotUpdateManaged, err)
	}

	log.Debug("Successfully requested creation of external resource")
	r.record.Event(o, event.Normal(reasonCreated, "Successfully requested creation of external resource"))
	clearTerminal(o)
	o.SetConditions(xpv1.Creating(), xpv1.ReconcileSuccess())
	// Requeue immediately so that everything that cannot be passed to the
	// create call is applied by the next pass.
	return r.updateStatus(ctx, o, reconcile.Result{Requeue: true})
}

func createRejected(err error) bool {
	switch errorutils.Classify(err) {
	case errorutils.ClassConflict, errorutils.ClassValidation, errorutils.ClassTerminal:
		return true
	}
	return false
}

func (r *Reconciler) reconcileDelete(ctx, externalCtx context.Context, log logging.Logger, o Object, deletion DeletionPolicy) (reconcile.Result, error) {
	if deletion == DeletionPolicyRetain || !IsBound(o) {
		log.Debug("Detaching from external resource", "policy", deletion, "bound", IsBound(o))
		if err := r.finalizer.RemoveFinalizer(ctx, o); err != nil {
			if kerrors.IsConflict(err) {
				return reconcile.Result{Requeue: true}, nil
			}
			return r.fail(ctx, log, o, reasonCannotUpdateManaged, errors.Wrap(err, errRemoveFinalizer))
		}
		r.record.Event(o, event.Normal(reasonDetached, "Detached from external resource"))
		return reconcile.Result{Requeue: false}, nil
	}

	o.SetConditions(xpv1.Deleting())

	ext, err := r.external.Connect(externalCtx, o)
	if err != nil {
		return r.fail(ctx, log, o, reasonCannotConnect, errors.Wrap(err, errReconcileConnect))
	}

	obs, err := ext.Observe(externalCtx, o)
	if err != nil {
		return r.fail(ctx, log, o, reasonCannotObserve, errors.Wrap(err, errReconcileObserve))
	}

	if obs.ResourceExists {
		if err := ext.Delete(externalCtx, o); err != nil {
			return r.fail(ctx, log, o, reasonCannotDelete, errors.Wrap(err, errReconcileDelete))
		}
		// We'll requeue to observe the deletion and remove the finalizer
		// once the external resource is gone.
		log.Debug("Successfully requested deletion of external resource")
		r.record.Event(o, event.Normal(reasonDeleted, "Successfully requested deletion of external resource"))
		o.SetConditions(xpv1.ReconcileSuccess())
		return r.updateStatus(ctx, o, reconcile.Result{Requeue: true})
	}

	if err := r.finalizer.RemoveFinalizer(ctx, o); err != nil {
		if kerrors.IsConflict(err) {
			return reconcile.Result{Requeue: true}, nil
		}
		return r.fail(ctx, log, o, reasonCannotUpdateManaged, errors.Wrap(err, errRemoveFinalizer))
	}
	log.Debug("Successfully deleted managed resource")
	return reconcile.Result{Requeue: false}, nil
}

// fail records err on the object. Terminal errors are not requeued; the next
// change to the object triggers a new pass. Claim conflicts are the exception
// and are polled. Any other error is requeued with
// the controller's rate limited backoff.
func (r *Reconciler) fail(ctx context.Context, log logging.Logger, o Object, reason event.Reason, err error) (reconcile.Result, error) {
	log.Debug("Reconciliation failed", "error", err, "terminal", errorutils.IsTerminal(err))
	r.record.Event(o, event.Warning(reason, err))
	if errorutils.IsTerminal(err) {
		cr := ReasonTerminalError
		if tr := errorutils.TerminalReason(err); tr != "" {
			cr = xpv1.ConditionReason(tr)
		}
		o.SetConditions(TerminalWithReason(cr, err), xpv1.ReconcileError(err))
		// A claim is released by a change to another object, which does not
		// trigger a pass for this one.
		if cr == ReasonClaimConflict {
			return r.updateStatus(ctx, o, reconcile.Result{RequeueAfter: r.nextPoll()})
		}
		return r.updateStatus(ctx, o, reconcile.Result{})
	}
	o.SetConditions(xpv1.ReconcileError(err))
	return r.updateStatus(ctx, o, reconcile.Result{Requeue: true})
}

func (r *Reconciler) updateStatus(ctx context.Context, o Object, result reconcile.Result) (reconcile.Result, error) {
	if err := r.client.Status().Update(ctx, o); err != nil {
		if kerrors.IsConflict(err) {
			return reconcile.Result{Requeue: true}, nil
		}
		return reconcile.Result{}, errors.Wrap(err, errUpdateStatus)
	}
	return result, nil
}

func (r *Reconciler) nextPoll() time.Duration {
	if r.pollJitter <= 0 {
		return r.pollInterval
	}
	return r.pollInterval + time.Duration(rand.Int63n(int64(r.pollJitter))) //nolint:gosec // Jitter does not need a secure source.
}

func clearTerminal(o Object) {
	if o.GetCondition(TypeTerminal).Status == corev1.ConditionTrue {
		o.SetConditions(NotTerminal())
	}
}
