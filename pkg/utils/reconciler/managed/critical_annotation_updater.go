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

package managed

import (
	"context"

	"github.com/crossplane/crossplane-runtime/pkg/meta"
	"github.com/crossplane/crossplane-runtime/pkg/resource"
	"github.com/pkg/errors"
	"k8s.io/client-go/util/retry"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Error strings.
const (
	errUpdateCriticalAnnotations = "cannot update critical annotations"
)

// A CriticalAnnotationUpdater is used when it is critical that annotations
// must be updated before returning from the Reconcile loop.
type CriticalAnnotationUpdater interface {
	UpdateCriticalAnnotations(ctx context.Context, o client.Object) error
}

// A CriticalAnnotationUpdateFn may be used when it is critical that
// annotations must be updated before returning from the Reconcile loop.
type CriticalAnnotationUpdateFn func(ctx context.Context, o client.Object) error

// UpdateCriticalAnnotations of the supplied object.
func (fn CriticalAnnotationUpdateFn) UpdateCriticalAnnotations(ctx context.Context, o client.Object) error {
	return fn(ctx, o)
}

// A RetryingCriticalAnnotationUpdater is a CriticalAnnotationUpdater that
// retries annotation updates in the face of API server errors.
type RetryingCriticalAnnotationUpdater struct {
	client client.Client
}

// NewRetryingCriticalAnnotationUpdater returns a CriticalAnnotationUpdater that
// retries annotation updates in the face of API server errors.
func NewRetryingCriticalAnnotationUpdater(c client.Client) *RetryingCriticalAnnotationUpdater {
	return &RetryingCriticalAnnotationUpdater{client: c}
}

// UpdateCriticalAnnotations persists the annotations of the supplied object.
// It retries in the face of any API server error several times in order to
// ensure annotations that contain critical state are persisted. The update
// is made on a fresh copy of the object, so pending changes to the supplied
// object's spec and status are kept; only its resource version moves.
func (u *RetryingCriticalAnnotationUpdater) UpdateCriticalAnnotations(ctx context.Context, o client.Object) error {
	a := o.GetAnnotations()
	nn := client.ObjectKeyFromObject(o)
	err := retry.OnError(retry.DefaultRetry, resource.IsAPIError, func() error {
		current, ok := o.DeepCopyObject().(client.Object)
		if !ok {
			return errors.Errorf("%T is not a client.Object", o)
		}
		if err := u.client.Get(ctx, nn, current); err != nil {
			return err
		}
		meta.AddAnnotations(current, a)
		if err := u.client.Update(ctx, current); err != nil {
			return err
		}
		o.SetResourceVersion(current.GetResourceVersion())
		return nil
	})
	return errors.Wrap(err, errUpdateCriticalAnnotations)
}
