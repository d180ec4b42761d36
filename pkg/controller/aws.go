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

package controller

import (
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/crossplane-contrib/provider-aws-ecr/pkg/controller/ecr"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/controller"
)

// Setup creates all ECR controllers with the supplied options and adds them
// to the supplied manager.
func Setup(mgr ctrl.Manager, o controller.OptionsSet) error {
	for _, setup := range []func(ctrl.Manager, controller.OptionsSet) error{
		ecr.Setup,
	} {
		if err := setup(mgr, o); err != nil {
			return err
		}
	}
	return nil
}
