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

// Package ecr sets up the controllers of the ECR API group.
package ecr

import (
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/crossplane-contrib/provider-aws-ecr/pkg/controller/ecr/pullthroughcacherule"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/controller/ecr/replicationconfiguration"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/controller/ecr/repository"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/controller/ecr/repositorycreationtemplate"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/controller"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/setup"
)

// Setup ECR controllers. Their options are scoped as ecr.<controller>, e.g.
// ecr.repository.pollInterval.
func Setup(mgr ctrl.Manager, o controller.OptionsSet) error {
	b := setup.NewBatch(mgr, o, "ecr")
	b.Add("repository", repository.SetupRepository)
	b.Add("pullthroughcacherule", pullthroughcacherule.SetupPullThroughCacheRule)
	b.Add("replicationconfiguration", replicationconfiguration.SetupReplicationConfiguration)
	b.Add("repositorycreationtemplate", repositorycreationtemplate.SetupRepositoryCreationTemplate)
	return b.Run()
}
