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

// Package apis contains Kubernetes API groups for the AWS Elastic Container
// Registry provider.
package apis

import (
	"k8s.io/apimachinery/pkg/runtime"

	ecrv1alpha1 "github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
)

// AddToSchemes registers every API group served by the provider.
var AddToSchemes = runtime.SchemeBuilder{
	ecrv1alpha1.SchemeBuilder.AddToScheme,
}

// AddToScheme adds all Resources to the Scheme
func AddToScheme(s *runtime.Scheme) error {
	return AddToSchemes.AddToScheme(s)
}
