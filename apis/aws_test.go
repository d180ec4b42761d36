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

package apis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"

	ecrv1alpha1 "github.com/crossplane-contrib/provider-aws-ecr/apis/ecr/v1alpha1"
)

func TestAddToScheme(t *testing.T) {
	s := runtime.NewScheme()
	require.NoError(t, AddToScheme(s))

	for _, gvk := range []schema.GroupVersionKind{
		ecrv1alpha1.RepositoryGroupVersionKind,
		ecrv1alpha1.PullThroughCacheRuleGroupVersionKind,
		ecrv1alpha1.ReplicationConfigurationGroupVersionKind,
		ecrv1alpha1.RepositoryCreationTemplateGroupVersionKind,
	} {
		assert.True(t, s.Recognizes(gvk), "%s not registered", gvk)
		assert.True(t, s.Recognizes(gvk.GroupVersion().WithKind(gvk.Kind+"List")), "%sList not registered", gvk.Kind)
	}
}
