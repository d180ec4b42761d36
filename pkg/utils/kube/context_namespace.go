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

// Package kube holds helpers about the cluster the provider runs in.
package kube

import (
	"os"
	"strings"
)

const (
	fileServiceAccountNamespace = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"
	environPodNamespace         = "POD_NAMESPACE"
	defaultNamespace            = "crossplane-system"
)

// GetProviderNamespace returns the namespace the provider runs in. It holds
// the cross-account role map and the default credentials secret. The
// namespace is taken from the POD_NAMESPACE environment variable, then from
// the service account, and defaults to crossplane-system.
func GetProviderNamespace() string {
	return providerNamespace(os.Getenv, os.ReadFile)
}

func providerNamespace(getenv func(string) string, readFile func(string) ([]byte, error)) string {
	if podNs := getenv(environPodNamespace); podNs != "" {
		return podNs
	}
	saNsRaw, err := readFile(fileServiceAccountNamespace)
	if saNs := strings.TrimSpace(string(saNsRaw)); err == nil && saNs != "" {
		return saNs
	}
	return defaultNamespace
}
