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
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Condition types in addition to Synced and Ready.
const (
	// TypeTerminal resources hit an error that is not retried until the
	// resource changes.
	TypeTerminal xpv1.ConditionType = "Terminal"

	// TypeAdopted resources were bound to an external resource that existed
	// before they did.
	TypeAdopted xpv1.ConditionType = "Adopted"
)

// Condition reasons.
const (
	ReasonTerminalError xpv1.ConditionReason = "TerminalError"
	ReasonClaimConflict xpv1.ConditionReason = "ClaimConflict"
	ReasonNoError       xpv1.ConditionReason = "NoError"
	ReasonAdopted       xpv1.ConditionReason = "AdoptedExistingResource"
)

// Terminal returns a condition that indicates the resource hit an error that
// will not be retried.
func Terminal(err error) xpv1.Condition {
	return TerminalWithReason(ReasonTerminalError, err)
}

// TerminalWithReason is Terminal with a custom reason.
func TerminalWithReason(r xpv1.ConditionReason, err error) xpv1.Condition {
	return xpv1.Condition{
		Type:               TypeTerminal,
		Status:             corev1.ConditionTrue,
		LastTransitionTime: metav1.Now(),
		Reason:             r,
		Message:            err.Error(),
	}
}

// NotTerminal returns a condition that clears a previous Terminal condition.
func NotTerminal() xpv1.Condition {
	return xpv1.Condition{
		Type:               TypeTerminal,
		Status:             corev1.ConditionFalse,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonNoError,
	}
}

// Adopted returns a condition that indicates the resource was bound to a
// pre-existing external resource.
func Adopted() xpv1.Condition {
	return xpv1.Condition{
		Type:               TypeAdopted,
		Status:             corev1.ConditionTrue,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonAdopted,
	}
}
