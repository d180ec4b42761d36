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

// Package errors classifies the errors returned by the ECR API into the
// categories the reconcilers act on.
package errors

import (
	"strings"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// Class is the category of an error.
type Class string

// Error classes.
const (
	// ClassNone is the class of a nil error.
	ClassNone Class = ""
	// ClassNotFound means the external resource does not exist.
	ClassNotFound Class = "NotFound"
	// ClassConflict means the external resource already exists.
	ClassConflict Class = "Conflict"
	// ClassValidation means AWS rejected a payload. The error is retried
	// since the payload may be fixed by a later spec change.
	ClassValidation Class = "ValidationRejected"
	// ClassTransient covers throttling, network and service errors.
	ClassTransient Class = "Transient"
	// ClassTerminal errors are not retried until the resource changes.
	ClassTerminal Class = "Terminal"
)

var (
	notFoundCodes = map[string]bool{
		"RepositoryNotFoundException":           true,
		"LifecyclePolicyNotFoundException":      true,
		"RepositoryPolicyNotFoundException":     true,
		"PullThroughCacheRuleNotFoundException": true,
		"TemplateNotFoundException":             true,
		"RegistryPolicyNotFoundException":       true,
	}
	conflictCodes = map[string]bool{
		"RepositoryAlreadyExistsException":           true,
		"PullThroughCacheRuleAlreadyExistsException": true,
		"TemplateAlreadyExistsException":             true,
	}
	validationCodes = map[string]bool{
		"InvalidParameterException":            true,
		"ValidationException":                  true,
		"InvalidTagParameterException":         true,
		"TooManyTagsException":                 true,
		"LimitExceededException":               true,
		"UnsupportedUpstreamRegistryException": true,
		"SecretNotFoundException":              true,
		"UnableToAccessSecretException":        true,
		"UnableToDecryptSecretValueException":  true,
		"KmsException":                         true,
		"RepositoryNotEmptyException":          true,
		"RepositoryPolicyTooLargeException":    true,
	}
)

// Wrap will remove the request-specific information from the error and only then
// wrap it.
func Wrap(err error, msg string) error {
	// NOTE(muvaf): nil check is done for performance, otherwise errors.As makes
	// a few reflection calls before returning false, letting awsErr be nil.
	if err == nil {
		return nil
	}
	var awsErr smithy.APIError
	if errors.As(err, &awsErr) {
		return errors.Wrap(awsErr, msg)
	}
	return errors.Wrap(err, msg)
}

// Classify returns the Class of the supplied error.
func Classify(err error) Class {
	if err == nil {
		return ClassNone
	}
	if IsTerminal(err) {
		return ClassTerminal
	}
	var awsErr smithy.APIError
	if !errors.As(err, &awsErr) {
		return ClassTransient
	}
	code := awsErr.ErrorCode()
	switch {
	case notFoundCodes[code]:
		return ClassNotFound
	case conflictCodes[code]:
		return ClassConflict
	case validationCodes[code]:
		return ClassValidation
	}
	return ClassTransient
}

// IsNotFound returns true if the error says the external resource does not
// exist.
func IsNotFound(err error) bool {
	return Classify(err) == ClassNotFound
}

// IsConflict returns true if the error says the external resource already
// exists.
func IsConflict(err error) bool {
	return Classify(err) == ClassConflict
}

type terminalError struct {
	error
	reason string
}

func (e *terminalError) Unwrap() error { return e.error }

// NewTerminal marks err as terminal. A terminal error is not retried until
// the resource that caused it changes.
func NewTerminal(err error) error {
	return NewTerminalWithReason("", err)
}

// NewTerminalWithReason marks err as terminal and attaches a machine readable
// reason to it.
func NewTerminalWithReason(reason string, err error) error {
	if err == nil {
		return nil
	}
	return &terminalError{error: err, reason: reason}
}

// Terminalf returns a new terminal error with the supplied message.
func Terminalf(format string, args ...any) error {
	return &terminalError{error: errors.Errorf(format, args...)}
}

// IsTerminal returns true if err, or any error it wraps, is terminal.
func IsTerminal(err error) bool {
	var t *terminalError
	return errors.As(err, &t)
}

// TerminalReason returns the reason of the first terminal error in the
// chain of err, or an empty string.
func TerminalReason(err error) string {
	var t *terminalError
	if !errors.As(err, &t) {
		return ""
	}
	return t.reason
}

type aggregate struct {
	errs []error
}

func (a *aggregate) Error() string {
	msgs := make([]string, 0, len(a.errs))
	for _, e := range a.errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, ", ")
}

func (a *aggregate) Unwrap() []error { return a.errs }

// Combine returns a new error where the message is a comma separated list of
// all given error messages. Every given error stays reachable through
// errors.Is and errors.As.
func Combine(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return &aggregate{errs: errs}
}
