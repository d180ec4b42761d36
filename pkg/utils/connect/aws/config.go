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

package connectaws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go/middleware"
	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/metrics"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/version"
)

// DefaultSection for INI files.
const DefaultSection = ini.DefaultSection

const (
	userAgentKey    = "crossplane-provider-aws-ecr"
	roleSessionName = "crossplane-provider-aws-ecr"

	errGetCredentialsSecret = "cannot get credentials secret"
	errLoadDefaultConfig    = "failed to load default AWS config"
)

// middlewareV2 constructs the AWS SDK v2 middleware
var middlewareV2 = config.WithAPIOptions([]func(*middleware.Stack) error{
	awsmiddleware.AddUserAgentKeyValue(userAgentKey, version.Version),
	func(s *middleware.Stack) error {
		return s.Finalize.Add(recordRequestMetrics, middleware.After)
	},
})

// recordRequestMetrics records Prometheus metrics for requests to the AWS APIs
var recordRequestMetrics = middleware.FinalizeMiddlewareFunc("recordRequestMetrics", func(ctx context.Context, in middleware.FinalizeInput, next middleware.FinalizeHandler) (middleware.FinalizeOutput, middleware.Metadata, error) {
	metrics.IncAWSAPICall(awsmiddleware.GetServiceID(ctx), awsmiddleware.GetOperationName(ctx), "2")
	return next.HandleFinalize(ctx, in)
})

var (
	muV2            sync.Mutex
	defaultConfigV2 *aws.Config
)

// CredentialsIDSecret retrieves AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY from the data which contains
// aws credentials under given profile
// Example:
// [default]
// aws_access_key_id = <YOUR_ACCESS_KEY_ID>
// aws_secret_access_key = <YOUR_SECRET_ACCESS_KEY>
func CredentialsIDSecret(data []byte, profile string) (aws.Credentials, error) {
	config, err := ini.InsensitiveLoad(data)
	if err != nil {
		return aws.Credentials{}, errors.Wrap(err, "cannot parse credentials secret")
	}

	iniProfile, err := config.GetSection(profile)
	if err != nil {
		return aws.Credentials{}, errors.Wrap(err, fmt.Sprintf("cannot get %s profile in credentials secret", profile))
	}

	accessKeyID := iniProfile.Key("aws_access_key_id")
	secretAccessKey := iniProfile.Key("aws_secret_access_key")
	sessionToken := iniProfile.Key("aws_session_token")

	// NOTE(muvaf): Key function implementation never returns nil but still its
	// type is pointer so we check to make sure its next versions doesn't break
	// that implicit contract.
	if accessKeyID == nil || secretAccessKey == nil || sessionToken == nil {
		return aws.Credentials{}, errors.New("returned key can be empty but cannot be nil")
	}
	if accessKeyID.Value() == "" || secretAccessKey.Value() == "" {
		return aws.Credentials{}, errors.Errorf("%s profile in credentials secret has no access key", profile)
	}

	return aws.Credentials{
		AccessKeyID:     accessKeyID.Value(),
		SecretAccessKey: secretAccessKey.Value(),
		SessionToken:    sessionToken.Value(),
		Source:          "CredentialsSecret",
	}, nil
}

// UseProviderSecret - AWS configuration which can be used to issue requests against AWS API
func UseProviderSecret(ctx context.Context, data []byte, profile, region string) (*aws.Config, error) {
	creds, err := CredentialsIDSecret(data, profile)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse credentials secret")
	}

	config, err := config.LoadDefaultConfig(
		ctx,
		middlewareV2,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: creds,
		}),
	)
	return &config, err
}

// GetDefaultConfigV2 returns a shallow copy of a default SDK
// config. We use this to get a shared credentials cache.
func GetDefaultConfigV2(ctx context.Context) (aws.Config, error) {
	muV2.Lock()
	defer muV2.Unlock()

	if defaultConfigV2 == nil {
		cfg, err := config.LoadDefaultConfig(ctx, middlewareV2)
		if err != nil {
			return aws.Config{}, errors.Wrap(err, errLoadDefaultConfig)
		}
		defaultConfigV2 = &cfg
	}

	return defaultConfigV2.Copy(), nil
}

// UsePodServiceAccount uses the credentials of the pod, for example an IAM
// role configured via a ServiceAccount.
// https://docs.aws.amazon.com/eks/latest/userguide/iam-roles-for-service-accounts.html
func UsePodServiceAccount(ctx context.Context, region string) (*aws.Config, error) {
	cfg, err := GetDefaultConfigV2(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Region = region
	return &cfg, nil
}

// Options configure how a Resolver builds AWS configurations.
type Options struct {
	// Endpoint overrides the ECR endpoint, e.g. to use localstack.
	Endpoint string

	// CredentialsSecret selects an INI credentials file stored in a Secret.
	// The pod's credentials are used when it is nil.
	CredentialsSecret *xpv1.SecretKeySelector

	// Profile is the INI section of the credentials to use.
	Profile string

	// ProviderNamespace holds the role account map.
	ProviderNamespace string
}

// A Resolver builds the AWS configuration used to reconcile a resource. The
// namespace of the resource selects the account the resource lives in.
type Resolver struct {
	kube client.Client
	opts Options

	mu    sync.Mutex
	roles map[roleKey]assumedRole
}

// roleKey identifies the STS client an assumed role is retrieved with.
type roleKey struct {
	roleARN string
	region  string
}

// An assumedRole caches the credentials of a role assumed with the base
// credentials of source.
type assumedRole struct {
	source   string
	provider aws.CredentialsProvider
}

// NewResolver returns a Resolver that reads secrets, namespaces and the role
// account map through the supplied client.
func NewResolver(c client.Client, o Options) *Resolver {
	if o.Profile == "" {
		o.Profile = DefaultSection
	}
	return &Resolver{kube: c, opts: o, roles: map[roleKey]assumedRole{}}
}

// Config returns the AWS configuration for the supplied object in the
// supplied region.
func (r *Resolver) Config(ctx context.Context, o client.Object, region string) (*aws.Config, error) {
	cfg, source, err := r.base(ctx, region)
	if err != nil {
		return nil, err
	}
	roleARN, err := RoleForNamespace(ctx, r.kube, o.GetNamespace(), r.opts.ProviderNamespace)
	if err != nil {
		return nil, err
	}
	if roleARN != "" {
		cfg.Credentials = r.assumeRole(*cfg, source, roleARN)
	}
	if r.opts.Endpoint != "" {
		cfg.BaseEndpoint = aws.String(r.opts.Endpoint)
	}
	return cfg, nil
}

// base returns the configuration built from the provider credentials and a
// string that changes whenever those credentials do.
func (r *Resolver) base(ctx context.Context, region string) (*aws.Config, string, error) {
	ref := r.opts.CredentialsSecret
	if ref == nil {
		cfg, err := UsePodServiceAccount(ctx, region)
		return cfg, "pod", err
	}
	s := &corev1.Secret{}
	if err := r.kube.Get(ctx, types.NamespacedName{Namespace: ref.Namespace, Name: ref.Name}, s); err != nil {
		return nil, "", errors.Wrap(err, errGetCredentialsSecret)
	}
	cfg, err := UseProviderSecret(ctx, s.Data[ref.Key], r.opts.Profile, region)
	return cfg, "secret/" + ref.Namespace + "/" + ref.Name + "@" + s.GetResourceVersion(), err
}

// assumeRole returns a cached credentials provider for roleARN so that the
// assumed credentials are reused until they expire. The cache is per region
// and is replaced when the base credentials change.
func (r *Resolver) assumeRole(cfg aws.Config, source, roleARN string) aws.CredentialsProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := roleKey{roleARN: roleARN, region: cfg.Region}
	if a, ok := r.roles[k]; ok && a.source == source {
		return a.provider
	}
	p := aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), roleARN, func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = roleSessionName
	}))
	r.roles[k] = assumedRole{source: source, provider: p}
	return p
}

// A ConfigFn returns the AWS configuration used to reconcile the supplied
// object in the supplied region.
type ConfigFn func(ctx context.Context, o client.Object, region string) (*aws.Config, error)
