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

package main

import (
	"os"
	"path/filepath"
	"time"

	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	xpcontroller "github.com/crossplane/crossplane-runtime/pkg/controller"
	"github.com/crossplane/crossplane-runtime/pkg/logging"
	"github.com/crossplane/crossplane-runtime/pkg/ratelimiter"
	uzap "go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/crossplane-contrib/provider-aws-ecr/apis"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/controller"
	connectaws "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/connect/aws"
	utilscontroller "github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/controller"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/kube"
	"github.com/crossplane-contrib/provider-aws-ecr/pkg/utils/metrics"
)

func main() {
	var (
		app                   = kingpin.New(filepath.Base(os.Args[0]), "AWS ECR support for Crossplane.").DefaultEnvars()
		debug                 = app.Flag("debug", "Run with debug logging.").Short('d').Bool()
		syncInterval          = app.Flag("sync", "Sync interval controls how often all resources will be double checked for drift.").Short('s').Default("1h").Duration()
		pollInterval          = app.Flag("poll", "Poll interval controls how often an individual resource should be checked for drift.").Default("1m").Duration()
		pollJitter            = app.Flag("poll-jitter", "Upper bound of the random delay added to the poll interval of every resource.").Default("30s").Duration()
		timeout               = app.Flag("timeout", "Upper bound of the AWS calls of a single reconciliation.").Default("2m").Duration()
		leaderElection        = app.Flag("leader-election", "Use leader election for the controller manager.").Short('l').Default("false").OverrideDefaultFromEnvar("LEADER_ELECTION").Bool()
		maxReconcileRate      = app.Flag("max-reconcile-rate", "The global maximum rate per second at which resources may checked for drift from the desired state.").Default("10").Int()
		metricsAddress        = app.Flag("metrics-bind-address", "The address the metric endpoint binds to.").Default(":8080").String()
		endpoint              = app.Flag("endpoint", "Custom ECR endpoint, e.g. a localstack URL.").String()
		credentialsNamespace  = app.Flag("credentials-secret-namespace", "Namespace of the Secret holding INI formatted AWS credentials. Defaults to the provider namespace.").String()
		credentialsName       = app.Flag("credentials-secret-name", "Name of the Secret holding INI formatted AWS credentials. The pod's credentials are used when empty.").String()
		credentialsKey        = app.Flag("credentials-secret-key", "Key of the credentials in the Secret.").Default("credentials").String()
		credentialsProfile    = app.Flag("credentials-profile", "Profile of the INI formatted AWS credentials.").Default(connectaws.DefaultSection).String()
		controllerOptionsFile = app.Flag("controller-options-file", "YAML file of per controller option overrides, e.g. ecr.repository.pollInterval: 5m.").ExistingFile()
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	zl := zap.New(zap.UseDevMode(*debug), zap.RawZapOpts(uzap.AddCaller()))
	log := logging.NewLogrLogger(zl.WithName("provider-aws-ecr"))
	if *debug {
		// The controller-runtime runs with a no-op logger by default. It is
		// *very* verbose even at info level, so we only provide it a real
		// logger when we're running in debug mode.
		ctrl.SetLogger(zl)
	}

	log.Debug("Starting", "sync-period", syncInterval.String(), "poll-interval", pollInterval.String())

	cfg, err := ctrl.GetConfig()
	kingpin.FatalIfError(err, "Cannot get API server rest config")

	mgr, err := ctrl.NewManager(cfg, ctrl.Options{
		LeaderElection:   *leaderElection,
		LeaderElectionID: "crossplane-leader-election-provider-aws-ecr",
		Cache:            cache.Options{SyncPeriod: syncInterval},
		Metrics:          metricsserver.Options{BindAddress: *metricsAddress},
	})
	kingpin.FatalIfError(err, "Cannot create controller manager")
	kingpin.FatalIfError(metrics.SetupMetrics(), "Cannot register metrics")

	providerNamespace := kube.GetProviderNamespace()
	resolverOptions := connectaws.Options{
		Endpoint:          *endpoint,
		Profile:           *credentialsProfile,
		ProviderNamespace: providerNamespace,
	}
	if *credentialsName != "" {
		ns := *credentialsNamespace
		if ns == "" {
			ns = providerNamespace
		}
		resolverOptions.CredentialsSecret = &xpv1.SecretKeySelector{
			SecretReference: xpv1.SecretReference{Namespace: ns, Name: *credentialsName},
			Key:             *credentialsKey,
		}
	}

	o := utilscontroller.NewOptionsSet(utilscontroller.Options{
		Options: xpcontroller.Options{
			Logger:                  log,
			MaxConcurrentReconciles: *maxReconcileRate,
			PollInterval:            *pollInterval,
			GlobalRateLimiter:       ratelimiter.NewGlobal(*maxReconcileRate),
		},
		PollIntervalJitter: *pollJitter,
		Timeout:            *timeout,
		AWSConfig:          connectaws.NewResolver(mgr.GetClient(), resolverOptions).Config,
	})
	if *controllerOptionsFile != "" {
		data, err := os.ReadFile(*controllerOptionsFile)
		kingpin.FatalIfError(err, "Cannot read controller options file")
		kingpin.FatalIfError(o.AddOverridesYAML(data), "Cannot parse controller options file")
	}
	log.Debug("Controller options", "default-timeout", o.Default().Timeout.String(), "started", time.Now().Format(time.RFC3339))

	kingpin.FatalIfError(apis.AddToScheme(mgr.GetScheme()), "Cannot add ECR APIs to scheme")
	kingpin.FatalIfError(controller.Setup(mgr, o), "Cannot setup ECR controllers")
	kingpin.FatalIfError(mgr.Start(ctrl.SetupSignalHandler()), "Cannot start controller manager")
}
