package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	k8smetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Sub-resource apply results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	metricAWSAPICalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aws_api_calls_total",
		Help: "Number of API calls to the AWS API",
	}, []string{"service", "operation", "api_version"})

	metricSubresourceApplies = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecr_subresource_applies_total",
		Help: "Number of corrective API calls issued to converge a sub-resource",
	}, []string{"kind", "subresource", "result"})
)

// SetupMetrics will register the known Prometheus metrics with controller-runtime's metrics registry
func SetupMetrics() error {
	for _, c := range []prometheus.Collector{metricAWSAPICalls, metricSubresourceApplies} {
		if err := k8smetrics.Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// IncAWSAPICall will increment the aws_api_calls_total metric for the specified service, operation, and apiVersion tuple
func IncAWSAPICall(service, operation, apiVersion string) {
	metricAWSAPICalls.WithLabelValues(service, operation, apiVersion).Inc()
}

// IncSubresourceApply will increment the ecr_subresource_applies_total metric
// for the supplied kind, sub-resource and result.
func IncSubresourceApply(kind, subresource, result string) {
	metricSubresourceApplies.WithLabelValues(kind, subresource, result).Inc()
}
