package util

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

func SliceIncludes[T comparable](values []T, value T) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Ptr returns a pointer to the given value.
func Ptr[T any](t T) *T {
	return &t
}

func GetHistogramVec(name string, labels ...string) (*prometheus.HistogramVec, error) {
	metrics := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: name,
		Buckets: []float64{
			0.0005,
			0.001, // 1ms
			0.002,
			0.005,
			0.01, // 10ms
			0.02,
			0.05,
			0.1, // 100 ms
			0.2,
			0.5,
			1.0, // 1s
			2.0,
			5.0,
			10.0, // 10s
		},
	}, labels)
	if err := prometheus.Register(metrics); err != nil {
		var registeredErr prometheus.AlreadyRegisteredError
		if ok := errors.As(err, &registeredErr); ok {
			metrics, ok := registeredErr.ExistingCollector.(*prometheus.HistogramVec)
			if ok {
				return metrics, nil
			}
		}
		return nil, fmt.Errorf("register: %w %T", err, err)
	}

	return metrics, nil
}
