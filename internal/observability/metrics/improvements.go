// Package metrics emits standardised improvement pipeline metrics over a
// StatsD sink.
package metrics

import (
	"time"

	obserrors "github.com/resumelab/resumelab/internal/observability/errors"
	"github.com/resumelab/resumelab/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultDone     = "done"
	ResultFailed   = "failed"
	ResultRequeued = "requeued"
	ResultSkipped  = "skipped"
)

// ImprovementMetric captures details about a processed improvement for
// metric emission.
type ImprovementMetric struct {
	Result   string
	Attempts int
	Duration time.Duration
	Err      error
}

// EmitImprovementOutcome emits the outcome counter and duration timing for
// one processed improvement delivery.
func EmitImprovementOutcome(sink statsd.Sink, in ImprovementMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"result": in.Result,
	}

	if in.Err != nil && in.Result == ResultFailed {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("improvement.outcome", 1, tags)

	if in.Attempts > 0 {
		sink.Gauge("improvement.attempts", float64(in.Attempts), CloneTags(tags))
	}
	if in.Duration > 0 {
		sink.Timing("improvement.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
