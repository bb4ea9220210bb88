package model

import "time"

// HealthMetric is a single measurement recorded for a member, stamped
// with the recording time. Metrics are deleted together with their member.
type HealthMetric struct {
	ID         int64     // health_metrics.metric_id
	MemberID   int64     // health_metrics.member_id
	MetricType string    // health_metrics.metric_type
	Value      float64   // health_metrics.metric_value (2 decimals)
	RecordedAt time.Time // health_metrics.recorded_at
}
