package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/clubops/fitclub/internal/model"
)

// MetricRepo provides methods over health metrics, including the
// latest-metric read through the member_health_summary view.
type MetricRepo struct {
	db *sql.DB
}

// NewMetricRepo constructs a MetricRepo with the given DB handle.
func NewMetricRepo(db *sql.DB) *MetricRepo {
	return &MetricRepo{db: db}
}

// Create records a metric stamped with the given time and sets its ID.
func (r *MetricRepo) Create(ctx context.Context, m *model.HealthMetric, at time.Time) error {
	const q = `INSERT INTO health_metrics (member_id, metric_type, metric_value, recorded_at)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.MemberID, m.MetricType, m.Value, at)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	m.RecordedAt = at
	return nil
}

// LatestByMember returns the member's most recent metric via the
// member_health_summary view. It returns (nil, nil) when the member has
// no metrics yet, which the view reports as NULL metric columns, and
// sql.ErrNoRows when the member does not appear in the view at all.
func (r *MetricRepo) LatestByMember(ctx context.Context, memberID int64) (*model.HealthMetric, error) {
	const q = `SELECT metric_type, metric_value, last_metric_time
	           FROM member_health_summary WHERE member_id = ?`
	var (
		metricType sql.NullString
		value      sql.NullFloat64
		at         any
	)
	if err := r.db.QueryRowContext(ctx, q, memberID).Scan(&metricType, &value, &at); err != nil {
		return nil, err
	}
	if !metricType.Valid {
		return nil, nil
	}
	return &model.HealthMetric{
		MemberID:   memberID,
		MetricType: metricType.String,
		Value:      value.Float64,
		RecordedAt: parseDBTime(at),
	}, nil
}

// View columns can lose their declared type, so the timestamp may come
// back as time.Time or as raw text depending on the driver. Normalize
// both; an unrecognized value yields the zero time rather than an error.
func parseDBTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		return parseDBTimeString(t)
	case []byte:
		return parseDBTimeString(string(t))
	}
	return time.Time{}
}

func parseDBTimeString(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
