package model

import "time"

// ClassEnrollment links a member to a class they signed up for. At most
// one enrollment may exist per (member, class) pair.
type ClassEnrollment struct {
	ID         int64     // class_enrollments.enrollment_id
	MemberID   int64     // class_enrollments.member_id
	ClassID    int64     // class_enrollments.class_id
	EnrolledAt time.Time // class_enrollments.enrollment_date
}
