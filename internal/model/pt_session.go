package model

import "time"

// SessionStatusScheduled is the status every new PT session starts in.
const SessionStatusScheduled = "scheduled"

// PTSession is a one-on-one personal-training booking between a member
// and a trainer. A trainer cannot hold two sessions at the same instant
// (unique on trainer + time).
type PTSession struct {
	ID         int64     // pt_sessions.session_id
	MemberID   int64     // pt_sessions.member_id
	TrainerID  int64     // pt_sessions.trainer_id
	Time       time.Time // pt_sessions.session_time
	Status     string    // pt_sessions.status
	MemberName string    // joined from members.name for schedule display
}
