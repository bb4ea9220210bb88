package model

import "time"

// Member is a registered club member. Members own their fitness goals,
// health metrics, PT sessions and class enrollments; deleting a member
// cascades to all four.
//
// Fields:
//
//	ID          – primary key identifier.
//	Name        – full name.
//	Email       – globally unique contact address.
//	DateOfBirth – optional date of birth (nil if not provided).
//	Gender      – optional free-text gender.
//	Phone       – optional phone number.
type Member struct {
	ID          int64      // members.member_id
	Name        string     // members.name
	Email       string     // members.email (unique)
	DateOfBirth *time.Time // members.date_of_birth (nullable)
	Gender      *string    // members.gender (nullable)
	Phone       *string    // members.phone (nullable)
}
