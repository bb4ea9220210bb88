package model

import "time"

// Class is a scheduled group class held by a trainer in a room.
//
// Invariants enforced by the store:
//
//	Capacity > 0
//	Capacity ≤ the room's capacity (capacity triggers)
//	one class per (room, time)
//
// Enrollments are cascade-deleted with the class.
type Class struct {
	ID        int64     // classes.class_id
	TrainerID int64     // classes.trainer_id
	RoomID    int64     // classes.room_id
	Name      string    // classes.class_name
	Time      time.Time // classes.class_time
	Capacity  int       // classes.capacity
}

// ClassListing is a class row annotated with live enrollment numbers for
// the catalog display. Remaining is Capacity minus Enrolled.
type ClassListing struct {
	Class
	TrainerName string // joined from trainers.name
	RoomName    string // joined from rooms.name
	Enrolled    int    // COUNT of class_enrollments rows
	Remaining   int
}

// Full reports whether no spots remain.
func (l ClassListing) Full() bool { return l.Remaining <= 0 }
