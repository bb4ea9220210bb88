package model

// Trainer leads classes and personal-training sessions. A trainer cannot
// be deleted while any class or session still references them.
type Trainer struct {
	ID             int64   // trainers.trainer_id
	Name           string  // trainers.name
	Email          string  // trainers.email (unique)
	Specialization *string // trainers.specialization (nullable)
}
