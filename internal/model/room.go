package model

// Room is a physical space classes run in. Capacity must be positive and
// caps the capacity of every class scheduled in the room. A room cannot
// be deleted while a class references it.
type Room struct {
	ID       int64  // rooms.room_id
	Name     string // rooms.name (unique)
	Capacity int    // rooms.capacity (> 0)
}
