package model

// Admin is an operator account with access to the admin menu. It has no
// relations to the other entities.
//
// PasswordHash holds the stored credential verbatim; the original system
// compares it with plaintext equality and that behaviour is kept.
type Admin struct {
	ID           int64  // admins.admin_id
	Username     string // admins.username (unique)
	PasswordHash string // admins.password_hash
	Name         string // admins.name
	Email        string // admins.email (unique)
}
