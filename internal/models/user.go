package models

// User maps one row of the users table. The password hash never leaves the
// storage layer in JSON form.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Email        string `json:"email" db:"email"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	AuditFields
}
