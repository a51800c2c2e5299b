package domain

// User represents an operator of the POS in the domain.
type User struct {
	UserID    string `json:"userID"` // Primary key (UUID)
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AuditFields
}
