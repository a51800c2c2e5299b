package mapping

import (
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
)

// ToDomainUser converts a model User to a domain User. The password hash
// deliberately does not cross into the domain type.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Username:    m.Username,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
