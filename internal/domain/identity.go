package domain

// Role роль пользователя из JWT
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Identity аутентифицированный пользователь запроса
type Identity struct {
	ID    int64
	Email string
	Role  Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccessUser returns true if the identity may act on behalf of userID
func (i Identity) CanAccessUser(userID int64) bool {
	return i.ID == userID || i.IsAdmin()
}
