package model

import "time"

// User is a storefront account as listed by the admin API.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) SearchFields() []string {
	return []string{u.Name, u.Email}
}

func (u User) Attribute(name string) (any, bool) {
	switch name {
	case "role":
		return u.Role, true
	case "createdAt":
		return u.CreatedAt, !u.CreatedAt.IsZero()
	}
	return nil, false
}
