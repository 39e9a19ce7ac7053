package client

import "github.com/smartshop/shopdeck/pkg/domain"

// userPayload is the snake_case user object returned by the auth endpoints.
type userPayload struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Username  string       `json:"username"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Role      string       `json:"role"`
	Phone     string       `json:"phone,omitempty"`
	Shop      *shopPayload `json:"shop,omitempty"`
}

type shopPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// normalizeUser maps the backend user shape onto the canonical session
// user. Field table:
//
//	id         -> ID
//	email      -> Email
//	username   -> Username
//	first_name -> FirstName
//	last_name  -> LastName
//	role       -> Role (absent/unknown collapses to customer)
//	phone      -> Phone
//	shop       -> Shop
//
// The token is attached as-is; it never comes from the profile body.
func normalizeUser(p userPayload, token string) *domain.User {
	u := &domain.User{
		ID:        p.ID,
		Email:     p.Email,
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      domain.RoleOrDefault(p.Role),
		Token:     token,
		Phone:     p.Phone,
	}
	if p.Shop != nil {
		u.Shop = &domain.ShopRef{ID: p.Shop.ID, Name: p.Shop.Name}
	}
	return u
}
