package domain

// Role identifies which views a session user may see.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleShopOwner Role = "shop_owner"
	RoleCustomer  Role = "customer"
)

var validRoles = map[Role]bool{
	RoleAdmin:     true,
	RoleShopOwner: true,
	RoleCustomer:  true,
}

// ValidRole returns true if r is one of the three known roles.
func ValidRole(r Role) bool {
	return validRoles[r]
}

// RoleOrDefault maps a backend role string onto a known Role.
// Unknown or absent roles collapse to customer.
func RoleOrDefault(s string) Role {
	r := Role(s)
	if !validRoles[r] {
		return RoleCustomer
	}
	return r
}

// User is the canonical session user. It is built by normalizing either
// an auth endpoint response or decoded token claims, and is only ever
// replaced wholesale, never patched field by field.
type User struct {
	ID        string
	Email     string
	Username  string
	FirstName string
	LastName  string
	Role      Role
	Token     string
	Phone     string
	Shop      *ShopRef
}

// ShopRef is the shop scoped to a shop-owner session.
type ShopRef struct {
	ID   string
	Name string
}
