package models

// Role identifies what an actor is allowed to do. Roles are serialized as
// stable keys so the presentation layer can localize them independently.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleCustomer   Role = "customer"
	RoleProducer   Role = "producer"
	RoleAdmin      Role = "admin"
	RoleTeamMember Role = "team_member"
)

// AdminUserID is the id of the distinguished, always-verified admin
// account. It lives outside the TeamMember set but is a valid sellerId.
const AdminUserID = "admin"

// User represents the current actor of a session. Exactly one User is
// "current" at a time; nil means unauthenticated (guest).
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	ShopName string `json:"shop_name,omitempty"` // producers only
	Location string `json:"location,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Permission names a role-gated core operation.
type Permission string

const (
	PermAddProduct        Permission = "product:add"
	PermDeleteProduct     Permission = "product:delete"
	PermUpdateOrderStatus Permission = "order:update_status"
	PermApproveArtisan    Permission = "artisan:approve"
	PermDeleteArtisan     Permission = "artisan:delete"
	PermVerifyTeamMember  Permission = "team:verify"
	PermViewTeam          Permission = "team:view"
	PermViewBankDetails   Permission = "bank:view"
)

// rolePermissions is the single source of truth for authorization. The
// HTTP layer may hide controls as an affordance, but every service checks
// this table before mutating anything.
var rolePermissions = map[Role]map[Permission]bool{
	RoleProducer: {
		PermAddProduct: true,
	},
	RoleTeamMember: {
		PermUpdateOrderStatus: true,
		PermViewTeam:          true,
	},
	RoleAdmin: {
		PermAddProduct:        true,
		PermDeleteProduct:     true,
		PermUpdateOrderStatus: true,
		PermApproveArtisan:    true,
		PermDeleteArtisan:     true,
		PermVerifyTeamMember:  true,
		PermViewTeam:          true,
		PermViewBankDetails:   true,
	},
}

// Can reports whether the role holds the permission. Unknown roles
// (including guest) hold none.
func (r Role) Can(p Permission) bool {
	return rolePermissions[r][p]
}

// ActorCan is a nil-safe permission check for the current actor.
func ActorCan(u *User, p Permission) bool {
	if u == nil {
		return false
	}
	return u.Role.Can(p)
}
