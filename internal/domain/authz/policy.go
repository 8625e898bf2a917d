package authz

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

type Action string

const (
	ActionProductCreate     Action = "product:create"
	ActionProductSubmit     Action = "product:submit"
	ActionProductApprove    Action = "product:approve"
	ActionProductReject     Action = "product:reject"
	ActionProductToggle     Action = "product:toggle-activation"
	ActionProductEdit       Action = "product:edit"
	ActionProductDelete     Action = "product:delete"
	ActionProductHardDelete Action = "product:hard-delete"

	ActionOrderCreate  Action = "order:create"
	ActionOrderRead    Action = "order:read"
	ActionOrderUpdate  Action = "order:update"
	ActionOrderPayment Action = "order:payment-status"
	ActionOrderCancel  Action = "order:cancel"
	ActionOrderDelete  Action = "order:delete"
	ActionOrderStats   Action = "order:stats"

	ActionDonationCreate  Action = "donation:create"
	ActionDonationRead    Action = "donation:read"
	ActionDonationConfirm Action = "donation:confirm"
	ActionDonationStatus  Action = "donation:update-status"
	ActionDonationDelete  Action = "donation:delete"

	ActionOrgCreate Action = "organization:create"
	ActionOrgVerify Action = "organization:verify"
	ActionOrgReject Action = "organization:reject"
	ActionOrgDelete Action = "organization:delete"

	ActionCategoryWrite Action = "category:write"
	ActionRatingCreate  Action = "rating:create"
	ActionUserUpdate    Action = "user:update"
)

// Actor is the verified identity a request acts as.
type Actor struct {
	ID    uint64
	Email string
	Role  Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// scope says whether a role may perform an action at all, and if so whether
// ownership of the resource is required.
type scope int

const (
	denied scope = iota
	ownerOnly
	any
)

// rules is the whole policy. Admins bypass it (see Can).
var rules = map[Role]map[Action]scope{
	RoleSeller: {
		ActionProductSubmit: ownerOnly,
		ActionProductEdit:   ownerOnly,
		ActionProductDelete: ownerOnly,
		ActionOrderCreate:   any,
		ActionOrderRead:     ownerOnly,
		ActionOrderCancel:   ownerOnly,
		ActionDonationCreate: any,
		ActionDonationRead:   ownerOnly,
		ActionRatingCreate:   any,
		ActionUserUpdate:     ownerOnly,
	},
	RoleCustomer: {
		ActionOrderCreate:    any,
		ActionOrderRead:      ownerOnly,
		ActionOrderCancel:    ownerOnly,
		ActionDonationCreate: any,
		ActionDonationRead:   ownerOnly,
		ActionRatingCreate:   any,
		ActionUserUpdate:     ownerOnly,
	},
}

// Can reports whether role may perform action. isOwner tells the policy
// whether the actor owns the target resource; it is ignored for admins.
func Can(role Role, action Action, isOwner bool) bool {
	if role == RoleAdmin {
		return true
	}
	switch rules[role][action] {
	case any:
		return true
	case ownerOnly:
		return isOwner
	default:
		return false
	}
}
