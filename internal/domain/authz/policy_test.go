package authz

import "testing"

func TestCan_AdminBypassesEverything(t *testing.T) {
	actions := []Action{
		ActionProductCreate, ActionProductApprove, ActionProductHardDelete,
		ActionOrderDelete, ActionOrderStats,
		ActionDonationConfirm, ActionDonationStatus, ActionDonationDelete,
		ActionOrgCreate, ActionOrgVerify, ActionOrgDelete,
		ActionCategoryWrite,
	}
	for _, a := range actions {
		if !Can(RoleAdmin, a, false) {
			t.Fatalf("admin denied %s", a)
		}
	}
}

func TestCan_SellerOwnershipScopes(t *testing.T) {
	// owner-only actions: allowed with ownership, denied without
	ownerOnly := []Action{ActionProductSubmit, ActionProductEdit, ActionProductDelete, ActionOrderRead, ActionOrderCancel}
	for _, a := range ownerOnly {
		if !Can(RoleSeller, a, true) {
			t.Fatalf("seller owner denied %s", a)
		}
		if Can(RoleSeller, a, false) {
			t.Fatalf("seller non-owner allowed %s", a)
		}
	}

	// any-scope actions work regardless of ownership
	for _, a := range []Action{ActionOrderCreate, ActionDonationCreate, ActionRatingCreate} {
		if !Can(RoleSeller, a, false) {
			t.Fatalf("seller denied %s", a)
		}
	}
}

func TestCan_SellerDeniedAdminActions(t *testing.T) {
	denied := []Action{
		ActionProductCreate, // products are created by admins on the seller's behalf
		ActionProductApprove, ActionProductReject, ActionProductToggle, ActionProductHardDelete,
		ActionOrderPayment, ActionOrderDelete, ActionOrderStats,
		ActionDonationConfirm, ActionDonationStatus, ActionDonationDelete,
		ActionOrgCreate, ActionOrgVerify, ActionOrgReject, ActionOrgDelete,
		ActionCategoryWrite,
	}
	for _, a := range denied {
		if Can(RoleSeller, a, true) {
			t.Fatalf("seller allowed %s even as owner", a)
		}
	}
}

func TestCan_CustomerScopes(t *testing.T) {
	if !Can(RoleCustomer, ActionOrderCreate, false) {
		t.Fatalf("customer cannot create orders")
	}
	if !Can(RoleCustomer, ActionDonationRead, true) {
		t.Fatalf("customer cannot read own donation")
	}
	if Can(RoleCustomer, ActionDonationRead, false) {
		t.Fatalf("customer can read someone else's donation")
	}
	if Can(RoleCustomer, ActionProductSubmit, true) {
		t.Fatalf("customer can submit products")
	}
}

func TestCan_UnknownRoleDenied(t *testing.T) {
	if Can(Role("ghost"), ActionOrderCreate, true) {
		t.Fatalf("unknown role must be denied")
	}
}

func TestActor_IsAdmin(t *testing.T) {
	if !(Actor{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("admin actor not recognized")
	}
	if (Actor{Role: RoleSeller}).IsAdmin() {
		t.Fatalf("seller actor treated as admin")
	}
}
