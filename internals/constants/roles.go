package constants

import "fmt"

// Role yang dikenal di seluruh aplikasi (klaim "role" di JWT)
const (
	RoleCustomer = "customer"
	RoleGuide    = "guide"
	RolePartner  = "partner"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

// Template pesan error role
const (
	ErrOnlyGuidesCanAccess    = "❌ Hanya guide, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPartnersCanAccess  = "❌ Hanya partner yang boleh mengakses fitur %s."
	ErrOnlyNonCustomerAccess  = "❌ Hanya role selain 'customer' yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess    = "❌ Hanya owner yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorGuide(feature string) string {
	return fmt.Sprintf(ErrOnlyGuidesCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPartner(feature string) string {
	return fmt.Sprintf(ErrOnlyPartnersCanAccess, feature)
}

func RoleErrorNonCustomer(feature string) string {
	return fmt.Sprintf(ErrOnlyNonCustomerAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleCustomer,
		RoleGuide,
		RolePartner,
		RoleAdmin,
		RoleOwner,
	}

	NonCustomerRoles = []string{
		RoleGuide,
		RolePartner,
		RoleAdmin,
		RoleOwner,
	}

	GuideAndAbove = []string{
		RoleGuide,
		RoleAdmin,
		RoleOwner,
	}

	PartnerAndAbove = []string{
		RolePartner,
		RoleAdmin,
		RoleOwner,
	}

	OwnerAndAbove = []string{
		RoleOwner,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
