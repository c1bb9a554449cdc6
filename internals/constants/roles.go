package constants

import "fmt"

// Role yang dikenal aplikasi (kolom user_role)
const (
	RoleAdmin    = "admin"
	RoleTesorero = "tesorero" // bendahara club
	RoleComision = "comision"
	RoleProfesor = "profesor"
	RoleSocio    = "socio"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyFinanceCanAccess  = "❌ Hanya admin atau tesorero yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess    = "❌ Hanya staff club yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTesorero,
		RoleComision,
		RoleProfesor,
		RoleSocio,
	}

	// admin + tesorero: akses modul keuangan
	FinanceRoles = []string{
		RoleAdmin,
		RoleTesorero,
	}

	// staff non-socio
	StaffRoles = []string{
		RoleAdmin,
		RoleTesorero,
		RoleComision,
		RoleProfesor,
	}

	// boleh mengelola enrollment aktivitas
	EnrollmentRoles = []string{
		RoleAdmin,
		RoleProfesor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
