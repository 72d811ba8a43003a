package models

// Role determines what an authenticated account may do.
type Role string

// Valid account roles
const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

// Account represents an authenticated user of the catalogue.
type Account struct {
	Email             string `bson:"_id"                json:"email"`
	Role              Role   `bson:"role"               json:"role"`
	OrganizationSiret string `bson:"organization_siret" json:"organization_siret"`
	APIToken          string `bson:"api_token"          json:"-"`
}

// IsAdmin reports whether the account has the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == AdminRole
}

// CanEditDataset reports whether the account may edit or delete the given
// dataset: admins always, other accounts only when they share the owning
// organization's SIRET.
func (a *Account) CanEditDataset(dataset *Dataset) bool {
	if a.IsAdmin() {
		return true
	}
	return a.OrganizationSiret != "" && a.OrganizationSiret == dataset.CatalogRecord.Organization.Siret
}
