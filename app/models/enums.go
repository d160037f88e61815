package models

// LicenseType defines the possible license types for a childcare business.
type LicenseType string

const (
	LicensedCenter      LicenseType = "licensed_center"
	LicensedFamilyHome  LicenseType = "licensed_family_home"
	LicensedGroupHome   LicenseType = "licensed_group_home"
	LicenseExemptHome   LicenseType = "license_exempt_home"
	LicenseExemptCenter LicenseType = "license_exempt_center"
)

// LicenseTypes lists every valid license type, in declaration order.
var LicenseTypes = []LicenseType{
	LicensedCenter,
	LicensedFamilyHome,
	LicensedGroupHome,
	LicenseExemptHome,
	LicenseExemptCenter,
}

// CaseCycleStatus defines the status of a subsidy case cycle.
type CaseCycleStatus string

const (
	CaseCyclePending   CaseCycleStatus = "pending"
	CaseCycleSubmitted CaseCycleStatus = "submitted"
	CaseCycleApproved  CaseCycleStatus = "approved"
	CaseCycleDenied    CaseCycleStatus = "denied"
	CaseCycleExpired   CaseCycleStatus = "expired"
)

// CopayFrequency defines how often a case cycle's copay is due.
type CopayFrequency string

const (
	CopayDaily   CopayFrequency = "daily"
	CopayWeekly  CopayFrequency = "weekly"
	CopayMonthly CopayFrequency = "monthly"
)

// PhoneType defines the kind of phone number a user registered with.
type PhoneType string

const (
	PhoneCell PhoneType = "cell"
	PhoneHome PhoneType = "home"
	PhoneWork PhoneType = "work"
)
