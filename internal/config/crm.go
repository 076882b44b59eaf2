package config

import "fmt"

// CRMConfig holds sales-workflow configuration.
// It replaces process-wide "sale configuration" defaults: the company
// owning inbound leads and the sales contact notified about them are
// explicit values handed to the lead service.
type CRMConfig struct {
	// CompanyID is the identifier of the company new leads belong to.
	CompanyID string
	// SalesContactEmail receives the internal notice for each new lead.
	SalesContactEmail string
	// DefaultEmployeeID optionally owns newly created leads.
	// Empty means leads start unassigned.
	DefaultEmployeeID string
}

// LoadCRMConfigFromEnv loads CRM configuration from environment variables.
func LoadCRMConfigFromEnv() CRMConfig {
	return CRMConfig{
		CompanyID:         GetEnv("CRM_COMPANY_ID", "default"),
		SalesContactEmail: GetEnv("CRM_SALES_CONTACT_EMAIL", "sales@localhost"),
		DefaultEmployeeID: GetEnv("CRM_DEFAULT_EMPLOYEE_ID", ""),
	}
}

// Validate validates CRM configuration.
func (c CRMConfig) Validate() error {
	if c.CompanyID == "" {
		return fmt.Errorf("CRM company id must not be empty")
	}
	if c.SalesContactEmail == "" {
		return fmt.Errorf("CRM sales contact email must not be empty")
	}
	return nil
}
