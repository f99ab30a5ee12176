package domain

// User is the authenticated operator, one per session. The business profile
// fields back GST compliance documents.
type User struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	IsPaymentOnboarded bool   `json:"is_payment_onboarded"`
	BusinessName       string `json:"business_name,omitempty"`
	GSTIN              string `json:"gstin,omitempty"`
	BusinessAddress    string `json:"business_address,omitempty"`
}

// VirtualAccount is a per-currency receiving bank account provisioned for a
// user to collect foreign payments. One per (user, currency) pair.
type VirtualAccount struct {
	ID            int64  `json:"id"`
	Currency      string `json:"currency"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	RoutingCode   string `json:"routing_code"`
	Provider      string `json:"provider"`
}
