package models

// BankDetails is the marketplace settlement account. There is a single
// record for the whole marketplace; viewing and saving it are gated by
// PermViewBankDetails, which only the admin role holds.
type BankDetails struct {
	AccountName   string `json:"account_name" validate:"required,min=2,max=100"`
	BankName      string `json:"bank_name" validate:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" validate:"required,min=6,max=20,numeric"`
	IFSC          string `json:"ifsc" validate:"required,len=11,alphanum"`
	UPI           string `json:"upi,omitempty" validate:"omitempty,min=3,max=100"`
}
