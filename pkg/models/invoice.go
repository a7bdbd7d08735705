package models

import "time"

// InvoiceStatus is the lifecycle state of an invoice record.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusFinalized InvoiceStatus = "finalized"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
	StatusStorno    InvoiceStatus = "storno"
)

// InvoiceItem is a single billed line. Total is the computed line total
// (quantity * unit price, less discount); on a Storno record quantity and
// total carry the sign reversal while the unit price stays unchanged.
type InvoiceItem struct {
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
	Total           float64 `json:"total"`
	TaxRate         float64 `json:"taxRate,omitempty"`
}

// ReverseChargeInfo carries the recipient data a reverse-charge invoice
// must show (§ 13b / § 18b UStG).
type ReverseChargeInfo struct {
	CustomerVatID string `json:"customerVatId"`
	CountryCode   string `json:"countryCode"` // EU country code, e.g. "AT"
}

// BankDetails are the payment coordinates printed on the invoice.
type BankDetails struct {
	AccountHolder string `json:"accountHolder"`
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
	BankName      string `json:"bankName"`
}

// InvoiceRecord is the financial document under computation. The shape
// mirrors the persisted document record; this core never talks to the
// store itself.
type InvoiceRecord struct {
	ID               string        `json:"id"`
	TenantID         string        `json:"tenantId"`
	InvoiceNumber    string        `json:"invoiceNumber"`    // formatted, e.g. R-2025-007
	SequentialNumber int           `json:"sequentialNumber"` // gap-free per tenant and year
	Subject          string        `json:"subject"`
	Status           InvoiceStatus `json:"status"`

	IssueDate time.Time `json:"issueDate"`
	DueDate   time.Time `json:"dueDate"`

	CompanyName      string `json:"companyName"`
	CompanyAddress   string `json:"companyAddress"`
	CompanyTaxNumber string `json:"companyTaxNumber,omitempty"`
	CompanyVatID     string `json:"companyVatId,omitempty"`

	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerEmail   string `json:"customerEmail,omitempty"`

	Items []InvoiceItem `json:"items"`

	// Aggregates; Amount + Tax == Total within 2-decimal rounding.
	Amount float64 `json:"amount"` // net
	Tax    float64 `json:"tax"`
	Total  float64 `json:"total"` // gross

	IsSmallBusiness bool               `json:"isSmallBusiness"`
	TaxRuleType     TaxRuleType        `json:"taxRuleType"`
	TaxDisplayText  string             `json:"taxDisplayText,omitempty"` // legal disclaimer for the regime
	ExemptionReason string             `json:"exemptionReason,omitempty"`
	OSSNote         string             `json:"ossNote,omitempty"`
	ReverseCharge   *ReverseChargeInfo `json:"reverseChargeInfo,omitempty"`

	BankDetails BankDetails `json:"bankDetails"`
	Notes       string      `json:"notes,omitempty"`

	// Storno linkage, populated only when Status is "storno".
	IsStorno          bool      `json:"isStorno,omitempty"`
	OriginalInvoiceID string    `json:"originalInvoiceId,omitempty"`
	StornoReason      string    `json:"stornoReason,omitempty"`
	StornoDate        time.Time `json:"stornoDate,omitzero"`
	StornoBy          string    `json:"stornoBy,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
