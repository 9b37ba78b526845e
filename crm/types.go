package crm

import (
	"strings"
	"time"
)

type ContactStatus string

const (
	ContactLead     ContactStatus = "lead"
	ContactProspect ContactStatus = "prospect"
	ContactClient   ContactStatus = "client"
	ContactInactive ContactStatus = "inactive"
)

// NormalizeContactStatus lowercases the input and falls back to "lead" when the
// value is not in the allow-list. Invalid input is substituted, never rejected.
func NormalizeContactStatus(raw string) ContactStatus {
	switch ContactStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case ContactLead, ContactProspect, ContactClient, ContactInactive:
		return ContactStatus(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return ContactLead
	}
}

type InvoiceStatus string

const (
	InvoiceUnpaid    InvoiceStatus = "unpaid"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

func NormalizeInvoiceStatus(raw string) InvoiceStatus {
	switch InvoiceStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case InvoiceUnpaid, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return InvoiceStatus(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return InvoiceUnpaid
	}
}

type InteractionType string

const (
	InteractionCall    InteractionType = "call"
	InteractionEmail   InteractionType = "email"
	InteractionMeeting InteractionType = "meeting"
	InteractionNote    InteractionType = "note"
)

func NormalizeInteractionType(raw string) InteractionType {
	switch InteractionType(strings.ToLower(strings.TrimSpace(raw))) {
	case InteractionCall, InteractionEmail, InteractionMeeting, InteractionNote:
		return InteractionType(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return InteractionNote
	}
}

// Account is the owning principal for every business record.
type Account struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Account) TableName() string { return "account" }

type Contact struct {
	ID        int64         `gorm:"primaryKey" json:"id"`
	AccountID string        `gorm:"column:account_id;index;not null" json:"account_id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Company   string        `json:"company,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Status    ContactStatus `gorm:"default:lead" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func (Contact) TableName() string { return "contact" }

type Invoice struct {
	ID          int64         `gorm:"primaryKey" json:"id"`
	AccountID   string        `gorm:"column:account_id;index;not null" json:"account_id"`
	ContactID   *int64        `gorm:"index" json:"contact_id,omitempty"`
	IssueDate   string        `json:"issue_date"`
	DueDate     string        `json:"due_date"`
	TotalAmount float64       `gorm:"not null" json:"total_amount"`
	Status      InvoiceStatus `gorm:"not null" json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (Invoice) TableName() string { return "invoice" }

type Revenue struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	InvoiceID int64     `gorm:"index;not null" json:"invoice_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      string    `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (Revenue) TableName() string { return "revenue" }

type Expense struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	AccountID   string    `gorm:"column:account_id;index;not null" json:"account_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description,omitempty"`
	Date        string    `gorm:"not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Expense) TableName() string { return "expense" }

type Event struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	AccountID   string    `gorm:"column:account_id;index;not null" json:"account_id"`
	ContactID   *int64    `gorm:"index" json:"contact_id,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	Date        string    `gorm:"not null" json:"date"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Event) TableName() string { return "event" }

type Interaction struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	AccountID string          `gorm:"column:account_id;index;not null" json:"account_id"`
	ContactID int64           `gorm:"index;not null" json:"contact_id"`
	Date      string          `gorm:"not null" json:"date"`
	Type      InteractionType `gorm:"not null" json:"type"`
	Summary   string          `json:"summary,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Interaction) TableName() string { return "interaction" }

// InvoiceDetail is an invoice joined with its contact's identifying fields.
type InvoiceDetail struct {
	Invoice
	ContactName    string `json:"contact_name,omitempty"`
	ContactCompany string `json:"company,omitempty"`
	ContactEmail   string `json:"email,omitempty"`
}

// EventDetail is an event joined with its contact's identifying fields.
type EventDetail struct {
	Event
	ContactName    string `json:"contact_name,omitempty"`
	ContactCompany string `json:"company,omitempty"`
}

// Snapshot is the full per-account data dump served by the data endpoint.
type Snapshot struct {
	Account      *Account      `json:"account"`
	Contacts     []Contact     `json:"contacts"`
	Invoices     []Invoice     `json:"invoices"`
	Expenses     []Expense     `json:"expenses"`
	Events       []Event       `json:"events"`
	Interactions []Interaction `json:"interactions"`
	Revenue      []Revenue     `json:"revenue"`
}
