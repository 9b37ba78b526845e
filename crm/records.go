package crm

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// RecordRevenue explicitly records revenue for an invoice. The common path is
// the automatic row from MarkInvoicePaid; an explicit call on top of that gets
// ErrRevenueExists instead of a duplicate.
func (s *Service) RecordRevenue(ctx context.Context, accountID string, invoiceID int64, amount float64, date string) (Revenue, error) {
	if err := s.ready(); err != nil {
		return Revenue{}, err
	}
	if strings.TrimSpace(date) == "" {
		date = s.today()
	}
	var rev Revenue
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Invoice{}).
			Where("id = ? AND account_id = ?", invoiceID, strings.TrimSpace(accountID)).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return notFound("invoice", invoiceID)
		}
		var existing int64
		if err := tx.Model(&Revenue{}).Where("invoice_id = ?", invoiceID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrRevenueExists
		}
		rev = Revenue{InvoiceID: invoiceID, Amount: amount, Date: strings.TrimSpace(date)}
		if err := tx.Create(&rev).Error; err != nil {
			return fmt.Errorf("record revenue: %w", err)
		}
		return nil
	})
	if err != nil {
		return Revenue{}, err
	}
	return rev, nil
}

type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        string
}

func (s *Service) RecordExpense(ctx context.Context, accountID string, in ExpenseInput) (Expense, error) {
	if err := s.ready(); err != nil {
		return Expense{}, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return Expense{}, fmt.Errorf("expense category is required")
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.today()
	}
	expense := Expense{
		AccountID:   strings.TrimSpace(accountID),
		Amount:      in.Amount,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureAccount(tx, accountID); err != nil {
			return err
		}
		return tx.Create(&expense).Error
	})
	if err != nil {
		return Expense{}, err
	}
	return expense, nil
}

type EventInput struct {
	ContactID   *int64
	Title       string
	Date        string
	Description string
	Location    string
}

func (s *Service) CreateEvent(ctx context.Context, accountID string, in EventInput) (EventDetail, error) {
	if err := s.ready(); err != nil {
		return EventDetail{}, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return EventDetail{}, fmt.Errorf("event title is required")
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.now().Format(dateTimeLayout)
	}

	var detail EventDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureAccount(tx, accountID); err != nil {
			return err
		}
		var contactName, contactCompany string
		if in.ContactID != nil {
			var contact Contact
			err := tx.Where("id = ? AND account_id = ?", *in.ContactID, strings.TrimSpace(accountID)).
				First(&contact).Error
			if err == gorm.ErrRecordNotFound {
				return notFound("contact", *in.ContactID)
			}
			if err != nil {
				return err
			}
			contactName = contact.Name
			contactCompany = contact.Company
		}
		event := Event{
			AccountID:   strings.TrimSpace(accountID),
			ContactID:   in.ContactID,
			Title:       title,
			Date:        date,
			Description: strings.TrimSpace(in.Description),
			Location:    strings.TrimSpace(in.Location),
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		detail = EventDetail{Event: event, ContactName: contactName, ContactCompany: contactCompany}
		return nil
	})
	if err != nil {
		return EventDetail{}, err
	}
	return detail, nil
}

// UpcomingEvents lists events at or after the service clock, soonest first.
func (s *Service) UpcomingEvents(ctx context.Context, accountID string) ([]EventDetail, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	events := []EventDetail{}
	err := s.db.WithContext(ctx).Table("event").
		Select("event.*, contact.name AS contact_name, contact.company AS contact_company").
		Joins("LEFT JOIN contact ON contact.id = event.contact_id").
		Where("event.account_id = ? AND event.date >= ?",
			strings.TrimSpace(accountID), s.now().Format(dateTimeLayout)).
		Order("event.date").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

type InteractionInput struct {
	ContactID int64
	Date      string
	Type      string
	Summary   string
}

// LoggedInteraction pairs a stored interaction with the contact's display name.
type LoggedInteraction struct {
	Interaction
	ContactName string `json:"contact_name"`
}

func (s *Service) LogInteraction(ctx context.Context, accountID string, in InteractionInput) (LoggedInteraction, error) {
	if err := s.ready(); err != nil {
		return LoggedInteraction{}, err
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.today()
	}
	var logged LoggedInteraction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureAccount(tx, accountID); err != nil {
			return err
		}
		var contact Contact
		err := tx.Where("id = ? AND account_id = ?", in.ContactID, strings.TrimSpace(accountID)).
			First(&contact).Error
		if err == gorm.ErrRecordNotFound {
			return notFound("contact", in.ContactID)
		}
		if err != nil {
			return err
		}
		interaction := Interaction{
			AccountID: strings.TrimSpace(accountID),
			ContactID: in.ContactID,
			Date:      date,
			Type:      NormalizeInteractionType(in.Type),
			Summary:   strings.TrimSpace(in.Summary),
		}
		if err := tx.Create(&interaction).Error; err != nil {
			return fmt.Errorf("log interaction: %w", err)
		}
		logged = LoggedInteraction{Interaction: interaction, ContactName: contact.Name}
		return nil
	})
	if err != nil {
		return LoggedInteraction{}, err
	}
	return logged, nil
}

// Interactions returns the audit trail for one contact, newest first.
func (s *Service) Interactions(ctx context.Context, accountID string, contactID int64) (Contact, []Interaction, error) {
	if err := s.ready(); err != nil {
		return Contact{}, nil, err
	}
	contact, err := s.GetContact(ctx, accountID, contactID)
	if err != nil {
		return Contact{}, nil, err
	}
	interactions := []Interaction{}
	err = s.db.WithContext(ctx).
		Where("contact_id = ? AND account_id = ?", contactID, strings.TrimSpace(accountID)).
		Order("date DESC").
		Find(&interactions).Error
	if err != nil {
		return Contact{}, nil, err
	}
	return contact, interactions, nil
}

// EmailResult reports a delivered (simulated) email.
type EmailResult struct {
	ContactID   int64  `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
}

// SendEmail delivers through the configured Mailer and appends an interaction
// of type email summarizing the subject line.
func (s *Service) SendEmail(ctx context.Context, accountID string, contactID int64, subject, body string) (EmailResult, error) {
	if err := s.ready(); err != nil {
		return EmailResult{}, err
	}
	contact, err := s.GetContact(ctx, accountID, contactID)
	if err != nil {
		return EmailResult{}, err
	}
	if strings.TrimSpace(contact.Email) == "" {
		return EmailResult{}, fmt.Errorf("%w: %s", ErrNoEmail, contact.Name)
	}
	if err := s.mailer.Send(ctx, contact.Email, subject, body); err != nil {
		return EmailResult{}, fmt.Errorf("send email: %w", err)
	}
	_, err = s.LogInteraction(ctx, accountID, InteractionInput{
		ContactID: contactID,
		Type:      string(InteractionEmail),
		Summary:   "Sent email: " + subject,
	})
	if err != nil {
		return EmailResult{}, err
	}
	return EmailResult{
		ContactID:   contact.ID,
		ContactName: contact.Name,
		Email:       contact.Email,
		Subject:     subject,
	}, nil
}
