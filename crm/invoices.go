package crm

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const invoiceDetailSelect = "invoice.*, contact.name AS contact_name, contact.company AS contact_company, contact.email AS contact_email"

type InvoiceInput struct {
	ContactID   int64
	IssueDate   string
	DueDate     string
	TotalAmount float64
	Status      string
	Notes       string
}

func (s *Service) CreateInvoice(ctx context.Context, accountID string, in InvoiceInput) (InvoiceDetail, error) {
	if err := s.ready(); err != nil {
		return InvoiceDetail{}, err
	}
	if in.TotalAmount < 0 {
		return InvoiceDetail{}, fmt.Errorf("total amount must not be negative")
	}
	issueDate := strings.TrimSpace(in.IssueDate)
	if issueDate == "" {
		issueDate = s.today()
	}
	dueDate := strings.TrimSpace(in.DueDate)
	if dueDate == "" {
		dueDate = s.today()
	}

	var detail InvoiceDetail
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
		contactID := in.ContactID
		invoice := Invoice{
			AccountID:   strings.TrimSpace(accountID),
			ContactID:   &contactID,
			IssueDate:   issueDate,
			DueDate:     dueDate,
			TotalAmount: in.TotalAmount,
			Status:      NormalizeInvoiceStatus(in.Status),
			Notes:       strings.TrimSpace(in.Notes),
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}
		detail = InvoiceDetail{
			Invoice:        invoice,
			ContactName:    contact.Name,
			ContactCompany: contact.Company,
			ContactEmail:   contact.Email,
		}
		return nil
	})
	if err != nil {
		return InvoiceDetail{}, err
	}
	return detail, nil
}

func (s *Service) GetInvoice(ctx context.Context, accountID string, id int64) (InvoiceDetail, error) {
	if err := s.ready(); err != nil {
		return InvoiceDetail{}, err
	}
	var detail InvoiceDetail
	err := s.db.WithContext(ctx).Table("invoice").
		Select(invoiceDetailSelect).
		Joins("LEFT JOIN contact ON contact.id = invoice.contact_id").
		Where("invoice.id = ? AND invoice.account_id = ?", id, strings.TrimSpace(accountID)).
		Take(&detail).Error
	if err == gorm.ErrRecordNotFound {
		return InvoiceDetail{}, notFound("invoice", id)
	}
	if err != nil {
		return InvoiceDetail{}, err
	}
	return detail, nil
}

func (s *Service) UpdateInvoice(ctx context.Context, accountID string, id int64, upd InvoiceUpdate) (Invoice, error) {
	if err := s.ready(); err != nil {
		return Invoice{}, err
	}
	var invoice Invoice
	err := s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, strings.TrimSpace(accountID)).
		First(&invoice).Error
	if err == gorm.ErrRecordNotFound {
		return Invoice{}, notFound("invoice", id)
	}
	if err != nil {
		return Invoice{}, err
	}
	cols := upd.columns()
	if len(cols) == 0 {
		return Invoice{}, ErrNoFields
	}
	err = s.db.WithContext(ctx).Model(&Invoice{}).
		Where("id = ? AND account_id = ?", id, strings.TrimSpace(accountID)).
		Updates(cols).Error
	if err != nil {
		return Invoice{}, fmt.Errorf("update invoice: %w", err)
	}
	err = s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, strings.TrimSpace(accountID)).
		First(&invoice).Error
	return invoice, err
}

// MarkInvoicePaid flips the status to paid and records the matching revenue row,
// dated now, in one transaction. The flip is a conditional update so that two
// racing calls cannot both observe unpaid and insert twice; the second call gets
// ErrAlreadyPaid. The revenue insert is skipped when a row already exists.
func (s *Service) MarkInvoicePaid(ctx context.Context, accountID string, id int64) (Invoice, error) {
	if err := s.ready(); err != nil {
		return Invoice{}, err
	}
	var invoice Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND account_id = ?", id, strings.TrimSpace(accountID)).
			First(&invoice).Error
		if err == gorm.ErrRecordNotFound {
			return notFound("invoice", id)
		}
		if err != nil {
			return err
		}
		res := tx.Model(&Invoice{}).
			Where("id = ? AND status <> ?", id, InvoicePaid).
			Update("status", InvoicePaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyPaid
		}
		invoice.Status = InvoicePaid

		var existing int64
		if err := tx.Model(&Revenue{}).Where("invoice_id = ?", id).Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			rev := Revenue{InvoiceID: id, Amount: invoice.TotalAmount, Date: s.today()}
			if err := tx.Create(&rev).Error; err != nil {
				return fmt.Errorf("record revenue: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Invoice{}, err
	}
	return invoice, nil
}

func (s *Service) FindInvoicesByContactName(ctx context.Context, accountID, contactName string) ([]InvoiceDetail, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	invoices := []InvoiceDetail{}
	err := s.db.WithContext(ctx).Table("invoice").
		Select(invoiceDetailSelect).
		Joins("JOIN contact ON contact.id = invoice.contact_id").
		Where("invoice.account_id = ?", strings.TrimSpace(accountID)).
		Where("LOWER(contact.name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(contactName))+"%").
		Order("invoice.issue_date DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *Service) FindInvoicesByStatus(ctx context.Context, accountID, status string) ([]InvoiceDetail, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	invoices := []InvoiceDetail{}
	err := s.db.WithContext(ctx).Table("invoice").
		Select(invoiceDetailSelect).
		Joins("LEFT JOIN contact ON contact.id = invoice.contact_id").
		Where("invoice.account_id = ? AND invoice.status = ?",
			strings.TrimSpace(accountID), strings.ToLower(strings.TrimSpace(status))).
		Order("invoice.due_date ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
