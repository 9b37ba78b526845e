package crm

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Notes   string
	Status  string
}

func (s *Service) CreateContact(ctx context.Context, accountID string, in ContactInput) (Contact, error) {
	if err := s.ready(); err != nil {
		return Contact{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Contact{}, fmt.Errorf("contact name is required")
	}
	contact := Contact{
		AccountID: strings.TrimSpace(accountID),
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Company:   strings.TrimSpace(in.Company),
		Notes:     strings.TrimSpace(in.Notes),
		Status:    NormalizeContactStatus(in.Status),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureAccount(tx, accountID); err != nil {
			return err
		}
		return tx.Create(&contact).Error
	})
	if err != nil {
		return Contact{}, err
	}
	return contact, nil
}

func (s *Service) ListContacts(ctx context.Context, accountID string) ([]Contact, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	contacts := []Contact{}
	err := s.db.WithContext(ctx).
		Where("account_id = ?", strings.TrimSpace(accountID)).
		Order("name").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *Service) GetContact(ctx context.Context, accountID string, id int64) (Contact, error) {
	if err := s.ready(); err != nil {
		return Contact{}, err
	}
	var contact Contact
	err := s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, strings.TrimSpace(accountID)).
		First(&contact).Error
	if err == gorm.ErrRecordNotFound {
		return Contact{}, notFound("contact", id)
	}
	if err != nil {
		return Contact{}, err
	}
	return contact, nil
}

// UpdateContact applies the supplied fields and returns the refreshed record.
// An update with nothing to apply returns ErrNoFields without touching the row.
func (s *Service) UpdateContact(ctx context.Context, accountID string, id int64, upd ContactUpdate) (Contact, error) {
	if err := s.ready(); err != nil {
		return Contact{}, err
	}
	if _, err := s.GetContact(ctx, accountID, id); err != nil {
		return Contact{}, err
	}
	cols := upd.columns()
	if len(cols) == 0 {
		return Contact{}, ErrNoFields
	}
	err := s.db.WithContext(ctx).Model(&Contact{}).
		Where("id = ? AND account_id = ?", id, strings.TrimSpace(accountID)).
		Updates(cols).Error
	if err != nil {
		return Contact{}, fmt.Errorf("update contact: %w", err)
	}
	return s.GetContact(ctx, accountID, id)
}

// FindContactsByName matches a case-insensitive substring of the contact name,
// ordered by name for deterministic candidate lists.
func (s *Service) FindContactsByName(ctx context.Context, accountID, name string) ([]Contact, error) {
	return s.findContacts(ctx, accountID, "name", name)
}

func (s *Service) FindContactsByEmail(ctx context.Context, accountID, email string) ([]Contact, error) {
	return s.findContacts(ctx, accountID, "email", email)
}

func (s *Service) FindContactsByCompany(ctx context.Context, accountID, company string) ([]Contact, error) {
	return s.findContacts(ctx, accountID, "company", company)
}

func (s *Service) findContacts(ctx context.Context, accountID, column, term string) ([]Contact, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	contacts := []Contact{}
	err := s.db.WithContext(ctx).
		Where("account_id = ?", strings.TrimSpace(accountID)).
		Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), "%"+strings.ToLower(strings.TrimSpace(term))+"%").
		Order("name").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
