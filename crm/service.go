package crm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Mailer delivers outbound mail. The default implementation only logs; real
// delivery is a collaborator concern.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type logMailer struct {
	logger *slog.Logger
}

func (m logMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Info("email_send_simulated", "to", to, "subject", subject)
	return nil
}

type ServiceOptions struct {
	// AutoProvisionAccounts materializes an account row on first write for an
	// unknown account id. When false, writes for unknown accounts are rejected.
	AutoProvisionAccounts bool
	Mailer                Mailer
	Logger                *slog.Logger
	Now                   func() time.Time
}

// Service implements the record operations. Every method scopes its statements
// to the calling account id; cross-account access is rejected by the filters,
// not by callers remembering to check.
type Service struct {
	db            *gorm.DB
	logger        *slog.Logger
	mailer        Mailer
	now           func() time.Time
	autoProvision bool
}

func NewService(gdb *gorm.DB) *Service {
	return NewServiceWithOptions(gdb, ServiceOptions{AutoProvisionAccounts: true})
}

func NewServiceWithOptions(gdb *gorm.DB, opts ServiceOptions) *Service {
	opts = normalizeServiceOptions(opts)
	return &Service{
		db:            gdb,
		logger:        opts.Logger,
		mailer:        opts.Mailer,
		now:           opts.Now,
		autoProvision: opts.AutoProvisionAccounts,
	}
}

func normalizeServiceOptions(opts ServiceOptions) ServiceOptions {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Mailer == nil {
		opts.Mailer = logMailer{logger: opts.Logger}
	}
	return opts
}

func (s *Service) ready() error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil crm service")
	}
	return nil
}

func (s *Service) today() string {
	return s.now().Format(dateLayout)
}

// Clock exposes the service's time source so collaborators stay on the same
// clock in tests.
func (s *Service) Clock() func() time.Time {
	return s.now
}

type AccountInput struct {
	ID      string
	Name    string
	Email   string
	Company string
	Phone   string
}

func (s *Service) CreateAccount(ctx context.Context, in AccountInput) (Account, error) {
	if err := s.ready(); err != nil {
		return Account{}, err
	}
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	if in.ID == "" {
		return Account{}, fmt.Errorf("account id is required")
	}
	if in.Name == "" {
		return Account{}, fmt.Errorf("account name is required")
	}
	acct := Account{
		ID:      in.ID,
		Name:    in.Name,
		Email:   strings.TrimSpace(in.Email),
		Company: strings.TrimSpace(in.Company),
		Phone:   strings.TrimSpace(in.Phone),
	}
	if err := s.db.WithContext(ctx).Create(&acct).Error; err != nil {
		return Account{}, fmt.Errorf("create account: %w", err)
	}
	return acct, nil
}

func (s *Service) GetAccount(ctx context.Context, id string) (Account, error) {
	if err := s.ready(); err != nil {
		return Account{}, err
	}
	var acct Account
	err := s.db.WithContext(ctx).Where("id = ?", strings.TrimSpace(id)).First(&acct).Error
	if err == gorm.ErrRecordNotFound {
		return Account{}, notFound("account", id)
	}
	if err != nil {
		return Account{}, err
	}
	return acct, nil
}

// ensureAccount enforces the provisioning policy before a write. With
// auto-provisioning on, an unknown account id gets a minimal row; otherwise the
// write is rejected with a not-found.
func (s *Service) ensureAccount(tx *gorm.DB, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return fmt.Errorf("account id is required")
	}
	var count int64
	if err := tx.Model(&Account{}).Where("id = ?", accountID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if !s.autoProvision {
		return notFound("account", accountID)
	}
	s.logger.Info("account_auto_provisioned", "account_id", accountID)
	return tx.Create(&Account{ID: accountID, Name: accountID}).Error
}

// Snapshot returns the full data dump for one account, for read-only dashboards.
func (s *Service) Snapshot(ctx context.Context, accountID string) (Snapshot, error) {
	if err := s.ready(); err != nil {
		return Snapshot{}, err
	}
	db := s.db.WithContext(ctx)
	snap := Snapshot{
		Contacts:     []Contact{},
		Invoices:     []Invoice{},
		Expenses:     []Expense{},
		Events:       []Event{},
		Interactions: []Interaction{},
		Revenue:      []Revenue{},
	}

	var acct Account
	switch err := db.Where("id = ?", accountID).First(&acct).Error; err {
	case nil:
		snap.Account = &acct
	case gorm.ErrRecordNotFound:
	default:
		return Snapshot{}, err
	}

	if err := db.Where("account_id = ?", accountID).Find(&snap.Contacts).Error; err != nil {
		return Snapshot{}, err
	}
	if err := db.Where("account_id = ?", accountID).Find(&snap.Invoices).Error; err != nil {
		return Snapshot{}, err
	}
	if err := db.Where("account_id = ?", accountID).Find(&snap.Expenses).Error; err != nil {
		return Snapshot{}, err
	}
	if err := db.Where("account_id = ?", accountID).Find(&snap.Events).Error; err != nil {
		return Snapshot{}, err
	}
	if err := db.Where("account_id = ?", accountID).Find(&snap.Interactions).Error; err != nil {
		return Snapshot{}, err
	}
	err := db.
		Joins("JOIN invoice ON invoice.id = revenue.invoice_id").
		Where("invoice.account_id = ?", accountID).
		Find(&snap.Revenue).Error
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
