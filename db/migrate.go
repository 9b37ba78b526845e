package db

import (
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"gorm.io/gorm"
)

func AutoMigrate(gdb *gorm.DB) error {
	if gdb == nil {
		return fmt.Errorf("nil gorm db")
	}
	return gdb.AutoMigrate(
		&crm.Account{},
		&crm.Contact{},
		&crm.Invoice{},
		&crm.Revenue{},
		&crm.Expense{},
		&crm.Event{},
		&crm.Interaction{},
	)
}
