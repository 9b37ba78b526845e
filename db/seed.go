package db

import (
	"fmt"
	"time"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"gorm.io/gorm"
)

const demoAccountID = "demo"

// SeedDemo loads a demo account with realistic sample data. It is idempotent:
// when the demo account already exists nothing is written and seeded=false is
// returned.
func SeedDemo(gdb *gorm.DB) (seeded bool, err error) {
	if gdb == nil {
		return false, fmt.Errorf("nil gorm db")
	}
	var count int64
	if err := gdb.Model(&crm.Account{}).Where("id = ?", demoAccountID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}
	at := func(offset int, clock string) string {
		return day(offset) + " " + clock
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		acct := crm.Account{ID: demoAccountID, Name: "Demo Business", Email: "owner@demo.example", Company: "Demo Business LLC"}
		if err := tx.Create(&acct).Error; err != nil {
			return err
		}

		contacts := []crm.Contact{
			{AccountID: demoAccountID, Name: "John Smith", Email: "john@techcorp.com", Phone: "+1-555-0123", Company: "TechCorp Inc", Notes: "Key decision maker", Status: crm.ContactClient},
			{AccountID: demoAccountID, Name: "Sarah Johnson", Email: "sarah@marketing.com", Phone: "+1-555-0234", Company: "Marketing Ltd", Notes: "CMO prospect", Status: crm.ContactLead},
			{AccountID: demoAccountID, Name: "Michael Brown", Email: "mike@innovate.com", Phone: "+1-555-0345", Company: "Innovate Tech", Notes: "CTO evaluation", Status: crm.ContactProspect},
			{AccountID: demoAccountID, Name: "Lisa Davis", Email: "lisa@global.com", Phone: "+1-555-0456", Company: "Global Corp", Notes: "HR Director", Status: crm.ContactClient},
			{AccountID: demoAccountID, Name: "Robert Wilson", Email: "rob@startup.com", Phone: "+1-555-0567", Company: "Startup Ventures", Notes: "Founder", Status: crm.ContactLead},
			{AccountID: demoAccountID, Name: "David Miller", Email: "david@retail.com", Phone: "+1-555-0789", Company: "Retail Co", Notes: "Operations Manager", Status: crm.ContactClient},
		}
		for i := range contacts {
			if err := tx.Create(&contacts[i]).Error; err != nil {
				return err
			}
		}

		invoices := []crm.Invoice{
			{AccountID: demoAccountID, ContactID: &contacts[0].ID, IssueDate: day(-30), DueDate: day(0), TotalAmount: 15000, Status: crm.InvoicePaid, Notes: "Premium package"},
			{AccountID: demoAccountID, ContactID: &contacts[3].ID, IssueDate: day(-45), DueDate: day(-15), TotalAmount: 8500, Status: crm.InvoicePaid, Notes: "Collaboration tools"},
			{AccountID: demoAccountID, ContactID: &contacts[5].ID, IssueDate: day(-20), DueDate: day(10), TotalAmount: 12000, Status: crm.InvoiceUnpaid, Notes: "Efficiency tools"},
			{AccountID: demoAccountID, ContactID: &contacts[1].ID, IssueDate: day(-10), DueDate: day(20), TotalAmount: 6500, Status: crm.InvoiceUnpaid, Notes: "Marketing package"},
			{AccountID: demoAccountID, ContactID: &contacts[4].ID, IssueDate: day(-5), DueDate: day(25), TotalAmount: 9200, Status: crm.InvoiceUnpaid, Notes: "Startup solution"},
			{AccountID: demoAccountID, ContactID: &contacts[2].ID, IssueDate: day(-60), DueDate: day(-30), TotalAmount: 18500, Status: crm.InvoicePaid, Notes: "Tech implementation"},
		}
		for i := range invoices {
			if err := tx.Create(&invoices[i]).Error; err != nil {
				return err
			}
			if invoices[i].Status == crm.InvoicePaid {
				rev := crm.Revenue{InvoiceID: invoices[i].ID, Amount: invoices[i].TotalAmount, Date: day(0)}
				if err := tx.Create(&rev).Error; err != nil {
					return err
				}
			}
		}

		expenses := []crm.Expense{
			{AccountID: demoAccountID, Amount: 500, Category: "Office Supplies", Description: "Monthly supplies", Date: day(-5)},
			{AccountID: demoAccountID, Amount: 1200, Category: "Software", Description: "License renewal", Date: day(-15)},
			{AccountID: demoAccountID, Amount: 800, Category: "Marketing", Description: "Ad campaign", Date: day(-10)},
			{AccountID: demoAccountID, Amount: 350, Category: "Travel", Description: "Client meetings", Date: day(-20)},
			{AccountID: demoAccountID, Amount: 2500, Category: "Equipment", Description: "New laptops", Date: day(-25)},
			{AccountID: demoAccountID, Amount: 450, Category: "Utilities", Description: "Office utilities", Date: day(-30)},
			{AccountID: demoAccountID, Amount: 1800, Category: "Training", Description: "Team development", Date: day(-35)},
			{AccountID: demoAccountID, Amount: 300, Category: "Communications", Description: "Phone & internet", Date: day(-40)},
		}
		for i := range expenses {
			if err := tx.Create(&expenses[i]).Error; err != nil {
				return err
			}
		}

		events := []crm.Event{
			{AccountID: demoAccountID, ContactID: &contacts[0].ID, Title: "Client Meeting - TechCorp", Date: at(3, "14:00:00"), Description: "Quarterly review", Location: "TechCorp Office"},
			{AccountID: demoAccountID, ContactID: &contacts[1].ID, Title: "Demo - Marketing Solutions", Date: at(7, "10:00:00"), Description: "Product demo", Location: "Online"},
			{AccountID: demoAccountID, ContactID: &contacts[2].ID, Title: "Call - Innovate Tech", Date: at(5, "15:30:00"), Description: "Tech discussion", Location: "Phone"},
			{AccountID: demoAccountID, ContactID: &contacts[3].ID, Title: "Signing - Global Corp", Date: at(10, "11:00:00"), Description: "Contract signing", Location: "Our Office"},
			{AccountID: demoAccountID, Title: "Team Meeting", Date: at(1, "09:00:00"), Description: "Monthly planning", Location: "Conference Room"},
		}
		for i := range events {
			if err := tx.Create(&events[i]).Error; err != nil {
				return err
			}
		}

		interactions := []crm.Interaction{
			{AccountID: demoAccountID, ContactID: contacts[0].ID, Date: day(-2), Type: crm.InteractionCall, Summary: "Discussed quarterly metrics"},
			{AccountID: demoAccountID, ContactID: contacts[1].ID, Date: day(-5), Type: crm.InteractionEmail, Summary: "Sent detailed proposal"},
			{AccountID: demoAccountID, ContactID: contacts[2].ID, Date: day(-7), Type: crm.InteractionMeeting, Summary: "Requirements gathering"},
			{AccountID: demoAccountID, ContactID: contacts[3].ID, Date: day(-3), Type: crm.InteractionCall, Summary: "Contract negotiations"},
			{AccountID: demoAccountID, ContactID: contacts[4].ID, Date: day(-8), Type: crm.InteractionEmail, Summary: "Follow-up consultation"},
			{AccountID: demoAccountID, ContactID: contacts[5].ID, Date: day(-6), Type: crm.InteractionCall, Summary: "Progress update"},
		}
		for i := range interactions {
			if err := tx.Create(&interactions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
