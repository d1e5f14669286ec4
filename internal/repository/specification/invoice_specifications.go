package specification

import "gorm.io/gorm"

// ByInvoiceID filters line items by their owning invoice
type ByInvoiceID struct {
	InvoiceID uint
}

func (s ByInvoiceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("invoice_id = ?", s.InvoiceID)
}

// ByStatus filters invoices on the status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ReferencingAddress matches invoices that point at the address in either
// the sender or the client slot.
type ReferencingAddress struct {
	AddressID uint
}

func (s ReferencingAddress) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_address_id = ? OR client_address_id = ?", s.AddressID, s.AddressID)
}
