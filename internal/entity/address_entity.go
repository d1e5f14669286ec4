package entity

import "time"

type Address struct {
	Id        uint
	Street    string
	City      string
	PostCode  string
	Country   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// AddressRole names the slot an address occupies on an invoice. Used in
// integrity failures so the message points at the offending reference.
type AddressRole string

const (
	AddressRoleSender AddressRole = "sender address"
	AddressRoleClient AddressRole = "client address"
)
