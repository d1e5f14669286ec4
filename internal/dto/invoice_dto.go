package dto

import "time"

type AddressPayload struct {
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	PostCode string `json:"post_code" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type InvoiceItemPayload struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Total    float64 `json:"total" validate:"required,gt=0"`
}

type CreateInvoiceRequest struct {
	PaymentDue    string               `json:"payment_due" validate:"required,datetime=2006-01-02"`
	Description   string               `json:"description"`
	PaymentTerms  int                  `json:"payment_terms" validate:"required,gt=0"`
	ClientName    string               `json:"client_name" validate:"required"`
	ClientEmail   string               `json:"client_email" validate:"required,email"`
	Status        string               `json:"status" validate:"omitempty,oneof=draft pending paid"`
	Total         float64              `json:"total" validate:"required,gt=0"`
	SenderAddress AddressPayload       `json:"sender_address" validate:"required"`
	ClientAddress AddressPayload       `json:"client_address" validate:"required"`
	Items         []InvoiceItemPayload `json:"items" validate:"required,min=1,dive"`
}

type CreateInvoiceResponse struct {
	Id              uint `json:"id"`
	SenderAddressId uint `json:"sender_address_id"`
	ClientAddressId uint `json:"client_address_id"`
}

type ListInvoicesRequest struct {
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
	Status    string `query:"status" validate:"omitempty,oneof=draft pending paid"`
	SortBy    string `query:"sort_by" validate:"omitempty,oneof=createdAt paymentDue total"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

type AddressResponse struct {
	Id       uint   `json:"id"`
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"post_code"`
	Country  string `json:"country"`
}

type InvoiceListItem struct {
	Id            uint             `json:"id"`
	PaymentDue    string           `json:"payment_due"`
	ClientName    string           `json:"client_name"`
	Status        string           `json:"status"`
	Total         float64          `json:"total"`
	CreatedAt     time.Time        `json:"created_at"`
	SenderAddress *AddressResponse `json:"sender_address"`
}

type InvoiceItemResponse struct {
	Id        uint    `json:"id"`
	InvoiceId uint    `json:"invoice_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

type InvoiceDetailResponse struct {
	Id            uint                   `json:"id"`
	PaymentDue    string                 `json:"payment_due"`
	Description   string                 `json:"description"`
	PaymentTerms  int                    `json:"payment_terms"`
	ClientName    string                 `json:"client_name"`
	ClientEmail   string                 `json:"client_email"`
	Status        string                 `json:"status"`
	Total         float64                `json:"total"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     *time.Time             `json:"updated_at"`
	Items         []*InvoiceItemResponse `json:"items"`
	SenderAddress *AddressResponse       `json:"sender_address"`
	ClientAddress *AddressResponse       `json:"client_address"`
}

type UpdateInvoiceRequest struct {
	Id              uint           `json:"-"`
	Status          *string        `json:"status" validate:"omitempty,oneof=draft pending paid"`
	Description     *string        `json:"description"`
	PaymentTerms    *int           `json:"payment_terms" validate:"omitempty,gt=0"`
	ClientName      *string        `json:"client_name"`
	ClientEmail     *string        `json:"client_email" validate:"omitempty,email"`
	Total           *float64       `json:"total" validate:"omitempty,gt=0"`
	SenderAddressId Optional[uint] `json:"sender_address_id"`
	ClientAddressId Optional[uint] `json:"client_address_id"`
}

type UpdateInvoiceResponse struct {
	Id              uint       `json:"id"`
	PaymentDue      string     `json:"payment_due"`
	Description     string     `json:"description"`
	PaymentTerms    int        `json:"payment_terms"`
	ClientName      string     `json:"client_name"`
	ClientEmail     string     `json:"client_email"`
	Status          string     `json:"status"`
	Total           float64    `json:"total"`
	SenderAddressId *uint      `json:"sender_address_id"`
	ClientAddressId *uint      `json:"client_address_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

type DeleteInvoiceResponse struct {
	Success bool `json:"success"`
}

type AddInvoiceItemRequest struct {
	InvoiceId uint               `json:"-"`
	Item      InvoiceItemPayload `json:"item" validate:"required"`
}
