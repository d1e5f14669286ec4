package dto

type CleanupAddressesResponse struct {
	DeletedCount int `json:"deleted_count"`
}
