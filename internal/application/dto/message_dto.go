package dto

import "time"

// InquireRequest consulta de un comprador.
type InquireRequest struct {
	Message string `json:"message" validate:"required"`
}

// MessageResponse mensaje de consulta. Buyer solo se incluye al listar los mensajes de un inmueble.
type MessageResponse struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	HomeID    string           `json:"homeId"`
	BuyerID   string           `json:"buyerId"`
	RealtorID string           `json:"realtorId"`
	CreatedAt time.Time        `json:"createdAt"`
	Buyer     *ContactResponse `json:"buyer,omitempty"`
}
