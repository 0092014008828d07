package entity

import "time"

// Message consulta de un comprador sobre un inmueble, dirigida al realtor dueño.
type Message struct {
	ID        string
	Message   string
	HomeID    string
	BuyerID   string
	RealtorID string
	CreatedAt time.Time
}

// MessageWithBuyer mensaje con el contacto público del comprador.
type MessageWithBuyer struct {
	Message
	Buyer Contact
}
