package response

import (
	"time"

	"hotel-ops/internal/domain/billing"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type InvoiceResponse struct {
	ID              string             `json:"id"`
	ReservationID   string             `json:"reservationId"`
	GuestID         string             `json:"guestId"`
	RoomID          string             `json:"roomId"`
	RoomNumber      string             `json:"roomNumber"`
	CheckIn         time.Time          `json:"checkIn"`
	CheckOut        *time.Time         `json:"checkOut,omitempty"`
	RoomCharges     float64            `json:"roomCharges"`
	ActivityCharges float64            `json:"activityCharges"`
	Tax             float64            `json:"tax"`
	Total           float64            `json:"total"`
	PaymentStatus   string             `json:"paymentStatus"`
	PaymentMethod   *string            `json:"paymentMethod,omitempty"`
	PaymentDate     *time.Time         `json:"paymentDate,omitempty"`
	InvoiceDate     time.Time          `json:"invoiceDate"`
	Items           []LineItemResponse `json:"items"`
}

func FromInvoice(inv billing.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}

	var method *string
	if inv.PaymentMethod != nil {
		m := inv.PaymentMethod.String()
		method = &m
	}

	return InvoiceResponse{
		ID:              inv.ID,
		ReservationID:   inv.ReservationID,
		GuestID:         inv.GuestID,
		RoomID:          inv.RoomID,
		RoomNumber:      inv.RoomNumber,
		CheckIn:         inv.CheckIn,
		CheckOut:        inv.CheckOut,
		RoomCharges:     inv.RoomCharges,
		ActivityCharges: inv.ActivityCharges,
		Tax:             inv.Tax,
		Total:           inv.Total,
		PaymentStatus:   inv.PaymentStatus.String(),
		PaymentMethod:   method,
		PaymentDate:     inv.PaymentDate,
		InvoiceDate:     inv.InvoiceDate,
		Items:           items,
	}
}

func FromInvoices(invoices []billing.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = FromInvoice(inv)
	}
	return out
}

type RevenueResponse struct {
	Revenue float64 `json:"revenue"`
}
