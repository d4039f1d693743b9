package request

import "time"

type GenerateInvoiceRequest struct {
	ReservationID string `json:"reservationId" binding:"required"`
}

type ProcessPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type RevenueRangeRequest struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}
