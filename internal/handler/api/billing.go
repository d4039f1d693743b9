package api

import (
	"errors"
	"net/http"
	"time"

	"hotel-ops/internal/domain/billing"
	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	commands commands.BillingCommands
	queries  queries.BillingQueries
}

func NewBillingHandler(cmds commands.BillingCommands, qs queries.BillingQueries) *BillingHandler {
	return &BillingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Generate invoice
// @Description Freeze a reservation's charges into an invoice; repeat calls return the existing invoice
// @Tags billing
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateInvoiceRequest true "Reservation to invoice"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /billing/invoices [post]
func (h *BillingHandler) GenerateInvoice(c *gin.Context) {
	var req reqdto.GenerateInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inv, err := h.commands.GenerateInvoice(c.Request.Context(), req.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoice(inv))
}

// @Summary Get invoice
// @Description Get invoice by ID
// @Tags billing
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Router /billing/invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	inv, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}

// @Summary List invoices
// @Description List invoices, optionally filtered by guest or payment status
// @Tags billing
// @Produce json
// @Param guestId query string false "Filter by guest ID"
// @Param paymentStatus query string false "Filter by payment status"
// @Success 200 {array} resdto.InvoiceResponse
// @Router /billing/invoices [get]
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	ctx := c.Request.Context()

	var list []billing.Invoice
	switch {
	case c.Query("guestId") != "":
		list = h.queries.ListByGuest(ctx, c.Query("guestId"))
	case c.Query("paymentStatus") != "":
		list = h.queries.ListByPaymentStatus(ctx, billing.PaymentStatus(c.Query("paymentStatus")))
	default:
		list = h.queries.List(ctx)
	}

	c.JSON(http.StatusOK, resdto.FromInvoices(list))
}

// @Summary Process payment
// @Description Settle a pending invoice with the given payment method
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body reqdto.ProcessPaymentRequest true "Payment method"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /billing/invoices/{id}/pay [post]
func (h *BillingHandler) ProcessPayment(c *gin.Context) {
	var req reqdto.ProcessPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inv, err := h.commands.ProcessPayment(c.Request.Context(), c.Param("id"), billing.PaymentMethod(req.PaymentMethod))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment method",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}

// @Summary Revenue report
// @Description Total revenue from paid invoices; narrow with date or a from/to range
// @Tags billing
// @Produce json
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} resdto.RevenueResponse
// @Failure 400 {object} map[string]string
// @Router /billing/revenue [get]
func (h *BillingHandler) Revenue(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.RevenueResponse{Revenue: h.queries.DailyRevenue(ctx, day)})
		return
	}

	if c.Query("from") != "" || c.Query("to") != "" {
		var req reqdto.RevenueRangeRequest
		if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid revenue range",
			})
			return
		}
		// Extend the upper bound to the end of its day so payments made
		// during the "to" day are included.
		to := req.To.Add(24*time.Hour - time.Nanosecond)
		c.JSON(http.StatusOK, resdto.RevenueResponse{Revenue: h.queries.RevenueBetween(ctx, req.From, to)})
		return
	}

	c.JSON(http.StatusOK, resdto.RevenueResponse{Revenue: h.queries.TotalRevenue(ctx)})
}
