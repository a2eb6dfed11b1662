package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/andrewserrazina/friendly-paws-backend/internal/api/dto"
	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/service"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// BookingsHandler manages booking endpoints.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// CreateBooking POST /bookings.
func (h *BookingsHandler) CreateBooking(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClientID == "" || req.PetID == "" || req.Service == "" || req.Date == "" {
		return apperrors.NewValidationError("client_id, pet_id, service, date required", nil)
	}

	booking, err := h.service.CreateBooking(c.Context(), service.BookingCreateInput{
		ClientID: req.ClientID,
		PetID:    req.PetID,
		Service:  req.Service,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": bookingResponse(booking)})
}

// ListBookings GET /bookings.
func (h *BookingsHandler) ListBookings(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	var clientID *string
	if client := c.Query("client_id"); client != "" {
		clientID = &client
	}
	bookings, err := h.service.ListBookings(c.Context(), clientID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetBooking GET /bookings/:id.
func (h *BookingsHandler) GetBooking(c *fiber.Ctx) error {
	booking, err := h.service.GetBooking(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// DeleteBooking DELETE /bookings/:id.
func (h *BookingsHandler) DeleteBooking(c *fiber.Ctx) error {
	if err := h.service.DeleteBooking(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:        booking.ID,
		ClientID:  booking.ClientID,
		PetID:     booking.PetID,
		Service:   booking.Service,
		Date:      booking.Date,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
}
