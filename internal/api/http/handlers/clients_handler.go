package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/andrewserrazina/friendly-paws-backend/internal/api/dto"
	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/service"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// ClientsHandler manages client record endpoints.
type ClientsHandler struct {
	service *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{service: clientService}
}

// CreateClient POST /clients.
func (h *ClientsHandler) CreateClient(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}

	client, err := h.service.CreateClient(c.Context(), service.ClientCreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": clientResponse(client)})
}

// ListClients GET /clients.
func (h *ClientsHandler) ListClients(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	clients, err := h.service.ListClients(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, clientResponse(&clients[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetClient GET /clients/:id.
func (h *ClientsHandler) GetClient(c *fiber.Ctx) error {
	client, err := h.service.GetClient(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

// DeleteClient DELETE /clients/:id.
func (h *ClientsHandler) DeleteClient(c *fiber.Ctx) error {
	if err := h.service.DeleteClient(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func clientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}
