package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/andrewserrazina/friendly-paws-backend/internal/api/dto"
	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/service"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// PetsHandler manages pet record endpoints.
type PetsHandler struct {
	service *service.PetService
}

// NewPetsHandler constructs handler.
func NewPetsHandler(petService *service.PetService) *PetsHandler {
	return &PetsHandler{service: petService}
}

// CreatePet POST /pets.
func (h *PetsHandler) CreatePet(c *fiber.Ctx) error {
	var req dto.CreatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Species == "" || req.OwnerID == "" {
		return apperrors.NewValidationError("name, species, owner_id required", nil)
	}

	pet, err := h.service.CreatePet(c.Context(), service.PetCreateInput{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": petResponse(pet)})
}

// ListPets GET /pets.
func (h *PetsHandler) ListPets(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	var ownerID *string
	if owner := c.Query("owner_id"); owner != "" {
		ownerID = &owner
	}
	pets, err := h.service.ListPets(c.Context(), ownerID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		items = append(items, petResponse(&pets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetPet GET /pets/:id.
func (h *PetsHandler) GetPet(c *fiber.Ctx) error {
	pet, err := h.service.GetPet(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": petResponse(pet)})
}

// DeletePet DELETE /pets/:id.
func (h *PetsHandler) DeletePet(c *fiber.Ctx) error {
	if err := h.service.DeletePet(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func petResponse(pet *domain.Pet) dto.PetResponse {
	return dto.PetResponse{
		ID:        pet.ID,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		OwnerID:   pet.OwnerID,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}
}

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
