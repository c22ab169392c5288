package handlers

import (
	"log"

	"mingle/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MemberTypeHandler handles HTTP requests for member types. There is no
// create or delete route: member types are seeded at startup.
type MemberTypeHandler struct {
	service  *services.MemberTypeService
	validate *validator.Validate
}

// NewMemberTypeHandler creates a new MemberTypeHandler.
func NewMemberTypeHandler(service *services.MemberTypeService) *MemberTypeHandler {
	return &MemberTypeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the member type routes with the Fiber app.
func (h *MemberTypeHandler) RegisterRoutes(router fiber.Router) {
	memberTypeRoutes := router.Group("/member-types")
	memberTypeRoutes.Get("/", h.HandleGetMemberTypes)
	memberTypeRoutes.Get("/:id", h.HandleGetMemberTypeByID)
	memberTypeRoutes.Patch("/:id", h.HandleUpdateMemberType)
}

// HandleGetMemberTypes retrieves all member types.
func (h *MemberTypeHandler) HandleGetMemberTypes(c *fiber.Ctx) error {
	memberTypes, err := h.service.GetAllMemberTypes()
	if err != nil {
		log.Printf("Error getting all member types: %v", err)
		return respondError(c, err)
	}
	return c.JSON(memberTypes)
}

// HandleGetMemberTypeByID retrieves a single member type by its ID.
func (h *MemberTypeHandler) HandleGetMemberTypeByID(c *fiber.Ctx) error {
	memberType, err := h.service.GetMemberTypeByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(memberType)
}

// HandleUpdateMemberType applies a partial update to an existing member type.
func (h *MemberTypeHandler) HandleUpdateMemberType(c *fiber.Ctx) error {
	var input services.UpdateMemberTypeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	memberType, err := h.service.UpdateMemberType(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(memberType)
}
