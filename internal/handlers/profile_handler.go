package handlers

import (
	"log"

	"mingle/internal/models"
	"mingle/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles HTTP requests for profiles.
type ProfileHandler struct {
	service  *services.ProfileService
	validate *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	profileRoutes := router.Group("/profiles")
	profileRoutes.Get("/", h.HandleGetProfiles)
	profileRoutes.Get("/:id", h.HandleGetProfileByID)
	profileRoutes.Post("/", h.HandleCreateProfile)
	profileRoutes.Patch("/:id", h.HandleUpdateProfile)
	profileRoutes.Delete("/:id", h.HandleDeleteProfile)
}

// HandleGetProfiles retrieves all profiles.
func (h *ProfileHandler) HandleGetProfiles(c *fiber.Ctx) error {
	profiles, err := h.service.GetAllProfiles()
	if err != nil {
		log.Printf("Error getting all profiles: %v", err)
		return respondError(c, err)
	}
	return c.JSON(profiles)
}

// HandleGetProfileByID retrieves a single profile by its ID.
func (h *ProfileHandler) HandleGetProfileByID(c *fiber.Ctx) error {
	profile, err := h.service.GetProfileByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// HandleCreateProfile creates a new profile. The service checks that the
// owning user exists, has no profile yet and references a valid member type.
func (h *ProfileHandler) HandleCreateProfile(c *fiber.Ctx) error {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		log.Printf("Error parsing create profile request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(profile); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateProfile(&profile); err != nil {
		log.Printf("Error creating profile for user %s: %v", profile.UserID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// HandleUpdateProfile applies a partial update to an existing profile.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	profile, err := h.service.UpdateProfile(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// HandleDeleteProfile deletes a profile. No cascade.
func (h *ProfileHandler) HandleDeleteProfile(c *fiber.Ctx) error {
	profile, err := h.service.DeleteProfile(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
