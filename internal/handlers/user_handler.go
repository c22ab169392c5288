package handlers

import (
	"log"

	"mingle/internal/models"
	"mingle/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users, including the subscription
// endpoints and cascading deletion.
type UserHandler struct {
	userService *services.UserService
	subService  *services.SubscriptionService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, subService *services.SubscriptionService) *UserHandler {
	return &UserHandler{
		userService: userService,
		subService:  subService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
	userRoutes.Post("/:id/subscribeTo", h.HandleSubscribeTo)
	userRoutes.Post("/:id/unsubscribeFrom", h.HandleUnsubscribeFrom)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(user); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.userService.CreateUser(&user); err != nil {
		log.Printf("Error creating user: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleDeleteUser deletes a user, cascading over their profile, posts and
// subscription edges.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	user, err := h.userService.DeleteUser(c.Params("id"))
	if err != nil {
		log.Printf("Error deleting user %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(user)
}

// subscribeRequest is the body of both subscription endpoints: the user on
// the other side of the edge.
type subscribeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// HandleSubscribeTo subscribes the user in the path to the user in the body.
func (h *UserHandler) HandleSubscribeTo(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	target, err := h.subService.Subscribe(c.Params("id"), req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(target)
}

// HandleUnsubscribeFrom removes the subscription of the user in the path to
// the user in the body.
func (h *UserHandler) HandleUnsubscribeFrom(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	target, err := h.subService.Unsubscribe(c.Params("id"), req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(target)
}

// HandleUpdateUser applies a partial update to an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	user, err := h.userService.UpdateUser(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
