package promoter

import (
	"errors"
	"time"

	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/doorlist/doorlist/internal/model"
	"github.com/gofiber/fiber/v2"
)

type promotersService interface {
	Create(form guestlist.PromoterForm) (*model.Promoter, error)
	Update(id string, form guestlist.PromoterForm) error
	Delete(id string) error
	Login(code, password string) (*model.Promoter, error)
}

type promotersRepository interface {
	List() ([]model.Promoter, error)
	FindByID(id string) (*model.Promoter, error)
}

type Config struct {
	Secret         []byte
	SessionTimeout time.Duration
}

type Controller struct {
	service    promotersService
	repository promotersRepository
	config     Config
}

// NewController returns a new instance of the promoters controller
func NewController(service promotersService, repository promotersRepository, cfg Config) *Controller {
	return &Controller{
		service:    service,
		repository: repository,
		config:     cfg,
	}
}

func apiError(c *fiber.Ctx, err error) error {
	var validation guestlist.ValidationError

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "fields": validation.Fields})
	case errors.Is(err, guestlist.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Promoter not found"})
	case errors.Is(err, guestlist.ErrDuplicateCode):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code already exists"})
	case errors.Is(err, guestlist.ErrCodeConflict):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code already in use"})
	case errors.Is(err, guestlist.ErrCapacityExceeded):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Promoter limit reached"})
	case errors.Is(err, guestlist.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	default:
		return fiber.ErrInternalServerError
	}
}
