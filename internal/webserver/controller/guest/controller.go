package guest

import (
	"errors"

	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/doorlist/doorlist/internal/model"
	"github.com/doorlist/doorlist/internal/result"
	"github.com/gofiber/fiber/v2"
)

type guestsService interface {
	Register(form guestlist.GuestForm) (*model.Guest, error)
	Approve(id string) (*model.Guest, error)
	Reject(id string) error
	Delete(id string) error
	ManualCheckIn(id string) error
	UpdateProfile(id string, form guestlist.GuestForm) error
	ResendQr(id string) error
}

type guestsRepository interface {
	List(page int, resultsPerPage int, search, status string) (result.Paginated[[]model.Guest], error)
	Stats() (model.GuestStats, error)
	DeleteAll() error
}

type Controller struct {
	service    guestsService
	repository guestsRepository
}

// NewController returns a new instance of the guests controller
func NewController(service guestsService, repository guestsRepository) *Controller {
	return &Controller{
		service:    service,
		repository: repository,
	}
}

func apiError(c *fiber.Ctx, err error) error {
	var validation guestlist.ValidationError

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "fields": validation.Fields})
	case errors.Is(err, guestlist.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guest not found"})
	case errors.Is(err, guestlist.ErrDuplicateEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
	case errors.Is(err, guestlist.ErrCapacityExceeded):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Guest list full"})
	default:
		return fiber.ErrInternalServerError
	}
}
