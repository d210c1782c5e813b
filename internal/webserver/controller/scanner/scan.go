package scanner

import (
	"github.com/doorlist/doorlist/internal/guestlist"
	"github.com/gofiber/fiber/v2"
)

type scanPayload struct {
	QrContent string `json:"qrContent"`
}

// Scan resolves one decoded QR payload coming from the scanning UI
// and renders the outcome the way the UI expects: valid flag, a
// message, a severity and the matching record if any.
func (s *Controller) Scan(c *fiber.Ctx) error {
	var payload scanPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.ErrBadRequest
	}

	scan, err := s.service.Resolve(payload.QrContent)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	switch scan.Outcome {
	case guestlist.OutcomeAdmitted:
		return c.JSON(fiber.Map{"valid": true, "type": "success", "message": "WELCOME", "guest": scan.Guest})
	case guestlist.OutcomeAlreadyUsed:
		return c.JSON(fiber.Map{"valid": false, "type": "warning", "message": "ALREADY ENTERED", "guest": scan.Guest})
	case guestlist.OutcomeNotApproved:
		return c.JSON(fiber.Map{"valid": false, "type": "error", "message": "NOT APPROVED", "guest": scan.Guest})
	case guestlist.OutcomePromoter:
		return c.JSON(fiber.Map{"valid": true, "type": "promoter", "message": "PROMOTER VERIFIED", "promoter": scan.Promoter})
	default:
		return c.JSON(fiber.Map{"valid": false, "type": "error", "message": "UNKNOWN CODE"})
	}
}
