package scanner

import (
	"github.com/doorlist/doorlist/internal/guestlist"
)

type checkInService interface {
	Resolve(scannedCode string) (guestlist.ScanResult, error)
}

type Controller struct {
	service checkInService
}

// NewController returns a new instance of the scanner controller
func NewController(service checkInService) *Controller {
	return &Controller{service: service}
}
