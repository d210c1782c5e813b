package settings

type settingsRepository interface {
	All() (map[string]string, error)
	SetAll(values map[string]string) error
}

type Controller struct {
	repository settingsRepository
}

// NewController returns a new instance of the settings controller
func NewController(repository settingsRepository) *Controller {
	return &Controller{repository: repository}
}
