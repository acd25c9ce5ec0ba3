package gdf

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateComponent checks a single component against its struct tags.
func ValidateComponent(c Component) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s %q: %v", c.Kind(), c.Label(), err)
	}
	return nil
}

// Validate checks every component in the model against its struct tags.
// The first violation is returned.
func (m *CoreModel) Validate() error {
	for _, c := range m.Components() {
		if err := ValidateComponent(c); err != nil {
			return err
		}
	}
	return nil
}
