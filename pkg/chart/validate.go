package chart

import (
	"github.com/go-playground/validator/v10"

	cwerrors "github.com/lunaterra/chartwheel/pkg/errors"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the upstream contract on a chart document.
//
// It enforces the parts of the contract that indicate a broken calculation
// collaborator and therefore fail loudly:
//
//   - longitudes inside [0, 360) wherever present
//   - non-empty body, aspect and sign names
//   - no duplicate body names (each body appears once)
//
// It deliberately does not reject the conditions the layout engine absorbs
// as shape differences: nil longitudes, absent houses, a cusp count other
// than twelve, or missing sidereal segments.
func Validate(c *Chart) error {
	if c == nil {
		return cwerrors.New(cwerrors.ErrCodeInvalidChart, "chart is nil")
	}

	if err := validate.Struct(c); err != nil {
		return cwerrors.Wrap(cwerrors.ErrCodeInvalidChart, err, "chart violates calculation contract")
	}

	if err := uniqueNames(c.Bodies); err != nil {
		return err
	}
	return uniqueNames(c.Transits)
}

func uniqueNames(bodies []Body) error {
	seen := make(map[string]struct{}, len(bodies))
	for _, b := range bodies {
		if _, dup := seen[b.Name]; dup {
			return cwerrors.New(cwerrors.ErrCodeInvalidChart, "duplicate body %q", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}
