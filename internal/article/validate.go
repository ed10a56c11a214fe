package article

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"newsflow/internal/apperr"
)

var (
	validCategories = func() []interface{} {
		out := make([]interface{}, len(Categories))
		for i, c := range Categories {
			out[i] = c
		}
		return out
	}()
	validStatuses = []interface{}{StatusDraft, StatusPublished}
)

// validatePatch rejects values outside the closed category and status sets.
// Absent fields are always acceptable.
func validatePatch(p Patch) error {
	err := validation.Errors{
		"category": validation.Validate(p.Category,
			validation.NilOrNotEmpty.Error("must not be empty"),
			validation.In(validCategories...).Error("must be one of the known categories"),
		),
		"status": validation.Validate(p.Status,
			validation.NilOrNotEmpty.Error("must not be empty"),
			validation.In(validStatuses...).Error("must be draft or published"),
		),
	}.Filter()
	if err != nil {
		return apperr.NewValidationWrap("invalid article", err)
	}
	return nil
}
