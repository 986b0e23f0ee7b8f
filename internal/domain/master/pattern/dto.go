package pattern

import (
	"github.com/kerjahub/roster-backend-go/internal/pkg/validator"
)

// WorkPatternResponse represents the response structure for a work pattern.
type WorkPatternResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	WorkFrom float64 `json:"work_from"`
	WorkTo   float64 `json:"work_to"`
	Duration float64 `json:"duration"`
}

// CreateWorkPatternRequest represents the request structure for creating a
// work pattern.
type CreateWorkPatternRequest struct {
	Name            string  `json:"name"`
	StoreLocationID string  `json:"store_location_id"`
	WorkFrom        float64 `json:"work_from"`
	WorkTo          float64 `json:"work_to"`
}

func (r *CreateWorkPatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.StoreLocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_location_id",
			Message: "store_location_id is required",
		})
	}

	if r.WorkFrom < 0 || r.WorkFrom >= 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_from",
			Message: "work_from must be a clock hour between 0 and 24",
		})
	}

	if r.WorkTo < 0 || r.WorkTo > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_to",
			Message: "work_to must be a clock hour between 0 and 24",
		})
	}

	// Overnight shifts are not supported: the derived duration would go
	// negative. Rejected here rather than silently wrapped.
	if r.WorkTo <= r.WorkFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "work_to",
			Message: "work_to must be later than work_from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func ToResponse(p WorkPattern) WorkPatternResponse {
	return WorkPatternResponse{
		ID:       p.ID,
		Name:     p.Name,
		WorkFrom: p.WorkFrom,
		WorkTo:   p.WorkTo,
		Duration: p.Duration(),
	}
}
