package leave

import "errors"

// Leave domain errors
var (
	ErrCategoryNotFound             = errors.New("leave category not found")
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrExceedsEntitlement           = errors.New("requested days exceed the category entitlement")
)
