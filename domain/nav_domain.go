package domain

import "errors"

var (
	MessageSuccessNavigate = "success navigate"
	MessageSuccessGoBack   = "success go back"
	MessageSuccessGetStack = "success get navigation stack"

	MessageFailedNavigate = "failed to navigate"

	ErrUnknownDestination = errors.New("unknown destination")
)

type NavigateRequest struct {
	Route string `json:"route" validate:"required"`
}
