package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("application settings not found")
)
