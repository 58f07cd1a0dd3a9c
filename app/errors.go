package app

import "errors"

// ErrNoSuchPreset is returned when a preset index is out of range
var ErrNoSuchPreset = errors.New("no such preset")
