package usb

import "errors"

// ErrNotInitialized is returned by Render before Initialize has succeeded.
var ErrNotInitialized = errors.New("usb device not initialized")
