package service

import "errors"

// ErrStaticDisabled is returned by [AssetService.Asset] when no static content
// is configured.
var ErrStaticDisabled = errors.New("static content is not configured")
