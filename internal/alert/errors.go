package alert

import "errors"

var (
	ErrAssetMissing      = errors.New("alert asset missing")
	ErrAssetDecode       = errors.New("alert asset cannot be decoded")
	ErrDeviceUnavailable = errors.New("audio output device unavailable")
)
