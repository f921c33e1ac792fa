package hashfind

import "errors"

var ErrInvalidConfiguration = errors.New("invalid configuration")
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")
