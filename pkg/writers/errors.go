package writers

import "errors"

var ErrUnknownFormat = errors.New("writers: unknown image format")
