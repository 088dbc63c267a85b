package fetcher

import "errors"

// ErrStatusNotOK is returned when http response had a non-success status.
var ErrStatusNotOK = errors.New("response status is not a success status")
