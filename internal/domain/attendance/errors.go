package attendance

import "errors"

var ErrInvalidPeriod = errors.New("from date cannot be after to date")
