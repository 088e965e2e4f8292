package bookingproduct

import "errors"

// ErrCache возвращается при ошибке обращения к Redis
var ErrCache = errors.New("bookingproduct.cache: redis error")
