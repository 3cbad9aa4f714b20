package family

import "errors"

var ErrItemNotFound = errors.New("entry not found")
