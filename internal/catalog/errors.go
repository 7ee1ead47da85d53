package catalog

import "errors"

// ErrExternalService is returned when the catalog cannot be reached or
// answers with something other than a valid search page.
var ErrExternalService = errors.New("catalog service error")
