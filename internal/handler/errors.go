package handler

import "errors"

// errNoHandlersAreCreated means the table API has no address to be served on.
var errNoHandlersAreCreated = errors.New("no table API handlers are created")
