package resolver

import "errors"

// ErrUpstreamTimeout is returned when the upstream round trip does not
// complete within the configured timeout.
var ErrUpstreamTimeout = errors.New("resolver: upstream timeout")

// ErrNoQuestion names a decoded request that carries no question. The loop
// itself does not return it: handle drops such a request silently.
var ErrNoQuestion = errors.New("resolver: request carried no question")

// ErrUpstreamNoAnswer is returned when an upstream reply is not NXDOMAIN
// but carries no answer to cache and return.
var ErrUpstreamNoAnswer = errors.New("resolver: upstream reply carried no answer")
