package explorer

import "errors"

// ErrChainQuery wraps any transport or node failure while querying the chain.
var ErrChainQuery = errors.New("chain query failed")
