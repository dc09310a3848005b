// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the transport module.

package transport

import "errors"

var (
	// errBadChain indicates a chain node with no transmittable domain.
	errBadChain = errors.New("malformed chain")
)
