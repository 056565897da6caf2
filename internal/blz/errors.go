package blz

import "errors"

// Sentinel errors returned by this package. Callers distinguish them with
// errors.Is rather than type assertions, matching the error handling used
// throughout the rest of this module.
var (
	// ErrSentinelByte is returned by NewText when the payload contains the
	// reserved sentinel byte.
	ErrSentinelByte = errors.New("blz: payload contains the reserved sentinel byte")

	// ErrEmptyPayload is returned by NewText for a zero-length payload;
	// the suffix tree construction requires at least one byte.
	ErrEmptyPayload = errors.New("blz: payload is empty")

	// ErrCostExceeded is an invariant violation: the parser produced a
	// position whose cost rose above the configured bound C.
	ErrCostExceeded = errors.New("blz: cost bound exceeded")

	// ErrUninitializedMatch is an invariant violation: ST_FindSubstring
	// reached a node whose optimisticTextPos was never initialized.
	ErrUninitializedMatch = errors.New("blz: uninitialized match position during query descent")
)
