package transfer

import "errors"

// Policy and validation errors. Wrapped with the offending path at the
// point of detection so errors.Is still matches at the batch boundary.
var (
	ErrSourceNotFound  = errors.New("source does not exist")
	ErrSourceWrongType = errors.New("source is not the expected kind")

	// ErrCannotDeriveName means the destination needs a file name appended
	// but the source has no name component (e.g. "/").
	ErrCannotDeriveName = errors.New("cannot derive a file name from source")

	ErrDestinationKindMismatch = errors.New("destination exists but is a different kind than source")

	// ErrDestinationExists is a policy rejection, not an I/O failure: the
	// destination file is already present and force was not given.
	ErrDestinationExists = errors.New("destination already exists (use --force to overwrite)")

	ErrInvalidSource   = errors.New("source is neither a file nor a directory")
	ErrDirDestRequired = errors.New("destination must be an existing directory when multiple sources are given")
	ErrMixedSources    = errors.New("cannot mix file and directory sources in one batch")
)
