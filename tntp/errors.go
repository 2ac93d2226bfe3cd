package tntp

import "errors"

// Sentinel errors returned while parsing a TNTP link or trip file.
var (
	// ErrMissingMetadata indicates a required metadata tag never appeared
	// before <END OF METADATA>.
	ErrMissingMetadata = errors.New("tntp: required metadata tag missing")

	// ErrUnclosedMetadataTag indicates a "<" with no matching ">".
	ErrUnclosedMetadataTag = errors.New("tntp: metadata tag not closed")

	// ErrMalformedLinkRow indicates a link data row did not parse into
	// exactly 10 fields.
	ErrMalformedLinkRow = errors.New("tntp: malformed link row")

	// ErrNegativeFreeFlowTime indicates a link row's free-flow time field
	// was negative.
	ErrNegativeFreeFlowTime = errors.New("tntp: link free-flow time must be non-negative")

	// ErrNegativeAlpha indicates a link row's alpha (BPR scale) field was
	// negative.
	ErrNegativeAlpha = errors.New("tntp: link alpha must be non-negative")

	// ErrNegativeBeta indicates a link row's beta (BPR exponent) field
	// was negative.
	ErrNegativeBeta = errors.New("tntp: link beta must be non-negative")

	// ErrZoneCountMismatch indicates the trip file's zone count disagrees
	// with the link file's.
	ErrZoneCountMismatch = errors.New("tntp: trip file zone count does not match link file")

	// ErrOriginOutOfRange indicates an "Origin N" trip-file header named a
	// zone outside [1, numZones].
	ErrOriginOutOfRange = errors.New("tntp: origin out of range")

	// ErrDestinationOutOfRange indicates a trip-file demand entry named a
	// destination zone outside [1, numZones].
	ErrDestinationOutOfRange = errors.New("tntp: destination out of range")

	// ErrUnexpectedEOF indicates a file ended before its metadata header
	// or data rows were complete.
	ErrUnexpectedEOF = errors.New("tntp: file ended before data was complete")
)
