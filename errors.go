package ucwire

import "errors"

var (
	// Framing errors.
	ErrPayloadTooLarge = errors.New("payload exceeds 255 bytes")
	ErrBadStart        = errors.New("bad start marker")
	ErrBadStop         = errors.New("bad stop marker")
	ErrIncomplete      = errors.New("incomplete packet")
	ErrChecksum        = errors.New("checksum mismatch")
	ErrBufferFull      = errors.New("buffer too small for packet")

	// Encoding/decoding errors.
	ErrUnsupported   = errors.New("unsupported type")
	ErrUnexpectedEnd = errors.New("unexpected end of payload")
	ErrInvalidTag    = errors.New("invalid union tag")
	ErrTrailingBytes = errors.New("trailing bytes after decode")
	ErrInvalidData   = errors.New("invalid data for type")
	ErrNotPointer    = errors.New("expected non-nil pointer")
)
