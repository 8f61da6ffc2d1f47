package domain

import "errors"

var (
	// ErrUnknownKind indicates a record kind name that is not recognised.
	ErrUnknownKind = errors.New("unknown record kind")

	// ErrUnknownSource indicates a payload source other than mastodon or bluesky.
	ErrUnknownSource = errors.New("unknown payload source")

	// ErrUnknownSlot indicates a template slot name that is not recognised.
	ErrUnknownSlot = errors.New("unknown template slot")

	// ErrEmptyPayload indicates the payload carried no data to decode.
	ErrEmptyPayload = errors.New("payload is empty")

	// ErrClipboardUnavailable indicates the system clipboard cannot be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
