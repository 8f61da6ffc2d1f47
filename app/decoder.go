package app

import "github.com/CrestNiraj12/speakfeed/domain"

// Decoder turns a saved API response into records. Implemented by
// infrastructure (infra/mastodon, infra/bluesky). Decoders do no I/O.
type Decoder interface {
	// Decode parses data as a list of records of the given kind and
	// returns them in the matching Batch slice.
	Decode(kind domain.Kind, data []byte) (domain.Batch, error)
}
