package app

import "github.com/CrestNiraj12/speakfeed/render"

// Snapshot is one immutable view of the template configuration.
type Snapshot struct {
	Templates render.Set
	Format    render.Format
}

// TemplateSource hands out the current template configuration.
// Callers read a fresh Snapshot per render pass, so a reload applies to
// the next pass without further coordination.
type TemplateSource interface {
	Snapshot() Snapshot

	// Reload re-reads the backing file. On error the previous snapshot
	// stays current.
	Reload() (Snapshot, error)
}
