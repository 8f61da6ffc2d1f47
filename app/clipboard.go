package app

// Clipboard receives the copy-template rendering of an item.
type Clipboard interface {
	WriteText(text string) error
}
