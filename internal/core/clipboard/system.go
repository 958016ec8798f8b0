package clipboard

import "github.com/atotto/clipboard"

// SystemProvider reads and writes the operating system clipboard.
type SystemProvider struct{}

// NewSystemProvider returns a provider for the system clipboard, or nil
// when no clipboard utility is available on this machine.
func NewSystemProvider() Provider {
	if clipboard.Unsupported {
		return nil
	}
	return SystemProvider{}
}

func (SystemProvider) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (SystemProvider) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
