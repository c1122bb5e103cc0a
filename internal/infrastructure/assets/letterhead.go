package assets

import (
	"fmt"
	"os"

	"atelier_auto/internal/usecase/interfaces"
)

const defaultLetterheadPath = "assets/letterhead.png"

// FileLetterheadProvider loads the letterhead logo from disk.
//
// Supported env vars:
//   - LETTERHEAD_PATH (default: assets/letterhead.png)
//
// The file is read on every call rather than cached: renders are rare
// compared to its cost and the garage can swap the asset without a restart.
type FileLetterheadProvider struct {
	path string
}

var _ interfaces.ILetterheadProvider = (*FileLetterheadProvider)(nil)

func NewFileLetterheadProvider() *FileLetterheadProvider {
	path := os.Getenv("LETTERHEAD_PATH")
	if path == "" {
		path = defaultLetterheadPath
	}
	return &FileLetterheadProvider{path: path}
}

func NewFileLetterheadProviderWithPath(path string) *FileLetterheadProvider {
	return &FileLetterheadProvider{path: path}
}

func (p *FileLetterheadProvider) Letterhead() ([]byte, error) {
	b, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("reading letterhead %s: %w", p.path, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("letterhead %s is empty", p.path)
	}
	return b, nil
}
