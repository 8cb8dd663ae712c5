package storage

import "io"

// LogoStorage abstracts where submitted company logos live. The approval
// workflow only ever sees the reference URL embedded in the application
// snapshot; swapping the local implementation for a cloud bucket must not
// touch any other package.
type LogoStorage interface {
	// SaveFile stores the logo under the given key.
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a stored logo for serving back to the review UI.
	ReadFile(key string) (io.ReadCloser, error)

	// DeleteFile removes a stored logo.
	DeleteFile(key string) error

	// FileURL returns the public URL a snapshot should reference.
	FileURL(key string) string
}
