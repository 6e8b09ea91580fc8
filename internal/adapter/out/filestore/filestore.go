package filestore

import "io"

// Store persists uploaded post images and returns the key to record on the
// post. Serving the files back is the job of the external static layer.
type Store interface {
	Save(fileName string, r io.Reader) (string, error)
}
