//go:build !unix

package iconset

import "os"

// Without access(2), probe by creating and removing a scratch file.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".icongen-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}
