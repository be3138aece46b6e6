package cache

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

const fileExt = ".data"

// Path returns the snapshot file path for an identifier inside dir.
func Path(dir, id string) string {
	return filepath.Join(dir, id+fileExt)
}

// Write gob-encodes an object to a snapshot file, replacing any previous
// snapshot at that path.
func Write(filePath string, object interface{}) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(object); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Read gob-decodes a snapshot file into object.
func Read(filePath string, object interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	return decoder.Decode(object)
}
