package repository

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// The file store keeps each logical record in its own JSON file under the
// data directory. Reads fail soft: a missing or corrupt file is "no data",
// never a fatal error. Writes go through a temp file + rename so a reader
// can never observe a partially written record.

const defaultDataDir = "data"

func dataDir() string {
	return getenvDefault("DATA_DIR", defaultDataDir)
}

// readJSONFile decodes path into v. Returns false when the record should be
// treated as absent (missing file, empty file, corrupt payload).
func readJSONFile(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[store] read failed path=%s err=%v; treating as empty", path, err)
		}
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[store] corrupt record path=%s err=%v; treating as empty", path, err)
		return false
	}
	return true
}

// writeJSONFile atomically replaces path with the JSON encoding of v.
func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
