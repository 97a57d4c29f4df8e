// Package docstore persists and retrieves the raw record bytes for
// each document, partitioned MM/DD/YY/<docno>.txt under the index
// directory root, matching original_source/Index/IndexEngine.java's
// storeDocument layout.
package docstore

import (
	"os"
	"path/filepath"
)

// PathFor returns the on-disk path for docno's raw record file,
// rooted at indexDir. date must be the 6-character MMDDYY string
// taken from docno[2:8].
func PathFor(indexDir, date, docno string) string {
	mm, dd, yy := date[0:2], date[2:4], date[4:6]
	return filepath.Join(indexDir, mm, dd, yy, docno+".txt")
}

// Store writes raw verbatim to the file for docno, creating any
// missing date-partition directories.
func Store(indexDir, date, docno string, raw []byte) error {
	path := PathFor(indexDir, date, docno)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o644)
}

// Load reads back the raw record bytes previously stored for docno.
func Load(indexDir, date, docno string) ([]byte, error) {
	return os.ReadFile(PathFor(indexDir, date, docno))
}
