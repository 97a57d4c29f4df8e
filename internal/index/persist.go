package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// File names for the three persisted maps, fixed per SPEC_FULL.md
// §4.4.
const (
	metadataFile = "metadata.txt"
	lexiconFile  = "lexicon.txt"
	invertedFile = "invertedIndex.txt"
)

// persistedMetadata/persistedInverted mirror MetadataMap/InvertedIndex
// but with string keys, since JSON object keys must be strings -- this
// is the "three distinct typed loaders" design note from SPEC_FULL.md
// §9, replacing the source's single dynamically-typed getMap.
type persistedMetadata map[string]Metadata
type persistedInverted map[string]PostingsList

func writeJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Save serializes the lexicon, inverted index, and metadata map to
// their three fixed files under dir.
func Save(dir string, lex *Lexicon, inv InvertedIndex, meta MetadataMap) error {
	if err := writeJSON(filepath.Join(dir, lexiconFile), lex.Terms()); err != nil {
		return err
	}

	pinv := make(persistedInverted, len(inv))
	for id, pl := range inv {
		pinv[strconv.FormatUint(uint64(id), 10)] = pl
	}
	if err := writeJSON(filepath.Join(dir, invertedFile), pinv); err != nil {
		return err
	}

	pmeta := make(persistedMetadata, len(meta))
	for id, m := range meta {
		pmeta[strconv.FormatUint(uint64(id), 10)] = m
	}
	if err := writeJSON(filepath.Join(dir, metadataFile), pmeta); err != nil {
		return err
	}

	return nil
}

// loadPersistedMaps deserializes the three files back into their
// typed in-memory forms.
func loadPersistedMaps(dir string) (*Lexicon, InvertedIndex, MetadataMap, error) {
	var terms map[string]uint32
	if err := readJSON(filepath.Join(dir, lexiconFile), &terms); err != nil {
		return nil, nil, nil, err
	}
	lex := LoadLexicon(terms)

	var pinv persistedInverted
	if err := readJSON(filepath.Join(dir, invertedFile), &pinv); err != nil {
		return nil, nil, nil, err
	}
	inv := make(InvertedIndex, len(pinv))
	for key, pl := range pinv {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, nil, nil, err
		}
		inv[uint32(id)] = pl
	}

	var pmeta persistedMetadata
	if err := readJSON(filepath.Join(dir, metadataFile), &pmeta); err != nil {
		return nil, nil, nil, err
	}
	meta := make(MetadataMap, len(pmeta))
	for key, m := range pmeta {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, nil, nil, err
		}
		meta[uint32(id)] = m
	}

	return lex, inv, meta, nil
}
