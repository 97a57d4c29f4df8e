package index

// Load deserializes the three maps persisted under dir and derives
// NumDocs, AverageDocLen, and the docno -> internal_id auxiliary map
// that evaluation needs but which is never itself persisted.
func Load(dir string) (*Index, error) {
	lex, inv, meta, err := loadPersistedMaps(dir)
	if err != nil {
		return nil, err
	}

	ix := &Index{
		Lexicon:  lex,
		Inverted: inv,
		Meta:     meta,
		Dir:      dir,
	}
	ix.deriveAggregates()

	return ix, nil
}
