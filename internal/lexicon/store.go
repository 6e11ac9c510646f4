// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"bytes"
	"database/sql"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"
)

//go:embed data/lexicon.yaml
var defaultLexicon []byte

// lexiconFile is the YAML representation of a lexical database.
type lexiconFile struct {
	Synsets    []Synset    `yaml:"synsets"`
	Exceptions []Exception `yaml:"exceptions,omitempty"`
}

var loadDefault = sync.OnceValue(func() *Thesaurus {
	t, err := ParseYAML(bytes.NewReader(defaultLexicon))
	if err != nil {
		panic(fmt.Sprintf("lexicon: built-in lexicon: %v", err))
	}
	return t
})

// Default returns the built-in general and biomedical English lexicon.
func Default() *Thesaurus {
	return loadDefault()
}

// Load reads a lexical database, choosing the format by file extension:
// .yaml/.yml for YAML, .db/.sqlite/.sqlite3 for SQLite. A directory is
// read as a WordNet dict directory. An empty path returns the built-in
// lexicon.
func Load(path string) (*Thesaurus, error) {
	if path == "" {
		return Default(), nil
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return ImportWordNet(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("lexicon %s: unsupported extension (want .yaml, .yml, .db, .sqlite or .sqlite3)", path)
	}
}

// LoadYAML reads a YAML lexical database from path.
func LoadYAML(path string) (*Thesaurus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}
	defer f.Close()

	t, err := ParseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return t, nil
}

// ParseYAML decodes a YAML lexical database of the form
//
//	synsets:
//	  - id: learning.n.01
//	    pos: n
//	    lemmas: [learning, acquisition]
//	exceptions:
//	  - pos: n
//	    form: mice
//	    bases: [mouse]
func ParseYAML(r io.Reader) (*Thesaurus, error) {
	var lf lexiconFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing lexicon YAML: %w", err)
	}
	return New(lf.Synsets, lf.Exceptions...)
}

const lexiconSchema = `
CREATE TABLE synsets (
	id TEXT PRIMARY KEY,
	pos TEXT NOT NULL,
	ord INTEGER NOT NULL
);
CREATE TABLE senses (
	synset_id TEXT NOT NULL REFERENCES synsets(id),
	lemma TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (synset_id, position)
);
CREATE INDEX idx_senses_lemma ON senses(lemma);
CREATE TABLE exceptions (
	pos TEXT NOT NULL,
	form TEXT NOT NULL,
	base TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (pos, form, position)
);
`

// OpenSQLite loads a lexical database written by WriteSQLite. The whole
// database is read into memory; the file is not kept open.
func OpenSQLite(path string) (*Thesaurus, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening lexicon database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT s.id, s.pos, e.lemma
		FROM synsets s JOIN senses e ON e.synset_id = s.id
		ORDER BY s.ord, e.position`)
	if err != nil {
		return nil, fmt.Errorf("querying lexicon %s: %w", path, err)
	}
	defer rows.Close()

	var synsets []Synset
	for rows.Next() {
		var id, pos, lemma string
		if err := rows.Scan(&id, &pos, &lemma); err != nil {
			return nil, fmt.Errorf("scanning lexicon row: %w", err)
		}
		if n := len(synsets); n > 0 && synsets[n-1].ID == id {
			synsets[n-1].Lemmas = append(synsets[n-1].Lemmas, lemma)
			continue
		}
		synsets = append(synsets, Synset{ID: id, POS: POS(pos), Lemmas: []string{lemma}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}

	exceptions, err := readExceptions(db)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}

	t, err := New(synsets, exceptions...)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return t, nil
}

func readExceptions(db *sql.DB) ([]Exception, error) {
	rows, err := db.Query(`SELECT pos, form, base FROM exceptions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying exceptions: %w", err)
	}
	defer rows.Close()

	var out []Exception
	for rows.Next() {
		var pos, form, base string
		if err := rows.Scan(&pos, &form, &base); err != nil {
			return nil, fmt.Errorf("scanning exception row: %w", err)
		}
		if n := len(out); n > 0 && out[n-1].POS == POS(pos) && out[n-1].Form == form {
			out[n-1].Bases = append(out[n-1].Bases, base)
			continue
		}
		out = append(out, Exception{POS: POS(pos), Form: form, Bases: []string{base}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading exceptions: %w", err)
	}
	return out, nil
}

// WriteSQLite stores the thesaurus as a SQLite database at path. An
// existing file is replaced.
func (t *Thesaurus) WriteSQLite(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(lexiconSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	synStmt, err := tx.Prepare(`INSERT INTO synsets (id, pos, ord) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing synset insert: %w", err)
	}
	defer synStmt.Close()
	senseStmt, err := tx.Prepare(`INSERT INTO senses (synset_id, lemma, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing sense insert: %w", err)
	}
	defer senseStmt.Close()
	excStmt, err := tx.Prepare(`INSERT INTO exceptions (pos, form, base, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing exception insert: %w", err)
	}
	defer excStmt.Close()

	for i, ss := range t.synsets {
		if _, err := synStmt.Exec(ss.ID, string(ss.POS), i); err != nil {
			return fmt.Errorf("inserting synset %s: %w", ss.ID, err)
		}
		for j, l := range ss.Lemmas {
			if _, err := senseStmt.Exec(ss.ID, l, j); err != nil {
				return fmt.Errorf("inserting lemma %s of %s: %w", l, ss.ID, err)
			}
		}
	}
	for _, e := range t.exceptions {
		for j, b := range e.Bases {
			if _, err := excStmt.Exec(string(e.POS), e.Form, b, j); err != nil {
				return fmt.Errorf("inserting exception %s: %w", e.Form, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing lexicon: %w", err)
	}
	return nil
}
