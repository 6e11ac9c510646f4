// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrWordNetFormat reports a WordNet dict file that cannot be parsed.
var ErrWordNetFormat = errors.New("malformed WordNet file")

// wordnetFiles names the dict files of each part of speech: data.<name>
// holds the synsets and <name>.exc the exception list.
var wordnetFiles = []struct {
	pos  POS
	name string
}{
	{Noun, "noun"},
	{Verb, "verb"},
	{Adjective, "adj"},
	{Adverb, "adv"},
}

// maxWordNetLine bounds a data line; the longest in WordNet 3.x is under
// 20 KiB.
const maxWordNetLine = 1 << 20

// ImportWordNet reads a Princeton WordNet dict directory into a
// Thesaurus. The four data files are required; a missing exception list
// is skipped. Synset IDs are the WordNet offset and synset type
// ("02084071-n").
func ImportWordNet(dir string) (*Thesaurus, error) {
	var (
		synsets    []Synset
		exceptions []Exception
	)
	for _, f := range wordnetFiles {
		ss, err := readWordNetData(filepath.Join(dir, "data."+f.name))
		if err != nil {
			return nil, err
		}
		synsets = append(synsets, ss...)

		exc, err := readWordNetExceptions(filepath.Join(dir, f.name+".exc"), f.pos)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, exc...)
	}

	t, err := New(synsets, exceptions...)
	if err != nil {
		return nil, fmt.Errorf("WordNet %s: %w", dir, err)
	}
	return t, nil
}

func readWordNetData(path string) ([]Synset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening WordNet data: %w", err)
	}
	defer f.Close()
	return parseWordNetData(f, filepath.Base(path))
}

func readWordNetExceptions(path string, pos POS) ([]Exception, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening WordNet exceptions: %w", err)
	}
	defer f.Close()
	return parseWordNetExceptions(f, pos, filepath.Base(path))
}

// parseWordNetData parses a data.* file. A synset line reads
//
//	offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt ... | gloss
//
// where w_cnt is two hexadecimal digits. Only the words are kept; pointers,
// verb frames and the gloss are ignored. Lines starting with a space are
// the license header.
func parseWordNetData(r io.Reader, name string) ([]Synset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxWordNetLine)

	var out []Synset
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if line == "" || line[0] == ' ' {
			continue
		}
		if i := strings.Index(line, " | "); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%s line %d: %w: %d fields", name, n, ErrWordNetFormat, len(fields))
		}

		ssType := POS(fields[2])
		switch ssType {
		case Noun, Verb, Adjective, Adverb, "s":
		default:
			return nil, fmt.Errorf("%s line %d: %w: synset type %q", name, n, ErrWordNetFormat, fields[2])
		}
		count, err := strconv.ParseUint(fields[3], 16, 8)
		if err != nil || count == 0 {
			return nil, fmt.Errorf("%s line %d: %w: word count %q", name, n, ErrWordNetFormat, fields[3])
		}
		if len(fields) < 4+2*int(count) {
			return nil, fmt.Errorf("%s line %d: %w: %d words declared, line too short", name, n, ErrWordNetFormat, count)
		}

		lemmas := make([]string, int(count))
		for i := range lemmas {
			lemmas[i] = stripSyntacticMarker(fields[4+2*i])
		}
		out = append(out, Synset{ID: fields[0] + "-" + string(ssType), POS: ssType, Lemmas: lemmas})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return out, nil
}

// stripSyntacticMarker drops the adjective position marker WordNet appends
// to some words: "galore(ip)" → "galore".
func stripSyntacticMarker(word string) string {
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}

// parseWordNetExceptions parses a *.exc file: one inflected form per line
// followed by its base forms.
func parseWordNetExceptions(r io.Reader, pos POS, name string) ([]Exception, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxWordNetLine)

	var out []Exception
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s line %d: %w: %q has no base form", name, n, ErrWordNetFormat, fields[0])
		}
		out = append(out, Exception{POS: pos, Form: fields[0], Bases: fields[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return out, nil
}
