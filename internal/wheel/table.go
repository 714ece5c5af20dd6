package wheel

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// WordsPerTable is the number of answer words printed on each game's wheel.
const WordsPerTable = 36

// WordLength is the length of every answer word.
const WordLength = 6

// WordsPerSpiral is the index shift between adjacent spirals.
const WordsPerSpiral = WordsPerTable / NumSpirals

//go:embed tables.yaml
var tablesYAML []byte

// WordTable is one game's fixed array of answer words. Tables are built once
// from the embedded data and never mutated afterwards, so reads need no
// locking.
type WordTable struct {
	words [WordsPerTable]string
}

// Word returns the answer word at index i in [0, WordsPerTable).
func (t *WordTable) Word(i int) string {
	return t.words[i]
}

// Words returns a copy of the table in index order.
func (t *WordTable) Words() []string {
	out := make([]string, WordsPerTable)
	copy(out, t.words[:])
	return out
}

var (
	initOnce sync.Once
	initErr  error
	tables   [NumGames]WordTable
)

// Init parses and validates the embedded word tables exactly once. A table
// with the wrong word count or a word of the wrong length is a fatal
// configuration error: callers should refuse to start rather than decode
// garbage.
func Init() error {
	initOnce.Do(func() {
		tables, initErr = parseTables(tablesYAML)
	})
	return initErr
}

// mustInit backs the package accessors. The embedded data is fixed at build
// time, so failing to parse it is a defect, not a runtime condition.
func mustInit() {
	if err := Init(); err != nil {
		panic(err)
	}
}

// Table returns the word table for the given game.
func Table(g Game) *WordTable {
	mustInit()
	return &tables[g]
}

type tableFile struct {
	Games []tableEntry `yaml:"games"`
}

type tableEntry struct {
	ID    string   `yaml:"id"`
	Words []string `yaml:"words"`
}

func parseTables(data []byte) ([NumGames]WordTable, error) {
	var out [NumGames]WordTable

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return out, fmt.Errorf("wheel: cannot parse word tables: %w", err)
	}
	if len(tf.Games) != NumGames {
		return out, fmt.Errorf("wheel: found %d word tables, expected %d", len(tf.Games), NumGames)
	}

	for i, entry := range tf.Games {
		want := Game(i).ID()
		if entry.ID != want {
			return out, fmt.Errorf("wheel: table %d is for %q, expected %q", i, entry.ID, want)
		}
		if len(entry.Words) != WordsPerTable {
			return out, fmt.Errorf("wheel: %s table has %d words, expected %d", entry.ID, len(entry.Words), WordsPerTable)
		}
		for j, w := range entry.Words {
			if len(w) != WordLength {
				return out, fmt.Errorf("wheel: %s word %d is %q (%d characters), expected %d", entry.ID, j, w, len(w), WordLength)
			}
			out[i].words[j] = w
		}
	}
	return out, nil
}
