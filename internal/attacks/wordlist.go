package attacks

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lth/hashfind/internal/hashfind"
)

const maxLineSize = 1024 * 1024

// Wordlist is an ordered dictionary held in memory, searched as one bucket.
type Wordlist struct {
	words []string
}

var _ hashfind.Space = (*Wordlist)(nil)

func NewWordlist(words []string) *Wordlist {
	return &Wordlist{words: words}
}

func (w *Wordlist) Buckets() int {
	return 1
}

func (w *Wordlist) Size(int) uint64 {
	return uint64(len(w.words))
}

func (w *Wordlist) Fill(_ int, index uint64, dst []byte) []byte {
	return append(dst[:0], w.words[index]...)
}

func (w *Wordlist) String() string {
	return fmt.Sprintf("wordlist, %d words", len(w.words))
}

// LoadWordlist reads one candidate per line from filename.
func LoadWordlist(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hashfind.ErrDictionaryUnavailable, err)
	}
	defer f.Close()

	return ReadWordlist(f)
}

// ReadWordlist keeps empty lines as empty candidates and does not
// deduplicate. A final newline does not add an entry.
func ReadWordlist(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	words := make([]string, 0, 1024)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d too long, the limit is %d bytes",
				hashfind.ErrDictionaryUnavailable, len(words)+1, maxLineSize)
		}
		return nil, fmt.Errorf("%w: %w", hashfind.ErrDictionaryUnavailable, err)
	}

	return words, nil
}
