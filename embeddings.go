package movierec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// ErrVectorSize is returned when a vector does not have the size of the
// embeddings it is added to.
var ErrVectorSize = errors.New("vector size does not match embedding size")

// Vector is a word or text embedding.
type Vector []float32

// Embeddings maps words to their vectors.
type Embeddings struct {
	vecs      map[string]Vector
	words     []string
	embedSize int
}

// NewEmbeddings creates an empty set of embeddings with vectors of
// the given size.
func NewEmbeddings(embedSize int) *Embeddings {
	return &Embeddings{
		vecs:      make(map[string]Vector),
		embedSize: embedSize,
	}
}

// LoadEmbeddings reads embeddings from a file. Files with a .txt or .vec
// extension are read as word2vec text files, other files as word2vec
// binary files.
func LoadEmbeddings(path string, normalize bool) (*Embeddings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open embeddings: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".vec":
		return ReadWord2VecText(bufio.NewReader(f), normalize)
	default:
		return ReadWord2VecBinary(bufio.NewReader(f), normalize)
	}
}

// ReadWord2VecBinary reads embeddings in the binary word2vec format. If
// normalize is true, every vector is scaled to unit length.
func ReadWord2VecBinary(r *bufio.Reader, normalize bool) (*Embeddings, error) {
	var nWords uint64
	if _, err := fmt.Fscanf(r, "%d", &nWords); err != nil {
		return nil, fmt.Errorf("read word count: %w", err)
	}

	var vSize uint64
	if _, err := fmt.Fscanf(r, "%d", &vSize); err != nil {
		return nil, fmt.Errorf("read vector size: %w", err)
	}

	embeds := NewEmbeddings(int(vSize))

	for w := uint64(0); w < nWords; w++ {
		word, err := r.ReadString(' ')
		if err != nil {
			return nil, fmt.Errorf("read word %d: %w", w, err)
		}
		word = strings.TrimSpace(word)

		vec := make([]float32, vSize)
		if err := binary.Read(r, binary.LittleEndian, vec); err != nil {
			return nil, fmt.Errorf("read vector of '%s': %w", word, err)
		}

		if normalize {
			normalizeVector(vec)
		}

		embeds.put(word, vec)
	}

	return embeds, nil
}

// ReadWord2VecText reads embeddings in the text word2vec format: a
// header with the number of words and the vector size, followed by one
// line per word with the word and its components separated by spaces.
func ReadWord2VecText(r *bufio.Reader, normalize bool) (*Embeddings, error) {
	var nWords, vSize int
	if _, err := fmt.Fscanf(r, "%d %d\n", &nWords, &vSize); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	embeds := NewEmbeddings(vSize)

	for w := 0; w < nWords; w++ {
		line, err := r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return nil, fmt.Errorf("read line %d: %w", w+2, err)
		}

		fields := strings.Fields(line)
		if len(fields) != vSize+1 {
			return nil, fmt.Errorf("line %d: expected %d fields, found %d", w+2, vSize+1, len(fields))
		}

		vec := make([]float32, vSize)
		for idx, field := range fields[1:] {
			val, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", w+2, err)
			}
			vec[idx] = float32(val)
		}

		if normalize {
			normalizeVector(vec)
		}

		embeds.put(fields[0], vec)
	}

	return embeds, nil
}

// Put adds or replaces the vector of a word. The vector is copied.
func (e *Embeddings) Put(word string, vector []float32) error {
	if len(vector) != e.embedSize {
		return fmt.Errorf("put '%s': %w: %d != %d", word, ErrVectorSize, len(vector), e.embedSize)
	}

	vec := make([]float32, len(vector))
	copy(vec, vector)
	e.put(word, vec)

	return nil
}

func (e *Embeddings) put(word string, vec Vector) {
	if _, ok := e.vecs[word]; !ok {
		e.words = append(e.words, word)
	}
	e.vecs[word] = vec
}

// Size returns the number of words in the embeddings.
func (e *Embeddings) Size() int {
	return len(e.words)
}

// VectorSize returns the size of the vectors.
func (e *Embeddings) VectorSize() int {
	return e.embedSize
}

// Vector returns the vector of a word. ok is false for unknown words.
func (e *Embeddings) Vector(word string) (Vector, bool) {
	vec, ok := e.vecs[word]
	return vec, ok
}

// Iterate calls f for every word in the order in which the words were
// added, until f returns false.
func (e *Embeddings) Iterate(f func(word string, vector Vector) bool) {
	for _, word := range e.words {
		if !f(word, e.vecs[word]) {
			return
		}
	}
}

// Embed returns the vector of a text: the average of the vectors of its
// words. Words are looked up as-is first and then lowercased. Unknown
// words are ignored; a text without known words gets the zero vector.
func (e *Embeddings) Embed(text string) Vector {
	sum := make([]float32, e.embedSize)

	n := 0
	for _, token := range Tokenize(text) {
		vec, ok := e.lookup(token)
		if !ok {
			continue
		}

		impl.Saxpy(e.embedSize, 1, vec, 1, sum, 1)
		n++
	}

	if n > 1 {
		impl.Sscal(e.embedSize, 1/float32(n), sum, 1)
	}

	return sum
}

func (e *Embeddings) lookup(token string) (Vector, bool) {
	if vec, ok := e.vecs[token]; ok {
		return vec, true
	}

	vec, ok := e.vecs[strings.ToLower(token)]
	return vec, ok
}

// Tokenize splits text into words. Every rune that is neither a letter
// nor a digit separates words.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Cosine returns the cosine similarity of two vectors. Vectors of
// different or zero length and zero vectors have similarity 0.
func Cosine(v, w Vector) float32 {
	if len(v) != len(w) || len(v) == 0 {
		return 0
	}

	normV := impl.Snrm2(len(v), v, 1)
	normW := impl.Snrm2(len(w), w, 1)
	if normV == 0 || normW == 0 {
		return 0
	}

	return impl.Sdot(len(v), v, 1, w, 1) / (normV * normW)
}

func normalizeVector(vec []float32) {
	if len(vec) == 0 {
		return
	}

	vecLen := impl.Snrm2(len(vec), vec, 1)
	if vecLen == 0 {
		return
	}

	impl.Sscal(len(vec), 1/vecLen, vec, 1)
}
