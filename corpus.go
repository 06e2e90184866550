package movierec

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadDescriptions reads newline-separated movie descriptions. Lines are
// returned as stored, including their line terminator. The last line
// has no terminator if the input does not end with one.
func ReadDescriptions(r *bufio.Reader) ([]string, error) {
	var descs []string

	for {
		line, err := r.ReadString('\n')
		if line != "" {
			descs = append(descs, line)
		}

		if err == io.EOF {
			return descs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// LoadCorpus reads the movie descriptions in the file at path.
func LoadCorpus(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	descs, err := ReadDescriptions(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	return descs, nil
}
