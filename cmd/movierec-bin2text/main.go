package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danieldk/movierec"
	"github.com/danieldk/movierec/cmd/common"
)

func main() {
	normalize := flag.Bool("normalize", false, "normalize vectors to unit length")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: movierec-bin2text vectors.bin")
		os.Exit(1)
	}

	logger := common.NewLogger("info")

	f, err := os.Open(flag.Arg(0))
	common.ExitIfError(logger, "Cannot open file", err)
	defer f.Close()

	embeds, err := movierec.ReadWord2VecBinary(bufio.NewReader(f), *normalize)
	common.ExitIfError(logger, "Cannot read vectors", err)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintf(w, "%d %d\n", embeds.Size(), embeds.VectorSize())

	embeds.Iterate(func(word string, vector movierec.Vector) bool {
		_, err := fmt.Fprintln(w, word, floatSliceToString(vector))
		return err == nil
	})
}

func floatSliceToString(floats []float32) string {
	stringFloats := make([]string, len(floats))

	for idx, float := range floats {
		stringFloats[idx] = strconv.FormatFloat(float64(float), 'f', 6, 32)
	}

	return strings.Join(stringFloats, " ")
}
