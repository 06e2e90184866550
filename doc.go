// Package movierec recommends the movie description that is most similar
// to a query description.
//
// Descriptions are compared using word2vec embeddings: a description is
// represented by the average of the vectors of its words, and two
// descriptions are compared using cosine similarity. This package can
// load binary and text word2vec files.
//
// movierec uses gonum's pure Go BLAS by default. Building with the
// netlib tag switches to gonum's C BLAS binding, which can give nice
// performance improvements when linked against an optimized BLAS. The
// binding can be configured using CGO flags. For instance, to link
// against OpenBLAS on Linux:
//
//	CGO_LDFLAGS="-L/path/to/OpenBLAS -lopenblas" go install -tags netlib ./...
//
// or Accelerate on OS X:
//
//	CGO_LDFLAGS="-framework Accelerate" go install -tags netlib ./...
package movierec
