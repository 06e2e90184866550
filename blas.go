package movierec

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

var impl blas.Float32Level1 = gonum.Implementation{}

// UseBLAS replaces the level-1 BLAS implementation used for vector
// operations. It must not be called while similarities are being
// computed.
func UseBLAS(b blas.Float32Level1) {
	impl = b
}
