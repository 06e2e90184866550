//go:build netlib

package movierec

import "gonum.org/v1/netlib/blas/netlib"

func init() {
	UseBLAS(netlib.Implementation{})
}
