// Package constraints provides type constraints for generic helpers.
package constraints

// Byteseq is satisfied by text held either as a string or as a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
