package common

// WipeByteArray overwrites the slice with zeros. Used to drop passwords from
// memory as soon as they have been sent. Nil slices are ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
