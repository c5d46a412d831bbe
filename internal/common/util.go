package common

// WipeByteArray overwrites b with zeros. Passwords are held as byte slices so
// they can be wiped once a login attempt is over. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
