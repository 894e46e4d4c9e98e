// Package istty answers whether a file descriptor is attached to a terminal
// on platforms x/term does not reach.
package istty

// IsTerminal reports whether fd refers to a terminal device.
func IsTerminal(fd int) bool {
	if fd < 0 {
		return false
	}
	return isTerminal(fd)
}
