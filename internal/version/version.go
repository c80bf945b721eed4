// ABOUTME: Build identity constants
// ABOUTME: Reported by the CLI's -version flag
package version

const (
	Version = "0.1.0"
	Product = "aacpipe"
)
