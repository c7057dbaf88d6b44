//go:build !linux

package report

// kernelRelease has no portable source outside Linux; the report simply
// omits the field.
func kernelRelease() string {
	return ""
}
