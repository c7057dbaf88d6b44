//go:build linux && cgo

package libc

/*
#include <gnu/libc-version.h>
*/
import "C"

import "context"

// sourceGlibcAccessor names the native accessor used on cgo builds.
const sourceGlibcAccessor = "gnu_get_libc_version"

// glibcVersion returns the version of the glibc this process is linked
// against, straight from the library's own accessor. The string is static
// data inside glibc, so the call cannot fail and needs no child process.
func glibcVersion(_ context.Context) (string, string, error) {
	return C.GoString(C.gnu_get_libc_version()), sourceGlibcAccessor, nil
}
