package diagnose

import "runtime"

// Resolver "host not found" codes, one named entry per platform.
const (
	// WSAHOST_NOT_FOUND
	HostNotFoundWindows = 11001
	// EAI_NONAME from glibc/musl netdb.h
	HostNotFoundLinux = -2
	// EAI_NONAME from the BSD and Bionic netdb.h
	HostNotFoundBSD = 8
)

// hostNotFound is keyed by runtime.GOOS. It is not guarded; Register
// entries from init functions only.
var hostNotFound = map[string]int{
	"windows":   HostNotFoundWindows,
	"linux":     HostNotFoundLinux,
	"android":   HostNotFoundBSD,
	"darwin":    HostNotFoundBSD,
	"ios":       HostNotFoundBSD,
	"freebsd":   HostNotFoundBSD,
	"netbsd":    HostNotFoundBSD,
	"openbsd":   HostNotFoundBSD,
	"dragonfly": HostNotFoundBSD,
}

// Register adds or replaces the host-not-found code for a platform.
func Register(platform string, code int) {
	hostNotFound[platform] = code
}

// HostNotFound returns the registered host-not-found code for platform.
func HostNotFound(platform string) (int, bool) {
	code, ok := hostNotFound[platform]
	return code, ok
}

// ForPlatform returns a classifier bound to the platform's current table
// entry. Later Register calls do not affect an existing classifier.
func ForPlatform(platform string) ErrorClassifier {
	code, ok := HostNotFound(platform)
	return classifier{platform: platform, hostNotFound: code, hasHostNotFound: ok}
}

// Default returns the classifier for the running platform.
func Default() ErrorClassifier {
	return ForPlatform(runtime.GOOS)
}
