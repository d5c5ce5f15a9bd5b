package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// OS is the closed set of supported host platforms
type OS string

const (
	OSMacOS       OS = "macos"
	OSUbuntu      OS = "ubuntu"
	OSUnsupported OS = "unsupported"
)

// osReleasePath is where Linux distributions identify themselves
const osReleasePath = "/etc/os-release"

// Info describes the detected host
type Info struct {
	OS         OS
	Kernel     string // uname sysname, e.g. "Darwin" or "Linux"
	Arch       string // GOARCH, e.g. "arm64" or "amd64"
	DistroID   string // ID= from os-release (linux only)
	DistroLike string // ID_LIKE= from os-release (linux only)
}

// Detect identifies the host OS from the kernel name and, on Linux,
// the contents of /etc/os-release. Exactly one of {macOS, Ubuntu/Debian,
// unsupported} is returned; callers treat unsupported as fatal.
func Detect() (Info, error) {
	var uts unix.Utsname
	kernel := runtime.GOOS
	if err := unix.Uname(&uts); err == nil {
		kernel = unix.ByteSliceToString(uts.Sysname[:])
	}

	return DetectFrom(afero.NewOsFs(), kernel, runtime.GOARCH)
}

// DetectFrom is the testable core of Detect: it classifies a host given a
// filesystem, kernel name, and architecture.
func DetectFrom(fs afero.Fs, kernel, arch string) (Info, error) {
	info := Info{
		OS:     OSUnsupported,
		Kernel: kernel,
		Arch:   arch,
	}

	switch strings.ToLower(kernel) {
	case "darwin":
		info.OS = OSMacOS
		return info, nil
	case "linux":
		release, err := afero.ReadFile(fs, osReleasePath)
		if err != nil {
			return info, fmt.Errorf("read %s: %w", osReleasePath, err)
		}

		fields := ParseOSRelease(string(release))
		info.DistroID = fields["ID"]
		info.DistroLike = fields["ID_LIKE"]

		if isDebianFamily(info.DistroID, info.DistroLike) {
			info.OS = OSUbuntu
			return info, nil
		}

		return info, fmt.Errorf("unsupported Linux distribution %q", info.DistroID)
	default:
		return info, fmt.Errorf("unsupported operating system %q", kernel)
	}
}

// isDebianFamily reports whether the distro uses apt
func isDebianFamily(id, like string) bool {
	if id == "ubuntu" || id == "debian" {
		return true
	}
	for _, l := range strings.Fields(like) {
		if l == "ubuntu" || l == "debian" {
			return true
		}
	}
	return false
}

// ParseOSRelease parses the KEY=value pairs of an os-release file.
// Values may be quoted; comments and blank lines are skipped.
func ParseOSRelease(content string) map[string]string {
	fields := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		value = strings.Trim(value, `"'`)
		fields[key] = value
	}

	return fields
}

// BrewPrefix returns the Homebrew installation prefix for the given
// architecture. Apple silicon moved it out of /usr/local.
func BrewPrefix(arch string) string {
	if arch == "arm64" {
		return "/opt/homebrew"
	}
	return "/usr/local"
}

// String implements fmt.Stringer with a human-readable platform name
func (o OS) String() string {
	switch o {
	case OSMacOS:
		return "macOS"
	case OSUbuntu:
		return "Ubuntu/Debian"
	default:
		return "unsupported"
	}
}
