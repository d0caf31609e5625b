package ports

import "scriptshim/internal/core/domain/profile"

// ProfileProvider sources the launcher profile, typically from a
// configuration file next to the shim executable.
type ProfileProvider interface {
	// Profile loads the profile. A missing configuration source yields
	// the default profile, not an error.
	Profile() (profile.Profile, error)
}
