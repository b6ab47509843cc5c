package security

// EnforceSecurityDirectory guards the writes on categories, locations, schedules,
// open times and alerts. Reads are public.
type EnforceSecurityDirectory interface {
	EnforceSecurity
	WriteDirectory() error
}

type EnforceSecurityDirectoryImpl struct {
	EnforceSecurity
}

func (e *EnforceSecurityDirectoryImpl) WriteDirectory() error {
	return e.Superuser()
}
