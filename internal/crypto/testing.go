package crypto

// SetDefaultProviderForTesting replaces the resolved default provider.
// This is intended for testing only. Returns a function to restore the original.
// Since this package is internal, this function cannot be accessed by external code.
func SetDefaultProviderForTesting(p Provider, err error) func() {
	DefaultProvider()
	origProvider, origErr := defaultProvider, defaultErr
	defaultProvider, defaultErr = p, err
	return func() { defaultProvider, defaultErr = origProvider, origErr }
}
