package runtime

// Must panics if err is non-nil. For startup wiring that cannot sensibly
// continue on failure.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
