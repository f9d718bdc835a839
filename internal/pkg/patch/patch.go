package patch

// Coalesce picks the override when one was supplied, the current value otherwise.
func Coalesce[T any](override *T, current T) T {
	if override == nil {
		return current
	}
	return *override
}
