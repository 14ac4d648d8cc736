package domain

// RegistryEntry is one library known to the package registry.
type RegistryEntry struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
