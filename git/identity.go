package git

// Identity is a commit author, possibly known under several names for
// the same email
type Identity struct {
	Email string
	Names []string
}

// Matches reports whether any of the given names or emails identify this
// author
func (id Identity) Matches(identities []string) bool {
	for _, candidate := range identities {
		if candidate == id.Email {
			return true
		}
		for _, name := range id.Names {
			if candidate == name {
				return true
			}
		}
	}
	return false
}

// ShortHash abbreviates a commit hash to n characters
func ShortHash(hash string, n int) string {
	if len(hash) <= n {
		return hash
	}
	return hash[:n]
}
