package ports

// PasswordHasher produces and verifies salted, adaptive-cost password
// hashes. Salt and cost parameters travel embedded in the hash string;
// no operation exposes them separately.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
