package ports

// PasswordHasher produces the one-way hash stored when a temporary password
// is issued. Verification belongs to the platform's sign-in service, which
// reads the same column; the ledger only writes it.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
