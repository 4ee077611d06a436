package auth

// Claims representa la sesión simulada asociada a un token.
type Claims struct {
	UserID string
	Email  string
}
