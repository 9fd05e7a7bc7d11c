package auth

// Claims es la identidad verificada del caller.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
