package auth

// Identity is the caller identity passed explicitly to protected service
// operations. A zero Identity means an anonymous caller.
type Identity struct {
	UserID   uint
	Username string
}

func (id Identity) Valid() bool {
	return id.UserID != 0
}
