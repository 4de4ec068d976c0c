package dto

// UserResponse is the public representation of a user. It never carries the
// password hash.
type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Created  string `json:"created"`
}

// TokenResponse is the response body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
