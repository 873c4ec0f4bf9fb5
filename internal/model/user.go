package model

// User is a registered account as stored in the users collection.
type User struct {
	Name           string `bson:"name"`
	Email          string `bson:"email"`
	PasswordDigest string `bson:"password"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email_tld"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_tld"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// MessageResponse is the body of write operations that return no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the access token issued on a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
