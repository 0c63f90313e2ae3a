package model

import "golang.org/x/crypto/bcrypt"

// User keeps only the bcrypt hash of the password.
type User struct {
	ID       string `json:"id"       bson:"_id"`
	Username string `json:"username" bson:"username"`
	Password string `json:"-"        bson:"password"`
}

type UserInput struct {
	Username string
	Password string
}

// NewUser hashes the input password for storage.
func NewUser(id string, in UserInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return User{ID: id, Username: in.Username, Password: string(hash)}, nil
}

func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
