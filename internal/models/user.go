package models

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// User owns places. Password always holds a bcrypt hash, never the plain text.
type User struct {
	Base
	Email     string `json:"email" db:"email"`
	Password  string `json:"password" db:"password"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// NewUser builds a user and hashes the given password.
func NewUser(email, password string) (*User, error) {
	u := &User{Base: newBase(), Email: email}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

func (*User) Kind() Kind { return KindUser }

func (u *User) Clone() Entity {
	c := *u
	return &c
}

// SetPassword replaces the stored hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}
