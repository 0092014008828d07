// Package password envuelve bcrypt para contraseñas y product keys.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost coste bcrypt usado para contraseñas y product keys.
const Cost = 10

// ErrMismatch el valor no corresponde al hash.
var ErrMismatch = errors.New("password: no coincide")

// Hash genera el hash bcrypt del valor en texto plano.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password: valor vacío")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara el valor en texto plano con el hash almacenado.
func Verify(hash, plain string) error {
	if hash == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}
