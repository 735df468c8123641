package userservice

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var bcryptCost = 12

var (
	dummyMu   sync.Mutex
	dummyHash []byte
)

// dummyPasswordHash is compared against when the email is unknown so that both
// login failure paths cost one bcrypt comparison at bcryptCost.
func dummyPasswordHash() []byte {
	dummyMu.Lock()
	defer dummyMu.Unlock()

	cost, err := bcrypt.Cost(dummyHash)
	if err != nil || cost != bcryptCost {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	}

	return dummyHash
}

func (p *Password) set(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	if err != nil {
		return err
	}

	p.Plain = pwd
	p.hash = hash

	return nil
}

func (p *Password) compare(pwd string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.hash, []byte(pwd))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}
