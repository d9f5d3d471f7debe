package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arthive/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse-battery")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.NoError(t, password.Verify("correct-horse-battery", hash))
	assert.ErrorIs(t, password.Verify("wrong-guess", hash), password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "some-hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("some-password", ""), password.ErrInvalidPassword)
}
