package create_reservation

import "github.com/google/uuid"

// UUIDTokens random UUID v4 tokens for production
type UUIDTokens struct{}

func (UUIDTokens) NewToken() string {
	return uuid.NewString()
}
