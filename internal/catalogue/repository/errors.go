package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToDecode = errors.New("failed to decode records")
)
