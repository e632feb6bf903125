package entity

import "errors"

var (
	// ErrMissingID é retornado em update/delete sem id no corpo.
	ErrMissingID = errors.New("ID is required")

	// ErrNotFound é retornado quando nenhum registro tem o id informado.
	ErrNotFound = errors.New("record not found")
)
