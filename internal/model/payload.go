package model

import "github.com/deppfellow/item-service/internal/validation"

// CreateItemPayload is the body of POST /items. Both fields are pointers so
// a missing or null field can be told apart from an empty string, which is
// a valid value.
type CreateItemPayload struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (p *CreateItemPayload) Validate() error {
	return validation.Struct(p)
}

// ItemIDPayload addresses a single item through the path.
type ItemIDPayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *ItemIDPayload) Validate() error {
	return nil
}

// UpdateItemPayload combines the path id with a full replacement body.
type UpdateItemPayload struct {
	ID          int64   `param:"id" json:"-"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (p *UpdateItemPayload) Validate() error {
	return validation.Struct(p)
}

// EmptyPayload is used by routes that take no input.
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}
