package model

import (
	"time"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldMessage   = "message"
	FieldCreatedAt = "created_at"
)

// Contact is a message left through the contact form.
type Contact struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
