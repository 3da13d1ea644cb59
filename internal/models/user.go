// Package models defines the persistence and wire models shared by the
// repositories, services, and HTTP layer. JSON tags are the fixed camelCase
// contract the clients depend on.
package models

type User struct {
	ID        string
	Username  string
	PinHash   string
	CreatedAt Timestamp
}
