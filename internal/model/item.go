// Package model holds the records persisted by the repositories and the
// envelopes returned to API clients.
package model

import "fmt"

// Item is the stored record. ID is assigned by storage on creation and
// never changes afterwards.
type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

func (i Item) String() string {
	return fmt.Sprintf("Item [%d]: %s - %s", i.ID, i.Name, i.Description)
}

// Message is the body of informational responses such as a successful
// delete or the root greeting.
type Message struct {
	Message string `json:"message"`
}
