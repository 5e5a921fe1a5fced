// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler and calls repository methods to
// interact with the data. An absent record is passed up as found == false
// so the HTTP layer decides which 404 message to return.
package service
