package model

import roomModel "gymroom/internal/domains/room/model"

const (
	EntityName = "trainbook"

	// Keys the backend accepts on create and update.
	FieldID       = "ID"
	FieldRoomID   = "RoomID"
	FieldDriverID = "DriverID"
	FieldStatus   = "Status"

	// FieldEnvelope wraps the booking in create and update responses.
	FieldEnvelope = "trainbook"
)

// Trainbook is a driver's reservation of a room. Room is set when the backend
// embeds it.
type Trainbook struct {
	ID       int
	RoomID   int
	DriverID int
	Status   string
	Room     *roomModel.Room
}
