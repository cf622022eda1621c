package model

import "fmt"

const (
	EntityName = "room"

	FieldID              = "ID"
	FieldIDLower         = "id"
	FieldName            = "room_name"
	FieldCapacity        = "capacity"
	FieldCurrentBookings = "current_bookings"
	FieldTrainerID       = "trainer_id"
	FieldDetail          = "detail"
	FieldTrainer         = "trainer"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"

	// FieldEnvelope wraps the room object in room-by-id responses.
	FieldEnvelope = "data"
)

// Status is the occupancy classification of a room.
type Status string

const (
	StatusFull              Status = "Full"
	StatusPartiallyOccupied Status = "PartiallyOccupied"
	StatusFree              Status = "Free"
)

// ClassifyStatus derives occupancy from the counts. Full wins when
// currentBookings reaches capacity, including a zero capacity.
func ClassifyStatus(capacity, currentBookings int) Status {
	switch {
	case currentBookings >= capacity:
		return StatusFull
	case currentBookings > 0:
		return StatusPartiallyOccupied
	default:
		return StatusFree
	}
}

// Trainer is the trainer embedded in a room by value.
type Trainer struct {
	FirstName string
	LastName  string
}

func (t Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

type Room struct {
	ID              int
	Name            string
	Capacity        int
	CurrentBookings int
	TrainerID       int
	Detail          string
	Trainer         Trainer
}

// Status is computed from the counts on every call.
func (r Room) Status() Status {
	return ClassifyStatus(r.Capacity, r.CurrentBookings)
}

// Occupancy renders "current/capacity".
func (r Room) Occupancy() string {
	return fmt.Sprintf("%d/%d", r.CurrentBookings, r.Capacity)
}
