package dto

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	roomDto "gymroom/internal/domains/room/model/dto"
	"gymroom/internal/domains/trainbook/model"
	"gymroom/shared/constant"
	gDto "gymroom/shared/dto"
	"gymroom/shared/failure"

	"github.com/rs/zerolog/log"
)

// CreateTrainbookRequest is the body posted to the backend for a new booking.
type CreateTrainbookRequest struct {
	RoomID   int    `json:"RoomID"   validate:"required,gt=0"`
	DriverID int    `json:"DriverID" validate:"required,gt=0"`
	Status   string `json:"Status"   validate:"required"`
}

func NewCreateTrainbookRequest(roomID, driverID int) CreateTrainbookRequest {
	return CreateTrainbookRequest{
		RoomID:   roomID,
		DriverID: driverID,
		Status:   constant.BookingStatusConfirmed,
	}
}

func (c *CreateTrainbookRequest) ToModel() model.Trainbook {
	return model.Trainbook{
		RoomID:   c.RoomID,
		DriverID: c.DriverID,
		Status:   c.Status,
	}
}

// UpdateTrainbookRequest only carries the fields being changed.
type UpdateTrainbookRequest struct {
	RoomID   int    `json:"RoomID"   validate:"omitempty,gt=0"`
	DriverID int    `json:"DriverID" validate:"omitempty,gt=0"`
	Status   string `json:"Status"   validate:"omitempty,max=50"`
}

type TrainbookResponse struct {
	ID       int    `json:"id"`
	RoomID   int    `json:"room_id"`
	DriverID int    `json:"driver_id"`
	Status   string `json:"status"`
	RoomName string `json:"room_name,omitempty"`
}

func (r *TrainbookResponse) FromModel(m model.Trainbook) {
	r.ID = m.ID
	r.RoomID = m.RoomID
	r.DriverID = m.DriverID
	r.Status = m.Status

	if m.Room != nil {
		r.RoomName = m.Room.Name
	}
}

func FromModels(trainbooks []model.Trainbook) []TrainbookResponse {
	res := make([]TrainbookResponse, len(trainbooks))
	for i, m := range trainbooks {
		res[i].FromModel(m)
	}

	return res
}

// SortTrainbooks orders items in place by one of the response fields. An
// empty sortBy keeps the backend order.
func SortTrainbooks(items []TrainbookResponse, sortBy, sortDir string) error {
	var compare func(a, b TrainbookResponse) int

	switch sortBy {
	case "":
		return nil
	case "id":
		compare = func(a, b TrainbookResponse) int { return cmp.Compare(a.ID, b.ID) }
	case "room_id":
		compare = func(a, b TrainbookResponse) int { return cmp.Compare(a.RoomID, b.RoomID) }
	case "driver_id":
		compare = func(a, b TrainbookResponse) int { return cmp.Compare(a.DriverID, b.DriverID) }
	case "status":
		compare = func(a, b TrainbookResponse) int { return cmp.Compare(a.Status, b.Status) }
	default:
		return failure.BadRequestFromString(fmt.Sprintf("cannot sort trainbooks by %q", sortBy))
	}

	if sortDir == gDto.SortDirDesc {
		asc := compare
		compare = func(a, b TrainbookResponse) int { return asc(b, a) }
	}

	slices.SortStableFunc(items, compare)

	return nil
}

// trainbookPayload accepts both the snake_case keys the backend stores and
// the keys the booking was submitted with.
type trainbookPayload struct {
	ID          int            `json:"ID"`
	RoomID      int            `json:"room_id"`
	RoomIDAlt   int            `json:"RoomID"`
	DriverID    *int           `json:"driver_id"`
	DriverIDAlt int            `json:"DriverID"`
	Status      string         `json:"status"`
	StatusAlt   string         `json:"Status"`
	Room        map[string]any `json:"room"`
}

func (p trainbookPayload) toModel() model.Trainbook {
	m := model.Trainbook{
		ID:       p.ID,
		RoomID:   p.RoomID,
		DriverID: p.DriverIDAlt,
		Status:   p.Status,
	}

	if m.RoomID == 0 {
		m.RoomID = p.RoomIDAlt
	}

	if p.DriverID != nil {
		m.DriverID = *p.DriverID
	}

	if m.Status == constant.Empty {
		m.Status = p.StatusAlt
	}

	if p.Room != nil {
		room, err := roomDto.Normalize(p.Room)
		if err != nil {
			log.Warn().Err(err).Int("trainbook_id", p.ID).Msg("ignoring malformed embedded room")
		} else if room.ID > 0 {
			m.Room = &room
		}
	}

	return m
}

// DecodeTrainbook reads a booking from the "trainbook" envelope, or from the
// body itself when there is none.
func DecodeTrainbook(body []byte) (model.Trainbook, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return model.Trainbook{}, failure.MalformedPayload("trainbook body must be an object") //nolint:wrapcheck
	}

	raw := json.RawMessage(body)
	if inner, found := envelope[model.FieldEnvelope]; found {
		raw = inner
	}

	var payload trainbookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return model.Trainbook{}, failure.MalformedPayload("trainbook has an unexpected shape") //nolint:wrapcheck
	}

	return payload.toModel(), nil
}

func DecodeTrainbooks(body []byte) ([]model.Trainbook, error) {
	var payloads []trainbookPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, failure.MalformedPayload("trainbook list must be an array of bookings") //nolint:wrapcheck
	}

	trainbooks := make([]model.Trainbook, len(payloads))
	for i, p := range payloads {
		trainbooks[i] = p.toModel()
	}

	return trainbooks, nil
}
