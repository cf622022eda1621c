package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"gymroom/internal/domains/room/model"
	"gymroom/shared/constant"
	"gymroom/shared/failure"
)

// Normalize maps a decoded backend room object onto a fully populated Room.
// Absent counts become 0, an absent trainer becomes a placeholder trainer,
// and the status is never read from the payload.
func Normalize(payload any) (model.Room, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return model.Room{}, failure.MalformedPayload(fmt.Sprintf("room payload must be an object, got %s", kindOf(payload))) //nolint:wrapcheck
	}

	var (
		room model.Room
		err  error
	)

	idKey := model.FieldID
	if _, found := obj[idKey]; !found {
		idKey = model.FieldIDLower
	}

	if room.ID, err = intField(obj, idKey); err != nil {
		return model.Room{}, err
	}

	if room.Capacity, err = intField(obj, model.FieldCapacity); err != nil {
		return model.Room{}, err
	}

	if room.CurrentBookings, err = intField(obj, model.FieldCurrentBookings); err != nil {
		return model.Room{}, err
	}

	if room.TrainerID, err = intField(obj, model.FieldTrainerID); err != nil {
		return model.Room{}, err
	}

	if room.Name, err = stringField(obj, model.FieldName, constant.PlaceholderNoData); err != nil {
		return model.Room{}, err
	}

	if room.Detail, err = stringField(obj, model.FieldDetail, constant.PlaceholderNoDetail); err != nil {
		return model.Room{}, err
	}

	if room.Trainer, err = normalizeTrainer(obj[model.FieldTrainer]); err != nil {
		return model.Room{}, err
	}

	return room, nil
}

// roomKeys are the fields that mark a flat body as a room.
var roomKeys = []string{
	model.FieldID,
	model.FieldIDLower,
	model.FieldName,
	model.FieldCapacity,
	model.FieldCurrentBookings,
	model.FieldTrainerID,
	model.FieldDetail,
	model.FieldTrainer,
}

// DecodeRoom parses a room-by-id body. The room is read from the "data"
// envelope when present, which must then be an object. A flat body is taken
// as the room only when it carries at least one room field.
func DecodeRoom(body []byte) (model.Room, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.Room{}, failure.MalformedPayload("room body is not valid JSON") //nolint:wrapcheck
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return model.Room{}, failure.MalformedPayload(fmt.Sprintf("room body must be an object, got %s", kindOf(payload))) //nolint:wrapcheck
	}

	if inner, found := obj[model.FieldEnvelope]; found {
		if _, isObject := inner.(map[string]any); !isObject {
			return model.Room{}, failure.MalformedPayload(fmt.Sprintf("room %s must be an object, got %s", model.FieldEnvelope, kindOf(inner))) //nolint:wrapcheck
		}

		return Normalize(inner)
	}

	hasRoomKey := slices.ContainsFunc(roomKeys, func(key string) bool {
		_, found := obj[key]

		return found
	})

	if !hasRoomKey {
		return model.Room{}, failure.MalformedPayload("room body carries no room") //nolint:wrapcheck
	}

	return Normalize(obj)
}

// DecodeRooms parses a room list body, which must be a JSON array of rooms.
// Order is preserved.
func DecodeRooms(body []byte) ([]model.Room, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, failure.MalformedPayload("room list body is not valid JSON") //nolint:wrapcheck
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, failure.MalformedPayload(fmt.Sprintf("room list must be an array, got %s", kindOf(payload))) //nolint:wrapcheck
	}

	rooms := make([]model.Room, 0, len(items))

	for index, item := range items {
		room, err := Normalize(item)
		if err != nil {
			return nil, fmt.Errorf("room list item %d: %w", index, err)
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

func normalizeTrainer(value any) (model.Trainer, error) {
	trainer := model.Trainer{
		FirstName: constant.PlaceholderUnspecified,
		LastName:  constant.PlaceholderUnspecified,
	}

	if value == nil {
		return trainer, nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return model.Trainer{}, failure.MalformedPayload(fmt.Sprintf("trainer must be an object, got %s", kindOf(value))) //nolint:wrapcheck
	}

	var err error

	if trainer.FirstName, err = stringField(obj, model.FieldFirstName, constant.PlaceholderUnspecified); err != nil {
		return model.Trainer{}, err
	}

	if trainer.LastName, err = stringField(obj, model.FieldLastName, constant.PlaceholderUnspecified); err != nil {
		return model.Trainer{}, err
	}

	return trainer, nil
}

func intField(obj map[string]any, key string) (int, error) {
	value, found := obj[key]
	if !found || value == nil {
		return 0, nil
	}

	var number float64

	switch v := value.(type) {
	case float64:
		number = v
	case int:
		number = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, failure.MalformedPayload(fmt.Sprintf("%s must be a number", key)) //nolint:wrapcheck
		}

		number = f
	default:
		return 0, failure.MalformedPayload(fmt.Sprintf("%s must be a number, got %s", key, kindOf(value))) //nolint:wrapcheck
	}

	if number < 0 || number != math.Trunc(number) || number > math.MaxInt32 {
		return 0, failure.MalformedPayload(fmt.Sprintf("%s must be a non-negative integer", key)) //nolint:wrapcheck
	}

	return int(number), nil
}

func stringField(obj map[string]any, key, fallback string) (string, error) {
	value, found := obj[key]
	if !found || value == nil {
		return fallback, nil
	}

	str, ok := value.(string)
	if !ok {
		return constant.Empty, failure.MalformedPayload(fmt.Sprintf("%s must be a string, got %s", key, kindOf(value))) //nolint:wrapcheck
	}

	if str == constant.Empty {
		return fallback, nil
	}

	return str, nil
}

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}

type TrainerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RoomResponse struct {
	ID              int             `json:"id"`
	RoomName        string          `json:"room_name"`
	Capacity        int             `json:"capacity"`
	CurrentBookings int             `json:"current_bookings"`
	Occupancy       string          `json:"occupancy"`
	TrainerID       int             `json:"trainer_id"`
	Trainer         TrainerResponse `json:"trainer"`
	TrainerName     string          `json:"trainer_name"`
	Detail          string          `json:"detail"`
	Status          model.Status    `json:"status"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomName = room.Name
	r.Capacity = room.Capacity
	r.CurrentBookings = room.CurrentBookings
	r.Occupancy = room.Occupancy()
	r.TrainerID = room.TrainerID
	r.Trainer = TrainerResponse{
		FirstName: room.Trainer.FirstName,
		LastName:  room.Trainer.LastName,
	}
	r.TrainerName = room.Trainer.FullName()
	r.Detail = room.Detail
	r.Status = room.Status()
}

func FromModels(rooms []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res
}
