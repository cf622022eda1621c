package dto

import (
	"gymroom/internal/domains/room/model"
	"gymroom/shared/constant"
)

const (
	ActionBook   = "book"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionCreate = "create"
)

// RowActions lists what a role may do with a single room. Booking is open to
// everyone, editing and deleting are for admins.
func RowActions(role string) []string {
	if role == constant.RoleAdmin {
		return []string{ActionBook, ActionEdit, ActionDelete}
	}

	return []string{ActionBook}
}

func PageActions(role string) []string {
	if role == constant.RoleAdmin {
		return []string{ActionCreate}
	}

	return []string{}
}

type RoomRow struct {
	RoomResponse
	Actions []string `json:"actions"`
}

// RoomListResponse is the room list screen. Empty is set with the "no data"
// text when there is nothing to show.
type RoomListResponse struct {
	Rooms     []RoomRow `json:"rooms"`
	Empty     bool      `json:"empty"`
	EmptyText string    `json:"empty_text,omitempty"`
	Actions   []string  `json:"actions"`
}

func NewRoomListResponse(rooms []model.Room, role string) RoomListResponse {
	res := RoomListResponse{
		Rooms:   make([]RoomRow, len(rooms)),
		Actions: PageActions(role),
	}

	for i, room := range rooms {
		res.Rooms[i].FromModel(room)
		res.Rooms[i].Actions = RowActions(role)
	}

	if len(rooms) == 0 {
		res.Empty = true
		res.EmptyText = constant.PlaceholderNoData
	}

	return res
}

// RoomDetailResponse is the booking screen for one room.
type RoomDetailResponse struct {
	State string        `json:"state"`
	Room  *RoomResponse `json:"room,omitempty"`
}

func NewRoomDetailResponse(state string, room model.Room, ready bool) RoomDetailResponse {
	res := RoomDetailResponse{State: state}

	if ready {
		res.Room = &RoomResponse{}
		res.Room.FromModel(room)
	}

	return res
}
