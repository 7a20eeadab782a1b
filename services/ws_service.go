package services

import (
	"encoding/json"
	"log"

	"roomops/models"

	"github.com/olahol/melody"
)

// WsNotifier đẩy sự kiện nghiệp vụ cho các client websocket đang kết nối.
// Lễ tân và nhân viên dọn phòng theo dõi bảng trạng thái realtime qua đây.
type WsNotifier struct {
	m *melody.Melody
}

// NewWsNotifier tạo instance mới của WsNotifier
func NewWsNotifier(m *melody.Melody) *WsNotifier {
	return &WsNotifier{m: m}
}

type wsEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// NotifyAssignment broadcast sự kiện nhiệm vụ dọn phòng
func (w *WsNotifier) NotifyAssignment(event string, assignment *models.Assignment) {
	w.broadcast(wsEvent{Event: event, Data: assignment})
}

// NotifyRoomStatus broadcast trạng thái phòng sau khi thay đổi
func (w *WsNotifier) NotifyRoomStatus(status *models.RoomStatus) {
	w.broadcast(wsEvent{Event: "room_status_changed", Data: status})
}

func (w *WsNotifier) broadcast(event wsEvent) {
	if w.m == nil {
		return
	}
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Lỗi serialize sự kiện websocket: %v", err)
		return
	}
	if err := w.m.Broadcast(message); err != nil {
		log.Printf("❌ Lỗi broadcast websocket: %v", err)
	}
}
