package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageKind тип уведомления об изменении на сервере
type MessageKind = string

// Типы сообщений, которые сервер публикует в брокер
const (
	KindAddBook     MessageKind = "ADD_BOOK"
	KindUpdateBook  MessageKind = "UPDATE_BOOK"
	KindDeleteBook  MessageKind = "DELETE_BOOK"
	KindAddBill     MessageKind = "ADD_BILL"
	KindUpdateBill  MessageKind = "UPDATE_BILL"
	KindDeleteBill  MessageKind = "DELETE_BILL"
	KindUploadImage MessageKind = "UPLOAD_IMAGE"
	KindDeleteImage MessageKind = "DELETE_IMAGE"
)

// AckSuffix добавляется к типу сообщения в подтверждении
const AckSuffix = "_ACK"

// AckKind returns the acknowledgment kind for kind.
func AckKind(kind MessageKind) MessageKind {
	return kind + AckSuffix
}

// IsAck reports whether kind is an acknowledgment.
func IsAck(kind MessageKind) bool {
	return strings.HasSuffix(kind, AckSuffix)
}

// SyncMessage конверт уведомления, передаваемого через брокер.
// Content содержит JSON сущности (для add/update) или её ID (для delete).
type SyncMessage struct {
	Timestamp   time.Time       `json:"timestamp"`
	ID          string          `json:"id"`
	Type        MessageKind     `json:"type"`
	BookID      string          `json:"book_id,omitempty"`
	SenderID    string          `json:"sender_id,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	ReceiverIDs []string        `json:"receiver_ids,omitempty"`
}

// NewSyncMessage builds a message with a fresh id and the content marshaled to JSON.
func NewSyncMessage(kind MessageKind, bookID, senderID string, content any) (SyncMessage, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return SyncMessage{}, err
	}
	return SyncMessage{
		ID:        uuid.NewString(),
		Type:      kind,
		BookID:    bookID,
		SenderID:  senderID,
		Content:   raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

// UnmarshalJSON accepts both "type" and the older "kind" field name.
func (m *SyncMessage) UnmarshalJSON(data []byte) error {
	type plain SyncMessage
	aux := struct {
		*plain
		Kind string `json:"kind"`
	}{plain: (*plain)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if m.Type == "" {
		m.Type = aux.Kind
	}
	return nil
}

// ContentID extracts an entity id from Content.
// Для delete-сообщений Content может быть строкой "id" или объектом {"_id": "..."}.
func (m *SyncMessage) ContentID() (string, bool) {
	if len(m.Content) == 0 {
		return "", false
	}

	var id string
	if err := json.Unmarshal(m.Content, &id); err == nil {
		return id, id != ""
	}

	var obj struct {
		ID  string `json:"_id"`
		Alt string `json:"id"`
	}
	if err := json.Unmarshal(m.Content, &obj); err != nil {
		return "", false
	}
	if obj.ID == "" {
		obj.ID = obj.Alt
	}
	return obj.ID, obj.ID != ""
}
