package models

// SyncStatus флаг синхронизации записи ("грязный" бит).
// Любое локальное изменение сбрасывает его в NotSynced.
type SyncStatus int

const (
	// NotSynced запись изменена локально и ещё не подтверждена сервером
	NotSynced SyncStatus = 0
	// Synced запись совпадает с подтверждённым состоянием сервера
	Synced SyncStatus = 1
)

// String returns a human readable status name.
func (s SyncStatus) String() string {
	switch s {
	case Synced:
		return "synced"
	case NotSynced:
		return "not_synced"
	default:
		return "unknown"
	}
}

// EntityType identifies a syncable collection in the local store.
type EntityType string

// EntityType константы для коллекций, которые синхронизируются с сервером
const (
	EntityBook  EntityType = "book"
	EntityBill  EntityType = "bill"
	EntityImage EntityType = "image"
)

// EntityTypes lists syncable collections in dependency order:
// a bill references a book, an image references a bill.
var EntityTypes = []EntityType{EntityBook, EntityBill, EntityImage}
