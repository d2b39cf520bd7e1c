package realtime

// State состояние соединения с брокером
type State int32

const (
	// Disconnected соединения нет (начальное состояние или потеря связи)
	Disconnected State = iota
	// Connecting идёт установка соединения
	Connecting
	// Connected соединение установлено, подписки активны
	Connected
	// Error последняя попытка подключения завершилась ошибкой
	Error
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
