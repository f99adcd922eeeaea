package service

// Broadcaster pushes live assessment events to the admin console.
// Implemented by the WebSocket hub; services treat it as optional.
type Broadcaster interface {
	BroadcastToAdmins(event string, payload interface{})
}
