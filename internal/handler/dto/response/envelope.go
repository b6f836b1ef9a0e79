package response

// Envelope is the body shape shared by every successful endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
