package response

// Envelope is the body shape shared by every successful response:
// {"success": true, "data": ..., "message": "..."}. Failures are written
// through pkg.AppError instead.

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}
