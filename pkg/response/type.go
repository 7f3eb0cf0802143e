package response

// Messages written in error bodies.
const (
	MessageInternalServerError = "Internal Server Error"
	MessageTooManyRequests     = "Too Many Requests"
)

// ErrorResp is the JSON body of every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}

// StatusResp is the JSON body of the health, readiness and liveness probes.
type StatusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}
