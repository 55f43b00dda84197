package models

// ErrorResponse is the JSON body returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body of operations that return no entity,
// such as deletions.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse exposes the build metadata of the running server.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
