package models

// MessageResponse is the uniform JSON body for every non-list response the
// API produces, success and failure alike. Errors never carry anything
// beyond the single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the body of a successful login: the confirmation message
// plus the signed bearer token the client presents on protected routes.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
