// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-task-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgUserRegistered is returned on successful account creation.
	MsgUserRegistered = "User registered"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidCredentials is returned when the supplied username/password
	// combination does not match any existing user record. The same message
	// covers an unknown username and a wrong password so that account
	// existence cannot be probed.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgLoginSuccessful accompanies the session token in a login response.
	MsgLoginSuccessful = "Login successful"

	// MsgTitleRequired is returned when a task create or update carries an
	// empty or missing title.
	MsgTitleRequired = "Title is required"

	// MsgTitleTooLong is returned when the task title exceeds the column
	// limit.
	MsgTitleTooLong = "Title is too long"

	// MsgRegistrationDataRequired is returned when a registration request
	// omits the username or the password.
	MsgRegistrationDataRequired = "Username and password are required"

	// MsgTaskAdded is returned on successful task creation.
	MsgTaskAdded = "Task added successfully"

	// MsgTaskUpdated is returned on successful task update.
	MsgTaskUpdated = "Task updated successfully"

	// MsgTaskDeleted is returned on successful task deletion.
	MsgTaskDeleted = "Task deleted successfully"

	// MsgTaskNotFound is returned when an update or delete targets a task
	// that does not exist or belongs to a different user. The two cases are
	// indistinguishable on purpose.
	MsgTaskNotFound = "Task not found or not authorized"

	// MsgAccessDenied is returned when a protected endpoint is called
	// without an "Authorization" header.
	MsgAccessDenied = "Access denied"

	// MsgInvalidToken is returned when the bearer token is present but
	// expired, forged, malformed, or otherwise unverifiable.
	MsgInvalidToken = "Invalid token"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
