// Package handlers contains the business logic behind each eksutil command.
//
// Handlers load configuration, build the logger and platform clients, and
// call into the internal packages. Collaborators are held in package-level
// variables so tests can swap them out.
package handlers
