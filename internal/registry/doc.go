// Package registry is the in-memory view over the projects section of the
// settings document.
//
// Projects live in groups: a group name maps to project names, and each
// project name maps to a configs.ProjectRecord. Lookups return a Project,
// which is a copy of the record decorated with its name and group; the
// decoration never reaches the persisted document.
//
// Every mutation builds the complete next projects section on a copy, hands
// the whole document to the store once, and swaps the copy in only after the
// store accepted it. A failed save therefore leaves the registry exactly as it
// was before the call.
//
// A bare-name lookup that matches more than one group is handed to a
// Resolver; see package resolve.
package registry
