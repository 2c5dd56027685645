// Package model defines the data structures shared by every gitmsg layer.
//
// # Message
//
// A [Message] is a short text posted by the user. The store assigns its ID
// and Timestamp. GitHash stays nil until the message has been mirrored to
// its repository; once set, the message is synchronized and the sweep never
// touches it again.
//
// # Repository
//
// A [Repository] is a GitHub repository tracked locally. The (Owner, Name)
// pair is unique: adding the same pair twice returns the existing record.
//
// # Errors
//
// The typed errors ([ValidationError], [NotFoundError], [RemoteWriteError],
// [StoreError]) are matched with errors.As by the HTTP layer and mapped to
// status codes.
package model
