// Package core holds the synchronization logic for gitmsg.
//
// A [Syncer] sits between request handlers and the two outer layers: the
// message store and the GitHub client. The store and the client never call
// each other; every flow goes through the Syncer.
//
// # Sync Operations
//
// Syncing a message writes messages/<id>.json into the message's repository
// and records the resulting blob SHA on the message:
//
//	result := syncer.SyncMessage(ctx, msg)
//	report, err := syncer.SyncAllPending(ctx)
//
// A single failed write never fails a sweep; the message stays pending and
// is retried on the next sweep. Only store errors abort a sweep.
//
// # Concurrency
//
// Each message is synced under a per-message lock and the stored version is
// written with a compare-and-set, so overlapping sweeps never write the same
// message twice.
package core
