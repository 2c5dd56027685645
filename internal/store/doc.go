// Package store provides the persistence layer for gitmsg.
//
// The package defines the [Store] interface, which holds messages and
// tracked repositories and nothing else: it has no business logic and never
// talks to GitHub. Two backends implement it:
//   - SQLite (default), in the sqlite subpackage, with embedded migrations
//   - bbolt, in [Bolt], for a single-file key/value database
//
// # Lifecycle
//
// Use [Open] once at process start and pass the handle down explicitly:
//
//	db, err := store.Open(ctx, cfg.StoreDriver, cfg.DBPath)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
// # Ordering
//
// Listings are newest first: messages by timestamp, repositories by
// creation time, ties broken by descending ID.
//
// # Versions
//
// UpdateMessageVersion is a compare-and-set: it only writes when the
// message has no version yet, so concurrent sweeps cannot overwrite each
// other and updates on different rows never contend.
package store
