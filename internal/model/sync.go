package model

// SyncOutcome categorizes the result of a single message sync.
type SyncOutcome int

const (
	SyncSkipped SyncOutcome = iota // Nothing to do, not an error
	SyncSynced                     // Remote write succeeded
	SyncFailed                     // Remote write failed, left for the next sweep
)

func (o SyncOutcome) String() string {
	switch o {
	case SyncSkipped:
		return "skipped"
	case SyncSynced:
		return "synced"
	case SyncFailed:
		return "failed"
	}
	return "unknown"
}

// Skip reasons reported on a skipped SyncResult.
const (
	SkipNoRepository      = "no repository"
	SkipDanglingReference = "repository not found"
	SkipAlreadySynced     = "already synced"
	SkipSecretDetected    = "secret detected"
)

// SyncResult is returned by a single message sync.
type SyncResult struct {
	MessageID int64
	Outcome   SyncOutcome

	// Version is the blob SHA, set only when Outcome is SyncSynced
	Version string

	// Reason explains a skip
	Reason string

	// Err is the remote failure, set only when Outcome is SyncFailed
	Err error
}

// VersionPtr returns the version as an optional value.
func (r SyncResult) VersionPtr() *string {
	if r.Outcome != SyncSynced || r.Version == "" {
		return nil
	}
	v := r.Version
	return &v
}

// SweepReport summarizes one pass over unsynchronized messages.
type SweepReport struct {
	Success bool `json:"success"`
	Pending int  `json:"pending"`
	Synced  int  `json:"synced"`
	Skipped int  `json:"skipped"`
	Failed  int  `json:"failed"`
}

// Add counts a single message result.
func (r *SweepReport) Add(res SyncResult) {
	switch res.Outcome {
	case SyncSynced:
		r.Synced++
	case SyncFailed:
		r.Failed++
	default:
		r.Skipped++
	}
}
