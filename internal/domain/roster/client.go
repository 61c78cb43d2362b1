package roster

import "context"

// Client is the transport collaborator contract for the remote medical
// service. Implementations own the network round-trips; the roster domain
// never talks to the wire itself.
type Client interface {
	// FetchRoster retrieves the raw roster snapshot for the account.
	FetchRoster(ctx context.Context) (RawRoster, error)

	// CreatePatient submits a write payload that creates a linked relative.
	CreatePatient(ctx context.Context, payload map[string]string) error

	// UpdatePatient submits a write payload for an existing record.
	UpdatePatient(ctx context.Context, patientID string, payload map[string]string) error

	// DeletePatient removes a record by identity.
	DeletePatient(ctx context.Context, patientID string) error
}
