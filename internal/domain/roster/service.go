package roster

import (
	"context"
	"fmt"

	"github.com/nirajan1211/MidasHealthCare/internal/domain/form"
)

// Service provides business logic for the roster domain. It reconciles the
// upstream snapshot on reads and runs records through the form engine's
// validation on writes. The service holds no roster state of its own: every
// write invalidates whatever the caller last saw, so every list re-fetches.
type Service struct {
	client Client
}

// NewService creates a new roster domain service.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// ListPatients fetches the raw roster and returns the normalized,
// deduplicated sequence.
func (s *Service) ListPatients(ctx context.Context) ([]Entry, error) {
	raw, err := s.client.FetchRoster(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}

// CreatePatient validates the record and submits the create payload. A
// validation failure is returned as form.ValidationErrors with no side
// effects; transport failures pass through opaquely.
func (s *Service) CreatePatient(ctx context.Context, rec form.PatientRecord) error {
	if errs := form.Validate(rec); len(errs) > 0 {
		return errs
	}
	return s.client.CreatePatient(ctx, rec.Payload())
}

// UpdatePatient validates the record and submits the update payload for the
// given identity.
func (s *Service) UpdatePatient(ctx context.Context, patientID string, rec form.PatientRecord) error {
	if patientID == "" {
		return fmt.Errorf("patient id is required")
	}
	if errs := form.Validate(rec); len(errs) > 0 {
		return errs
	}
	return s.client.UpdatePatient(ctx, patientID, rec.Payload())
}

// DeletePatient removes a record by identity.
func (s *Service) DeletePatient(ctx context.Context, patientID string) error {
	if patientID == "" {
		return fmt.Errorf("patient id is required")
	}
	return s.client.DeletePatient(ctx, patientID)
}
