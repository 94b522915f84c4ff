package entries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AppendInput struct {
	ID        string // opcional; si viene vacío se genera
	AssetID   string
	Timestamp time.Time // opcional; si viene cero se usa now
	Kind      Kind
	Location  Location
	Remarks   string
	Name      string
	Model     string
	Condition Condition
}

// Append valida campos y persiste el evento. No valida transiciones: el log
// acepta lo que le manden. La legalidad de la transición es advisory y vive
// en assets.EvaluateTransition, antes de llegar acá.
func (s *Service) Append(ctx context.Context, in AppendInput) (Entry, error) {
	if strings.TrimSpace(in.AssetID) == "" {
		return Entry{}, ErrInvalidInput
	}
	if !in.Kind.Valid() {
		return Entry{}, ErrInvalidInput
	}
	if !in.Location.Valid() {
		return Entry{}, ErrInvalidInput
	}
	if !in.Condition.Valid() {
		return Entry{}, ErrInvalidInput
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}

	e := Entry{
		ID:        id,
		AssetID:   strings.TrimSpace(in.AssetID),
		Timestamp: ts,
		Kind:      in.Kind,
		Location:  in.Location,
		Remarks:   strings.TrimSpace(in.Remarks),
		Name:      strings.TrimSpace(in.Name),
		Model:     strings.TrimSpace(in.Model),
		Condition: in.Condition,
	}

	if err := s.repo.Append(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Entry, error) {
	return s.repo.ListAll(ctx)
}
