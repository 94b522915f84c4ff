package entries

import "context"

// Repository es el log append-only. No hay Update ni Delete: el store no
// valida transiciones ni borra filas.
type Repository interface {
	Append(ctx context.Context, e Entry) error
	ListAll(ctx context.Context) ([]Entry, error)
}
