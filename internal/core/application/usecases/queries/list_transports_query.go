package queries

import (
	"errors"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/pkg/guard"
)

// ErrListTransportsQueryIsNotConstructed is returned for a zero-value ListTransportsQuery.
var ErrListTransportsQueryIsNotConstructed = errors.New(
	"ListTransportsQuery must be created via NewListTransportsQuery constructor",
)

// ListTransportsQuery asks for the transport catalog.
type ListTransportsQuery struct {
	guard guard.ConstructorGuard
}

// NewListTransportsQuery creates the query. It carries no input.
func NewListTransportsQuery() ListTransportsQuery {
	return ListTransportsQuery{guard: guard.NewConstructorGuard()}
}

// Validate rejects queries not built by NewListTransportsQuery.
func (q ListTransportsQuery) Validate() error {
	return q.guard.Validate(ErrListTransportsQueryIsNotConstructed)
}

// TransportView is the read model of a catalog entry.
type TransportView struct {
	ID    int
	Name  string
	Speed int
}

// ListTransportsQueryHandler serves the fixed catalog; it never touches the database.
type ListTransportsQueryHandler struct{}

// NewListTransportsQueryHandler creates the handler.
func NewListTransportsQueryHandler() ListTransportsQueryHandler {
	return ListTransportsQueryHandler{}
}

// Handle returns the catalog ordered by speed, slowest first.
func (ListTransportsQueryHandler) Handle(query ListTransportsQuery) ([]TransportView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog := courier.Transports()
	views := make([]TransportView, 0, len(catalog))
	for _, t := range catalog {
		views = append(views, TransportView{ID: t.ID(), Name: t.Name(), Speed: t.Speed()})
	}

	return views, nil
}
