package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// AutoCreate tells the resolver how to build a category when a named
// reference has no match. Write paths that must not create categories pass
// nil and get an InvalidReferenceError instead.
type AutoCreate struct {
	Type  Type
	Color string
	Icon  string
}

// Resolver turns an ambiguous category reference into a concrete id.
// Resolution of a name may create a category as a side effect; callers must
// tolerate a write happening under what looks like a read.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve maps a Ref to the id of a category owned by the user. An empty
// reference resolves to nil, meaning "uncategorized". An id that does not
// exist for the user is a client error carrying the offending value.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID, ref Ref, auto *AutoCreate) (*uuid.UUID, error) {
	switch ref.Kind {
	case RefEmpty:
		return nil, nil

	case RefByID:
		c, err := r.repo.GetCategory(ctx, userID, ref.ID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, &InvalidReferenceError{Value: ref.ID.String()}
			}

			return nil, err
		}

		return &c.ID, nil

	case RefByName:
		c, err := r.repo.FindCategoryByName(ctx, userID, ref.Name)
		if err != nil {
			return nil, err
		}

		if c != nil {
			return &c.ID, nil
		}

		if auto == nil {
			return nil, &InvalidReferenceError{Value: ref.Name}
		}

		created := &Category{
			UserID: userID,
			Name:   ref.Name,
			Type:   auto.Type,
			Color:  auto.Color,
			Icon:   auto.Icon,
		}

		if err := r.repo.CreateCategory(ctx, created); err != nil {
			if errors.Is(err, ErrAlreadyExists) {
				// Lost a concurrent creation race; the winner's document
				// is authoritative.
				existing, ferr := r.repo.FindCategoryByName(ctx, userID, ref.Name)
				if ferr != nil {
					return nil, ferr
				}

				if existing != nil {
					return &existing.ID, nil
				}
			}

			return nil, err
		}

		return &created.ID, nil
	}

	return nil, nil
}
