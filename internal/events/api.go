package events

import "context"

var _ Api = (*Repo)(nil)
var _ Api = (*repoMock)(nil)

type Api interface {
	Add(ctx context.Context, event *Event) (*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Event, error)
}
