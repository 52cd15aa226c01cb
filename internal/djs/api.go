package djs

import "context"

var _ Api = (*Repo)(nil)
var _ Api = (*repoMock)(nil)

type Api interface {
	Add(ctx context.Context, dj *DJ) (*DJ, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]DJ, error)
}
