package djs

import "context"

type repoMock struct {
	djs map[string]*DJ
}

func NewMockDJsRepo() *repoMock {
	return &repoMock{
		djs: make(map[string]*DJ),
	}
}

func (r *repoMock) Add(_ context.Context, dj *DJ) (*DJ, error) {
	r.djs[dj.ID] = dj
	return dj, nil
}

func (r *repoMock) Delete(_ context.Context, id string) error {
	delete(r.djs, id)
	return nil
}

func (r *repoMock) List(_ context.Context) ([]DJ, error) {
	var djs []DJ
	for _, dj := range r.djs {
		djs = append(djs, *dj)
	}
	return djs, nil
}
