package events

import "context"

type repoMock struct {
	events map[string]*Event
}

func NewMockEventsRepo() *repoMock {
	return &repoMock{
		events: make(map[string]*Event),
	}
}

func (r *repoMock) Add(_ context.Context, event *Event) (*Event, error) {
	r.events[event.ID] = event
	return event, nil
}

func (r *repoMock) Get(_ context.Context, id string) (*Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (r *repoMock) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *repoMock) List(_ context.Context) ([]Event, error) {
	var events []Event
	for _, e := range r.events {
		events = append(events, *e)
	}
	return events, nil
}
