package auth

import "context"

type repoMock struct {
	admins map[string]*Admin
}

func NewMockAdminsRepo(admins ...*Admin) *repoMock {
	m := &repoMock{
		admins: make(map[string]*Admin),
	}
	for _, a := range admins {
		m.admins[a.ID] = a
	}
	return m
}

func (m *repoMock) GetByEmail(_ context.Context, email string) (*Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (m *repoMock) GetByID(_ context.Context, id string) (*Admin, error) {
	admin, ok := m.admins[id]
	if !ok {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

func (m *repoMock) Remove(id string) {
	delete(m.admins, id)
}
