// Package mocks provides gomock doubles for the domain ports.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	backend := mocks.NewMockBackend(ctrl)
//	backend.EXPECT().FetchChores(gomock.Any(), domain.Username("alice")).Return(chores, nil)
package mocks

// Backend: Login, CreateAccount, DeleteAccount, FetchChores, CompleteChore, CreateChore, FetchMembers
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=backend_mock.go haus/internal/domain/interfaces Backend

// SessionStore: Set, Get, Clear
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go haus/internal/domain/interfaces SessionStore
