// Package mocks provides mock implementations for testing the resumelab system.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the core ports. To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockRepo := mocks.NewMockImprovementRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), "id").Return(imp, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/resumelab/resumelab/internal/core UserRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=resume_repository_mock.go github.com/resumelab/resumelab/internal/core ResumeRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=improvement_repository_mock.go github.com/resumelab/resumelab/internal/core ImprovementRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=transformer_mock.go github.com/resumelab/resumelab/internal/core Transformer

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=publisher_mock.go github.com/resumelab/resumelab/internal/core Publisher
