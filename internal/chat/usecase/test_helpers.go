package usecase

import (
	"context"

	"unibot/internal/chat/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, arg ...interface{})                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...interface{})                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...interface{})                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...interface{})  {}

// Mock reply repository for testing
type mockReplyRepository struct {
	reply   repository.RemoteReply
	err     error
	gotOpts []repository.QueryReplyOptions
}

func (m *mockReplyRepository) QueryReply(ctx context.Context, opt repository.QueryReplyOptions) (repository.RemoteReply, error) {
	m.gotOpts = append(m.gotOpts, opt)
	return m.reply, m.err
}

// Mock registry for testing
type mockRegistry struct {
	classes map[string]string
	findErr error
}

func (m *mockRegistry) FindClassID(ctx context.Context, groupJID string) (string, error) {
	if m.findErr != nil {
		return "", m.findErr
	}
	return m.classes[groupJID], nil
}

func (m *mockRegistry) UpsertClassID(ctx context.Context, groupJID, classID string) error {
	if m.classes == nil {
		m.classes = make(map[string]string)
	}
	m.classes[groupJID] = classID
	return nil
}
