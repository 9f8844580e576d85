package reminder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"unibot/internal/class/repository"
	"unibot/internal/model"
	"unibot/pkg/datemath"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockRepository struct {
	classes     []model.Class
	schedules   map[string][]model.Schedule
	assignments map[string][]model.Assignment
	listErr     error

	gotSchedules   []repository.ListSchedulesOptions
	gotAssignments []repository.ListAssignmentsOptions
}

func (m *mockRepository) ListClasses(ctx context.Context, opt repository.ListClassesOptions) ([]model.Class, int, error) {
	return m.classes, len(m.classes), m.listErr
}

func (m *mockRepository) ListSchedules(ctx context.Context, opt repository.ListSchedulesOptions) ([]model.Schedule, error) {
	m.gotSchedules = append(m.gotSchedules, opt)
	return m.schedules[opt.ClassID], nil
}

func (m *mockRepository) ListAssignments(ctx context.Context, opt repository.ListAssignmentsOptions) ([]model.Assignment, error) {
	m.gotAssignments = append(m.gotAssignments, opt)
	return m.assignments[opt.ClassID], nil
}

type sentMessage struct {
	chatJID string
	text    string
}

type mockSender struct {
	sent []sentMessage
	err  error
}

func (m *mockSender) SendMessage(chatJID, text string, mentions []string) error {
	m.sent = append(m.sent, sentMessage{chatJID: chatJID, text: text})
	return m.err
}

func newTestDispatcher(t *testing.T, repo *mockRepository, sender *mockSender) *Dispatcher {
	t.Helper()

	dates, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	return New(mockLogger{}, repo, sender, dates, "")
}

func TestRunSkipsUnlinkedClasses(t *testing.T) {
	repo := &mockRepository{
		classes: []model.Class{
			{ID: "cls-1", Name: "SI-A"},
			{ID: "cls-2", Name: "SI-B", GroupJID: "123@g.us"},
		},
		schedules: map[string][]model.Schedule{
			"cls-2": {{Title: "Basis Data", StartTime: "08:00", EndTime: "09:40", Room: "Lab 2"}},
		},
	}
	sender := &mockSender{}
	d := newTestDispatcher(t, repo, sender)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	if sender.sent[0].chatJID != "123@g.us" {
		t.Errorf("chat jid = %q", sender.sent[0].chatJID)
	}
	if len(repo.gotSchedules) != 1 || repo.gotSchedules[0].ClassID != "cls-2" {
		t.Errorf("schedule queries = %+v", repo.gotSchedules)
	}
}

func TestRunQuietWhenNothingToday(t *testing.T) {
	repo := &mockRepository{
		classes: []model.Class{{ID: "cls-1", Name: "SI-A", GroupJID: "123@g.us"}},
	}
	sender := &mockSender{}
	d := newTestDispatcher(t, repo, sender)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("sent %d messages, want 0", len(sender.sent))
	}
}

func TestRunDigestContent(t *testing.T) {
	due := time.Now().Add(6 * time.Hour)
	repo := &mockRepository{
		classes: []model.Class{{ID: "cls-1", Name: "SI-A", GroupJID: "123@g.us"}},
		schedules: map[string][]model.Schedule{
			"cls-1": {{Title: "Basis Data", StartTime: "08:00", EndTime: "09:40", Room: "Lab 2"}},
		},
		assignments: map[string][]model.Assignment{
			"cls-1": {{Title: "Laporan ERD", DueAt: &due}},
		},
	}
	sender := &mockSender{}
	d := newTestDispatcher(t, repo, sender)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}

	text := sender.sent[0].text
	for _, want := range []string{
		"Selamat pagi kelas SI-A",
		"• 08:00-09:40 · Basis Data · Lab 2",
		"📌 Laporan ERD — deadline",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("digest missing %q:\n%s", want, text)
		}
	}

	if len(repo.gotAssignments) != 1 {
		t.Fatalf("assignment queries = %d", len(repo.gotAssignments))
	}
	opt := repo.gotAssignments[0]
	if opt.DueFrom == nil || opt.DueTo == nil {
		t.Fatal("due window not set")
	}
	if !opt.DueTo.After(*opt.DueFrom) {
		t.Error("due window inverted")
	}
}

func TestRunPropagatesListError(t *testing.T) {
	repo := &mockRepository{listErr: errors.New("db down")}
	d := newTestDispatcher(t, repo, &mockSender{})

	if err := d.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
