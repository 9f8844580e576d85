package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"unibot/internal/intent"
	"unibot/internal/model"
	"unibot/internal/wareply"
	"unibot/pkg/datemath"
)

const (
	testGroupJID  = "120363025246125486@g.us"
	testSenderJID = "628123456789@s.whatsapp.net"
)

func newTestUseCase(t *testing.T, repo *mockRepository) wareply.UseCase {
	t.Helper()

	dates, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	return New(mockLogger{}, repo, dates)
}

func detected(name intent.Name, filters *intent.Filters) *intent.Detected {
	return &intent.Detected{Name: name, Confidence: 1, MatchedPhrase: string(name), Filters: filters}
}

func TestReplyContextGuards(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(t, repo)

	t.Run("missing group jid", func(t *testing.T) {
		out, err := uc.Reply(context.Background(), wareply.ReplyInput{SenderJID: testSenderJID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "" || out.Register != nil {
			t.Errorf("expected zero output, got %+v", out)
		}
	})

	t.Run("nil intent", func(t *testing.T) {
		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "" {
			t.Errorf("expected zero output, got %q", out.Message)
		}
	})

	t.Run("unhandled intent", func(t *testing.T) {
		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameGreetings, nil),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "" {
			t.Errorf("greetings should not be handled remotely, got %q", out.Message)
		}
	})
}

func TestReplyResolvesClassFromGroup(t *testing.T) {
	repo := &mockRepository{class: model.Class{ID: "cls-1", Name: "SI-A", GroupJID: testGroupJID}}
	uc := newTestUseCase(t, repo)

	_, err := uc.Reply(context.Background(), wareply.ReplyInput{
		GroupJID:  testGroupJID,
		SenderJID: testSenderJID,
		Intent:    detected(intent.NameSchedule, nil),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotGetOneClass.GroupJID != testGroupJID {
		t.Errorf("class lookup got %q", repo.gotGetOneClass.GroupJID)
	}
	if repo.gotListSchedules.ClassID != "cls-1" {
		t.Errorf("schedule query class id = %q", repo.gotListSchedules.ClassID)
	}
}

func TestHandleRegister(t *testing.T) {
	t.Run("outside a group", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testSenderJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameRegister, nil),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Message, "cuma bisa dipakai di dalam grup") {
			t.Errorf("message = %q", out.Message)
		}
		if repo.gotClaimGroupJID != "" {
			t.Error("claim should not run outside a group")
		}
	})

	t.Run("no class waiting", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameRegister, nil),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Message, "belum ada kelas yang nunggu aktivasi") {
			t.Errorf("message = %q", out.Message)
		}
		if out.Register != nil {
			t.Error("register output should be nil")
		}
	})

	t.Run("claims the oldest unlinked class", func(t *testing.T) {
		repo := &mockRepository{claimed: model.Class{ID: "cls-1", Name: "Sistem Informasi A"}}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameRegister, nil),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotClaimGroupJID != testGroupJID {
			t.Errorf("claim group jid = %q", repo.gotClaimGroupJID)
		}
		if !strings.Contains(out.Message, "kelas Sistem Informasi A udah resmi nyambung") {
			t.Errorf("message = %q", out.Message)
		}
		if out.Register == nil || out.Register.ClassID != "cls-1" {
			t.Errorf("register = %+v", out.Register)
		}
		if !strings.HasPrefix(out.Message, "@628123456789 ") {
			t.Errorf("mention missing: %q", out.Message)
		}
	})
}

func TestHandleSchedule(t *testing.T) {
	t.Run("group not registered", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameSchedule, nil),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Message, "belum nyambung ke kelas mana pun") {
			t.Errorf("message = %q", out.Message)
		}
	})

	t.Run("empty result mentions the filters", func(t *testing.T) {
		repo := &mockRepository{class: model.Class{ID: "cls-1"}}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameSchedule, &intent.Filters{Day: "kamis"}),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Message, "belum nemu jadwal (hari Kamis)") {
			t.Errorf("message = %q", out.Message)
		}
		if repo.gotListSchedules.DayOfWeek != model.Thursday {
			t.Errorf("weekday filter = %q", repo.gotListSchedules.DayOfWeek)
		}
	})

	t.Run("lists schedules with room and overflow", func(t *testing.T) {
		schedules := make([]model.Schedule, 0, maxResults+1)
		for i := 0; i < maxResults+1; i++ {
			schedules = append(schedules, model.Schedule{
				ID:        fmt.Sprintf("sch-%d", i),
				Title:     fmt.Sprintf("Matkul %d", i),
				Room:      "Lab 2",
				DayOfWeek: model.Monday,
				StartTime: "08:00",
				EndTime:   "09:40",
			})
		}
		repo := &mockRepository{class: model.Class{ID: "cls-1"}, schedules: schedules}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameSchedule, nil),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotListSchedules.Limit != maxResults+1 {
			t.Errorf("limit = %d", repo.gotListSchedules.Limit)
		}
		if !strings.Contains(out.Message, "ini jadwal yang ketemu:") {
			t.Errorf("header missing: %q", out.Message)
		}
		if !strings.Contains(out.Message, "• Sen 08:00-09:40 · Matkul 0 · Lab 2") {
			t.Errorf("item missing: %q", out.Message)
		}
		if !strings.Contains(out.Message, "(+1 jadwal lagi") {
			t.Errorf("overflow line missing: %q", out.Message)
		}
		if strings.Contains(out.Message, "Matkul 5") {
			t.Errorf("hidden schedule leaked: %q", out.Message)
		}
		if len(out.Mentions) != 1 || out.Mentions[0] != testSenderJID {
			t.Errorf("mentions = %v", out.Mentions)
		}
	})
}

func TestHandleAssignment(t *testing.T) {
	t.Run("forwards due range and search", func(t *testing.T) {
		repo := &mockRepository{class: model.Class{ID: "cls-1"}}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent: detected(intent.NameAssignment, &intent.Filters{
				Subject:     "basis data",
				RelativeDay: datemath.RelativeThisWeek,
			}),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotListAssignments.Search != "basis data" {
			t.Errorf("search = %q", repo.gotListAssignments.Search)
		}
		if repo.gotListAssignments.DueFrom == nil || repo.gotListAssignments.DueTo == nil {
			t.Fatal("due range not forwarded")
		}
		if !strings.Contains(out.Message, `belum ada tugas (mata kuliah "basis data", deadline minggu ini)`) {
			t.Errorf("message = %q", out.Message)
		}
	})

	t.Run("lists assignments with schedule slot", func(t *testing.T) {
		due := time.Now().Add(2 * time.Hour)
		repo := &mockRepository{
			class: model.Class{ID: "cls-1"},
			assignments: []model.Assignment{
				{
					ID:    "asg-1",
					Title: "Laporan ERD",
					DueAt: &due,
					Schedule: &model.Schedule{
						Title:     "Basis Data",
						DayOfWeek: model.Monday,
						StartTime: "08:00",
						EndTime:   "09:40",
					},
				},
				{ID: "asg-2", Title: "Esai"},
			},
		}
		uc := newTestUseCase(t, repo)

		out, err := uc.Reply(context.Background(), wareply.ReplyInput{
			GroupJID:  testGroupJID,
			SenderJID: testSenderJID,
			Intent:    detected(intent.NameAssignment, nil),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Message, "ini tugas yang lagi jalan:") {
			t.Errorf("header missing: %q", out.Message)
		}
		if !strings.Contains(out.Message, "📌 Laporan ERD · Basis Data (Sen 08:00-09:40) — ") {
			t.Errorf("item missing: %q", out.Message)
		}
		if !strings.Contains(out.Message, "jam lagi)") {
			t.Errorf("due label missing: %q", out.Message)
		}
		if !strings.Contains(out.Message, "📌 Esai — deadline belum di-set") {
			t.Errorf("no-deadline item missing: %q", out.Message)
		}
	})
}

func TestHandleGroup(t *testing.T) {
	repo := &mockRepository{
		class: model.Class{ID: "cls-1"},
		groups: []model.Group{
			{
				ID:          "grp-1",
				Name:        "Tim Alpha",
				MemberCount: 3,
				Schedule: &model.Schedule{
					Title:     "Basis Data",
					DayOfWeek: model.Monday,
					StartTime: "08:00",
					EndTime:   "09:40",
				},
			},
			{ID: "grp-2", Name: "Tim Beta"},
		},
	}
	uc := newTestUseCase(t, repo)

	out, err := uc.Reply(context.Background(), wareply.ReplyInput{
		GroupJID:  testGroupJID,
		SenderJID: testSenderJID,
		Intent:    detected(intent.NameGroup, &intent.Filters{Group: "alpha"}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotListGroups.Search != "alpha" {
		t.Errorf("search = %q", repo.gotListGroups.Search)
	}
	if repo.gotListGroups.MatchMembers || repo.gotListGroups.WithMembers {
		t.Error("group listing must not load members")
	}
	if !strings.Contains(out.Message, "ini data kelompok kelompok alpha:") {
		t.Errorf("header = %q", out.Message)
	}
	if !strings.Contains(out.Message, "👥 Tim Alpha — 3 anggota · Sen 08:00-09:40 · Basis Data") {
		t.Errorf("item missing: %q", out.Message)
	}
	if !strings.Contains(out.Message, "👥 Tim Beta — belum ada anggota") {
		t.Errorf("empty-group item missing: %q", out.Message)
	}
}

func TestHandleGroupMembers(t *testing.T) {
	members := make([]model.GroupMember, 0, maxMemberResults+2)
	for i := 0; i < maxMemberResults+2; i++ {
		members = append(members, model.GroupMember{Name: fmt.Sprintf("Anggota %d", i)})
	}
	members[0].Phone = "+628111222333"

	repo := &mockRepository{
		class: model.Class{ID: "cls-1"},
		groups: []model.Group{
			{
				ID:      "grp-1",
				Name:    "Tim Alpha",
				Members: members,
				Schedule: &model.Schedule{
					Title:     "Basis Data",
					DayOfWeek: model.Monday,
					StartTime: "08:00",
					EndTime:   "09:40",
				},
			},
		},
	}
	uc := newTestUseCase(t, repo)

	out, err := uc.Reply(context.Background(), wareply.ReplyInput{
		GroupJID:  testGroupJID,
		SenderJID: testSenderJID,
		Intent:    detected(intent.NameGroupMembers, nil),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.gotListGroups.MatchMembers || !repo.gotListGroups.WithMembers {
		t.Error("member listing must search and load members")
	}
	if repo.gotListGroups.Limit != memberGroupLimit+1 {
		t.Errorf("limit = %d", repo.gotListGroups.Limit)
	}
	if !strings.Contains(out.Message, "ini daftar anggota kelompok:") {
		t.Errorf("header missing: %q", out.Message)
	}
	if !strings.Contains(out.Message, "👥 Tim Alpha · Sen 08:00-09:40 · Basis Data") {
		t.Errorf("group line missing: %q", out.Message)
	}
	if !strings.Contains(out.Message, "Anggota: Anggota 0 (+628111222333), ") {
		t.Errorf("member summary missing: %q", out.Message)
	}
	if !strings.Contains(out.Message, "(+2 lagi)") {
		t.Errorf("extra member count missing: %q", out.Message)
	}
}

func TestFormatDueLabel(t *testing.T) {
	dates, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	uc := implUseCase{l: mockLogger{}, dates: dates}

	cases := []struct {
		name string
		due  time.Time
		want string
	}{
		{"just now", time.Now(), "(baru saja)"},
		{"minutes ahead", time.Now().Add(30 * time.Minute), "menit lagi)"},
		{"hours ahead", time.Now().Add(3 * time.Hour), "jam lagi)"},
		{"days past", time.Now().Add(-72 * time.Hour), "hari lalu)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := uc.formatDueLabel(tc.due)
			if !strings.Contains(got, tc.want) {
				t.Errorf("formatDueLabel = %q, want substring %q", got, tc.want)
			}
		})
	}
}
