package usecase

import (
	"context"
	"fmt"
	"strings"

	"unibot/internal/class/repository"
	"unibot/internal/wareply"
)

func (uc implUseCase) handleGroupMembers(ctx context.Context, input wareply.ReplyInput) (wareply.ReplyOutput, error) {
	tag := mention(input.SenderJID)
	mentions := []string{input.SenderJID}

	if input.ClassID == "" {
		return wareply.ReplyOutput{
			Message:  tag + " 🔌 grup ini belum terdaftar ke kelas. Ajak admin buat jalankan *@unibot register* dulu ya.",
			Mentions: mentions,
		}, nil
	}

	filters := inputFilters(input)

	opt := repository.ListGroupsOptions{
		ClassID:      input.ClassID,
		Search:       groupSearchTerm(filters),
		MatchMembers: true,
		WithMembers:  true,
		Limit:        memberGroupLimit + 1,
	}
	if weekday, ok := uc.resolveWeekday(filters); ok {
		opt.ScheduleDay = weekday
	}

	groups, err := uc.repo.ListGroups(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "wareply.usecase.handleGroupMembers.ListGroups: %v", err)
		return wareply.ReplyOutput{}, err
	}

	if len(groups) == 0 {
		hint := ""
		if detail := describeGroupFilters(filters); detail != "" {
			hint = " (" + detail + ")"
		}
		return wareply.ReplyOutput{
			Message:  fmt.Sprintf("%s 🙈 belum nemu anggota kelompok%s. Coba sebut nama tim atau nomor lain ya.", tag, hint),
			Mentions: mentions,
		}, nil
	}

	visible := groups
	if len(visible) > memberGroupLimit {
		visible = visible[:memberGroupLimit]
	}

	header := tag + " 🧑‍🤝‍🧑 ini daftar anggota kelompok:"
	if detail := describeGroupFilters(filters); detail != "" {
		header = fmt.Sprintf("%s 🧑‍🤝‍🧑 ini anggota %s:", tag, detail)
	}

	lines := []string{header}
	for _, grp := range visible {
		headerLine := "👥 " + grp.Name
		if grp.Schedule != nil {
			headerLine += " · " + scheduleInfo(*grp.Schedule)
		}

		shown := grp.Members
		if len(shown) > maxMemberResults {
			shown = shown[:maxMemberResults]
		}

		entries := make([]string, 0, len(shown))
		for _, member := range shown {
			entry := strings.TrimSpace(member.Name)
			if phone := strings.TrimSpace(member.Phone); phone != "" {
				entry += " (" + phone + ")"
			}
			entries = append(entries, entry)
		}

		summary := "belum ada anggota"
		if len(entries) > 0 {
			summary = strings.Join(entries, ", ")
			if extra := len(grp.Members) - len(shown); extra > 0 {
				summary += fmt.Sprintf(" (+%d lagi)", extra)
			}
		}

		lines = append(lines, headerLine+"\n   Anggota: "+summary)
	}

	if extra := len(groups) - len(visible); extra > 0 {
		lines = append(lines, fmt.Sprintf("(+%d kelompok lagi, sebut nama tim biar lebih spesifik)", extra))
	}
	lines = append(lines, "Mau cek anggota lain? Tinggal tag aku lagi ya ✨")

	return wareply.ReplyOutput{
		Message:  strings.Join(lines, "\n"),
		Mentions: mentions,
	}, nil
}
