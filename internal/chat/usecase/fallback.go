package usecase

import (
	"fmt"
	"strings"

	"unibot/internal/chat"
	"unibot/internal/intent"
	"unibot/pkg/wagateway"
	"unibot/pkg/wajid"
)

// fallback builds the canned reply used when the dashboard is down or had
// nothing to say. Every branch mentions the sender so the reply is
// visible in busy groups.
func (uc *implUseCase) fallback(input chat.RouteInput) chat.RouteOutput {
	mention := "@" + wajid.Display(input.SenderJID)
	mentions := []string{input.SenderJID}

	reply := func(lines ...string) chat.RouteOutput {
		return chat.RouteOutput{
			Text:     strings.Join(lines, "\n"),
			Mentions: mentions,
		}
	}

	if input.Intent == nil {
		return reply(fmt.Sprintf(
			"%s 😅 belum nangkep maksudnya. Coba tag aku bareng kata kunci, misal %s.",
			mention, wagateway.Bold("@"+uc.botName+" help"),
		))
	}

	switch input.Intent.Name {
	case intent.NameGreetings:
		return reply(fmt.Sprintf(
			"%s 👋 hai! Ada yang bisa kubantu? Ketik %s buat lihat menu lengkap ya.",
			mention, wagateway.Bold("help"),
		))

	case intent.NameHelp:
		return reply(
			mention+" berikut beberapa perintah yang bisa kamu coba:",
			wagateway.BulletList([]string{
				fmt.Sprintf("🆘 help – lihatin command & tips (contoh: @%s help)", uc.botName),
				"👋 hi – sapa bot biar tau kamu hadir 😄",
				"🗓️ jadwal [hari/matkul] – cek jadwal kelas (contoh: jadwal hari ini)",
				"📚 tugas [matkul] – lihat tugas & deadline (contoh: tugas basis data)",
				"👥 kelompok [matkul/nama] – cek info grup (contoh: kelompok 3)",
				"🧑‍🤝‍🧑 anggota [kelompok] – lihat daftar anggota (contoh: anggota kelompok 3)",
			}),
			"🌐 Web: "+uc.webURL,
		)

	case intent.NameRegister:
		return reply(fmt.Sprintf(
			"%s 🔐 mau hubungkan kelas? Pastikan kamu admin, terus ketik %s biar grupnya nyambung.",
			mention, wagateway.Bold("@"+uc.botName+" register"),
		))

	case intent.NameSchedule:
		info := "butuh jadwal kelas?"
		if detail := describeScheduleFilters(input.Intent.Filters); detail != "" {
			info = "lagi cari jadwal " + detail
		}
		return reply(
			fmt.Sprintf("%s 🗓️ %s", mention, info),
			"Tag aku + jadwal [hari/matkul] biar aku ambil data terbaru ya.",
			fmt.Sprintf("Contoh: %s atau %s.",
				wagateway.Bold("@"+uc.botName+" jadwal kamis"),
				wagateway.Bold("@"+uc.botName+" jadwal Pancasila")),
		)

	case intent.NameAssignment:
		info := "lagi cek tugas yang belum kelar?"
		if detail := describeAssignmentFilters(input.Intent.Filters); detail != "" {
			info = "lagi nyari tugas untuk " + detail
		}
		return reply(
			fmt.Sprintf("%s 📚 %s", mention, info),
			fmt.Sprintf("Ketik %s atau tambah rentang waktu biar lebih spesifik.", wagateway.Bold("tugas [matkul]")),
			fmt.Sprintf("Contoh: %s atau %s.",
				wagateway.Bold("@"+uc.botName+" tugas basis data"),
				wagateway.Bold("@"+uc.botName+" tugas minggu ini")),
		)

	case intent.NameGroup:
		info := "mau tau pembagian kelompok?"
		if detail := describeGroupFilters(input.Intent.Filters); detail != "" {
			info = "lagi cek " + detail
		}
		return reply(
			fmt.Sprintf("%s 👥 %s", mention, info),
			fmt.Sprintf("Pakai format %s supaya aku bisa filter cepat.", wagateway.Bold("kelompok [matkul/nama tim]")),
			fmt.Sprintf("Contoh: %s atau %s.",
				wagateway.Bold("@"+uc.botName+" kelompok proyek akhir"),
				wagateway.Bold("@"+uc.botName+" kelompok 2")),
		)

	case intent.NameGroupMembers:
		info := "lagi cek siapa aja di kelompok?"
		if detail := describeGroupFilters(input.Intent.Filters); detail != "" {
			info = "lagi mau lihat anggota " + detail
		}
		return reply(
			fmt.Sprintf("%s 🧑‍🤝‍🧑 %s", mention, info),
			fmt.Sprintf("Pakai format %s biar aku list membernya.", wagateway.Bold("anggota [nama tim/nomor]")),
			fmt.Sprintf("Contoh: %s atau %s.",
				wagateway.Bold("@"+uc.botName+" anggota kelompok 3"),
				wagateway.Bold("@"+uc.botName+" anggota proyek akhir")),
		)

	case intent.NameReminder:
		return reply(
			mention+" ⏰ pengingat bisa diatur via dashboard ya.",
			"Admin bisa masuk ke web Unibot terus aktifkan pengingat jadwal/tugas yang diinginkan.",
		)

	case intent.NameAbout:
		return reply(
			mention+" ✨ Unibot itu asisten WhatsApp buat kelas kamu.",
			"Catat jadwal, tugas, dan kelompok langsung dari chat, plus dashboard web buat admin.",
		)

	case intent.NameThanks:
		return reply(mention + " 🙌 sama-sama! Seneng bisa bantu.")

	default:
		return reply(fmt.Sprintf(
			"%s 🤔 catet dulu ya, aku masih belajar buat perintah %q. Coba cek %s buat yang udah ready.",
			mention, input.Intent.MatchedPhrase, wagateway.Bold("help"),
		))
	}
}
