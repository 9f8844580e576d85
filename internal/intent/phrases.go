package intent

// Entry binds one intent name to its trigger phrases.
type Entry struct {
	Name    Name
	Phrases []string
}

// Table is the phrase dictionary. Order matters: when two phrases score
// the same confidence, the first-seen entry wins, so the tie-break is the
// table order rather than map iteration.
type Table []Entry

// DefaultTable returns the built-in phrase dictionary. All phrases are
// lowercase; matching is containment-based, not word-boundary-aware.
func DefaultTable() Table {
	return Table{
		{Name: NameGreetings, Phrases: []string{
			"halo",
			"hai",
			"hi",
			"hello",
			"selamat pagi",
			"selamat siang",
			"selamat sore",
			"selamat malam",
			"morning",
			"evening",
		}},
		{Name: NameHelp, Phrases: []string{
			"help",
			"bantu",
			"tolong",
			"menu",
			"command",
			"perintah",
			"cara pakai",
			"petunjuk",
			"panduan",
			"@unibot help",
		}},
		{Name: NameRegister, Phrases: []string{
			"register",
			"daftar bot",
			"@unibot register",
			"daftar",
			"hubungkan kelas",
		}},
		{Name: NameSchedule, Phrases: []string{
			"jadwal",
			"jadwal kuliah",
			"jadwal hari ini",
			"jadwal besok",
			"schedule",
			"class schedule",
			"lihat jadwal",
		}},
		{Name: NameAssignment, Phrases: []string{
			"tugas",
			"deadline",
			"assignment",
			"pekerjaan rumah",
			"homework",
			"ujian",
			"quiz",
		}},
		{Name: NameGroup, Phrases: []string{
			"kelompok",
			"group",
			"tim",
			"team",
			"kelompok tugas",
			"kelompok project",
		}},
		{Name: NameGroupMembers, Phrases: []string{
			"anggota kelompok",
			"lihat anggota",
			"daftar anggota",
			"group members",
			"cek anggota kelompok",
			"member kelompok",
			"anggota tim",
		}},
		{Name: NameReminder, Phrases: []string{
			"reminder",
			"pengingat",
			"ingatkan",
			"remind me",
		}},
		{Name: NameAbout, Phrases: []string{
			"tentang unibot",
			"info unibot",
			"apa itu unibot",
			"about unibot",
		}},
		{Name: NameThanks, Phrases: []string{
			"thank you",
			"thanks",
			"makasih",
			"terima kasih",
			"mantap",
		}},
	}
}
