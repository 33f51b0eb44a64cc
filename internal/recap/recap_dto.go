package recap

import "time"

// Format kunci tanggal pada rekap; bulan memakai singkatan Inggris
// supaya tidak tergantung locale server.
const (
	displayKeyFormat = "02 Jan 2006"
	timeOfDayFormat  = "15:04"
)

// Day adalah satu tanggal kalender dalam periode rekap. Key adalah
// representasi tampilannya sekaligus kunci join terhadap hari libur
// dan catatan absensi.
type Day struct {
	Date time.Time
	Key  string
}

type DayKind int

const (
	KindWorkday DayKind = iota
	KindNonWorkday
	KindHoliday
)

// DayClass hasil klasifikasi satu tanggal. Label hanya terisi untuk
// KindHoliday.
type DayClass struct {
	Kind  DayKind
	Label string
}

// DayKey mengidentifikasi satu sel rekap: satu karyawan pada satu
// tanggal.
type DayKey struct {
	KaryawanID uint
	DateKey    string
}

// Times adalah jam datang/pulang hasil agregasi; string kosong berarti
// tidak ada catatan yang cocok.
type Times struct {
	Arrival   string
	Departure string
}

// Row adalah satu baris pada satu sheet rekap.
type Row struct {
	No        int
	Date      string
	Name      string
	Arrival   string
	Departure string
}

// StatusGroup adalah satu sheet: seluruh baris untuk karyawan dengan
// status yang sama, urut sesuai kemunculan pertama status di roster.
type StatusGroup struct {
	Status string
	Rows   []Row
}

// RecapFile adalah artefak akhir yang siap diunduh.
type RecapFile struct {
	Name    string
	Content []byte
}
