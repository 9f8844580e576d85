package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"unibot/internal/class"
	"unibot/pkg/response"
)

var notFoundMessages = map[error]string{
	class.ErrClassNotFound:      "kelas tidak ditemukan",
	class.ErrScheduleNotFound:   "jadwal tidak ditemukan",
	class.ErrAssignmentNotFound: "tugas tidak ditemukan",
	class.ErrGroupNotFound:      "kelompok tidak ditemukan",
	class.ErrMemberNotFound:     "anggota tidak ditemukan",
}

// respondError translates usecase errors into HTTP responses. Domain
// not-found errors become 404s; anything else is a 400 with the error
// message so the dashboard can show it to the admin.
func (h handler) respondError(c *gin.Context, err error) {
	for sentinel, msg := range notFoundMessages {
		if errors.Is(err, sentinel) {
			response.NotFound(c, msg)
			return
		}
	}
	response.Error(c, err, nil)
}
