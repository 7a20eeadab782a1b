package jobs

import (
	"log"
	"time"

	"roomops/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// CleaningSweeper định nghĩa interface cho việc quét các phòng chờ dọn
type CleaningSweeper interface {
	SweepDirtyRooms() (int, error)
}

var cleaningSweeper CleaningSweeper

// SetCleaningSweeper thiết lập implementation cho CleaningSweeper
func SetCleaningSweeper(sweeper CleaningSweeper) {
	cleaningSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét phòng Dirty chưa có nhiệm vụ mỗi 5 phút, bắt các phòng
	// checkout vào lúc hàng đợi nhân viên đang rỗng
	_, err := c.AddFunc("*/5 * * * *", func() {
		now := time.Now()
		if cleaningSweeper == nil {
			utils.LogError("CleaningSweeper chưa được thiết lập")
			return
		}
		created, err := cleaningSweeper.SweepDirtyRooms()
		if err != nil {
			utils.LogError("Lỗi khi quét phòng chờ dọn lúc %v: %v", now, err)
			return
		}
		if created > 0 {
			utils.LogInfo("Quét phòng chờ dọn lúc %v: giao thêm %d nhiệm vụ", now, created)
			m.Broadcast([]byte(`{"event":"assignments_swept"}`))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
