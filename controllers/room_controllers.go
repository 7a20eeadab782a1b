package controllers

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"roomops/config"
	"roomops/constants"
	"roomops/dto"
	"roomops/models"
	"roomops/response"
	"roomops/services"
	"roomops/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

var roomsCacheKey = "rooms:all"

func toRoomStatusResponse(status *models.RoomStatus) *dto.RoomStatusResponse {
	if status == nil {
		return nil
	}
	return &dto.RoomStatusResponse{
		RoomKey:      status.RoomKey,
		Occupancy:    status.Occupancy,
		Reservation:  status.Reservation,
		Housekeeping: status.Housekeeping,
		Maintenance:  status.Maintenance,
		Bookable:     status.BookableNow(),
		LastUpdated:  status.LastUpdated,
		UpdatedBy:    status.UpdatedBy,
	}
}

func toRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomId:    room.RoomId,
		RoomKey:   room.RoomKey,
		Type:      room.Type,
		Number:    room.Number,
		Floor:     room.Floor,
		Amenities: room.Amenities,
		Status:    toRoomStatusResponse(room.Status),
	}
}

// CreateRoom tạo phòng mới kèm trạng thái khởi tạo: trống, chưa giữ,
// sạch, hoạt động bình thường
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		Type:      request.Type,
		Number:    request.Number,
		Floor:     request.Floor,
		Amenities: request.Amenities,
	}
	room.RoomKey = room.DeriveKey()

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var existing models.Room
	if err := config.DB.Where("room_key = ?", room.RoomKey).First(&existing).Error; err == nil {
		response.Conflict(c, fmt.Sprintf("Phòng %s đã tồn tại", room.RoomKey))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		status := models.RoomStatus{
			RoomID:       room.RoomId,
			RoomKey:      room.RoomKey,
			Occupancy:    constants.OccupancyVacant,
			Reservation:  constants.ReservationNotReserved,
			Housekeeping: constants.HousekeepingClean,
			Maintenance:  constants.MaintenanceOperational,
			LastUpdated:  time.Now(),
			UpdatedBy:    "system",
		}
		return tx.Create(&status).Error
	})
	if err != nil {
		log.Printf("Lỗi khi tạo phòng %s: %v", room.RoomKey, err)
		response.ServerError(c)
		return
	}

	services.InvalidateRoomCache(config.Ctx, config.RedisClient)
	response.Success(c, toRoomResponse(&room))
}

// GetAllRooms lấy danh sách phòng kèm trạng thái, có cache Redis
func GetAllRooms(c *gin.Context) {
	var rooms []models.Room

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, roomsCacheKey, &rooms); err == nil && len(rooms) > 0 {
			roomResponses := make([]dto.RoomResponse, 0, len(rooms))
			for i := range rooms {
				roomResponses = append(roomResponses, toRoomResponse(&rooms[i]))
			}
			response.Success(c, roomResponses)
			return
		}
	}

	if err := config.DB.Preload("Status").Order("room_key").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, roomsCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu dữ liệu vào Redis: %v", err)
		}
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(&rooms[i]))
	}
	response.Success(c, roomResponses)
}

// GetRoomDetail lấy chi tiết một phòng theo roomKey
func GetRoomDetail(c *gin.Context) {
	roomKey := c.Param("roomKey")

	var room models.Room
	if err := config.DB.Preload("Status").Where("room_key = ?", roomKey).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toRoomResponse(&room))
}

// GetRoomStatus đọc trạng thái tổng hợp của một phòng
func GetRoomStatus(c *gin.Context) {
	roomKey := c.Param("roomKey")

	status, err := statusService.Get(roomKey)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toRoomStatusResponse(status))
}

// ChangeRoomStatus cập nhật một trục trạng thái của phòng theo thao tác tay
// của lễ tân hoặc admin (ví dụ đưa phòng vào bảo trì)
func ChangeRoomStatus(c *gin.Context) {
	roomKey := c.Param("roomKey")

	var request dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	actor := "manual"
	if userID, exists := c.Get("userID"); exists {
		actor = fmt.Sprintf("user:%v", userID)
	}

	status, err := statusService.Apply(roomKey, request.Axis, *request.Value, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.InvalidateRoomCache(config.Ctx, config.RedisClient)
	if wsNotifier != nil {
		wsNotifier.NotifyRoomStatus(status)
	}
	response.Success(c, toRoomStatusResponse(status))
}

// GetBookableRooms liệt kê các phòng đủ điều kiện nhận đặt ngay
func GetBookableRooms(c *gin.Context) {
	roomKeys, err := statusService.ListBookable()
	if err != nil {
		response.ServerError(c)
		return
	}
	if roomKeys == nil {
		roomKeys = []string{}
	}
	response.Success(c, roomKeys)
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

// prepareUniqueTypes gom các loại phòng duy nhất cho closestmatch
func prepareUniqueTypes(rooms []models.Room) []string {
	uniqueValues := make(map[string]bool)
	for i := range rooms {
		if rooms[i].Type != "" {
			uniqueValues[normalizeInput(rooms[i].Type)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp của phòng với câu truy vấn
func calculateRoomScore(query string, room *models.Room, cmType *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if cmType.Closest(normalizedQuery) == normalizeInput(room.Type) {
		score += 20
	}
	if strings.Contains(normalizedQuery, normalizeInput(room.RoomKey)) {
		score += 15
	}

	for _, amenity := range room.Amenities {
		normalizedAmenity := normalizeInput(amenity)
		similarity := calculateSimilarity(normalizedQuery, normalizedAmenity)
		if similarity > 0.7 || strings.Contains(normalizedQuery, normalizedAmenity) {
			score += 4
		}
	}

	return score
}

func filterAndScoreRooms(query string, rooms []models.Room, cmType *closestmatch.ClosestMatch) []dto.ScoredRoom {
	var scoredRooms []dto.ScoredRoom
	scoreCh := make(chan dto.ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for i := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := calculateRoomScore(query, &room, cmType)
			if score > 0 {
				scoreCh <- dto.ScoredRoom{
					Room:  toRoomResponse(&room),
					Score: score,
				}
			}
		}(rooms[i])
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredRoom := range scoreCh {
		scoredRooms = append(scoredRooms, scoredRoom)
	}

	sort.SliceStable(scoredRooms, func(i, j int) bool {
		return scoredRooms[i].Score > scoredRooms[j].Score
	})
	return scoredRooms
}

// SearchRooms tìm phòng gần đúng theo loại, roomKey và tiện nghi
func SearchRooms(c *gin.Context) {
	query := c.DefaultQuery("q", "")
	if query == "" {
		response.BadRequest(c, "q là bắt buộc")
		return
	}

	var rooms []models.Room
	if err := config.DB.Preload("Status").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	cmType := createMatcher(prepareUniqueTypes(rooms))
	scoredRooms := filterAndScoreRooms(query, rooms, cmType)

	response.Success(c, scoredRooms)
}
