package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hotel_booking/database"

	"github.com/gofiber/contrib/websocket"
)

const bookingEventChannel = "booking_events"

// BookingEvent là payload đẩy qua redis cho màn hình admin theo dõi
// booking mới và thay đổi trạng thái theo thời gian thực
type BookingEvent struct {
	Type       string    `json:"type"` // created, approved, rejected, cancelled
	Kind       string    `json:"kind"` // service, package
	BookingId  uint      `json:"bookingId"`
	PublicCode string    `json:"publicCode"`
	Username   string    `json:"username"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

// BroadcastBookingEvent publish sự kiện lên redis. Redis chết thì chỉ log,
// nghiệp vụ booking không phụ thuộc vào feed.
func BroadcastBookingEvent(event BookingEvent) {
	if database.Redis == nil {
		return
	}
	event.At = time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal booking event: %v", err)
		return
	}
	if err := database.Redis.Publish(context.Background(), bookingEventChannel, payload).Err(); err != nil {
		log.Printf("publish booking event: %v", err)
	}
}

// BookingFeed là websocket cho admin: subscribe redis và đẩy từng sự kiện
// xuống client cho tới khi client ngắt kết nối
func BookingFeed(c *websocket.Conn) {
	if database.Redis == nil {
		c.WriteJSON(map[string]string{"error": "live feed unavailable"})
		c.Close()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := database.Redis.Subscribe(ctx, bookingEventChannel)
	defer sub.Close()

	// đọc (và bỏ qua) message từ client để phát hiện ngắt kết nối
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
