package handlers

import (
	"log"
	"sort"
	"time"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/cybruGhost/keattractions-sub001/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content" validate:"required"`
}

type MessageResponse struct {
	models.Message
	SenderName string `json:"sender_name"`
	SenderRole string `json:"sender_role"`
}

// ChatSummary is derived from message rows on every read. It is never
// persisted, so its correctness depends only on these queries.
type ChatSummary struct {
	UserID          uuid.UUID  `json:"user_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	UnreadCount     int64      `json:"unread_count"`
	LastMessage     string     `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
}

// resolveRecipient maps the request to a real user row. Customers always talk
// to the support inbox; admins must name the customer they are replying to.
func resolveRecipient(role, recipientID string) (uuid.UUID, error) {
	if role != "admin" || recipientID == "" {
		admin, err := database.SupportInbox()
		if err != nil {
			return uuid.Nil, err
		}
		return admin.ID, nil
	}
	return uuid.Parse(recipientID)
}

func SendMessage(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	senderID, _ := uuid.Parse(claims["user_id"].(string))
	role, _ := claims["role"].(string)

	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recipientID, err := resolveRecipient(role, req.RecipientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recipient"})
	}

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     req.Content,
		Read:        false,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		log.Printf("🔥 Failed to save message from %s: %v", senderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	websocket.Broadcast <- &message

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": message.ID})
}

// ListThread returns both directions of one conversation in ascending order.
func ListThread(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))
	role, _ := claims["role"].(string)

	otherID, err := resolveRecipient(role, c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid userId"})
	}

	var messages []models.Message
	if err := database.DB.
		Preload("Sender").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			callerID, otherID, otherID, callerID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		log.Printf("🔥 Failed to list thread %s/%s: %v", callerID, otherID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	responses := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, MessageResponse{
			Message:    m,
			SenderName: m.Sender.FullName(),
			SenderRole: m.Sender.Role,
		})
	}
	return c.JSON(responses)
}

// MarkThreadRead flips every unread message from the counterpart to the
// caller. Re-invocation matches zero rows, so the call is idempotent.
func MarkThreadRead(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))
	role, _ := claims["role"].(string)

	senderID, err := resolveRecipient(role, c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid userId"})
	}

	if err := database.DB.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read = ?", senderID, callerID, false).
		Update("read", true).Error; err != nil {
		log.Printf("🔥 Failed to mark thread read for %s: %v", callerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark messages read"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListChats is role-dependent: admins get the global support chat list, other
// users get the counterparts of their own conversations.
func ListChats(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))
	role, _ := claims["role"].(string)

	inboxID := callerID
	if role == "admin" {
		admin, err := database.SupportInbox()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Support inbox unavailable"})
		}
		inboxID = admin.ID
	}

	summaries, err := chatSummaries(inboxID)
	if err != nil {
		log.Printf("🔥 Failed to build chat list for %s: %v", inboxID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch chats"})
	}
	return c.JSON(summaries)
}

// chatSummaries recomputes per-counterpart summaries from scratch: unread
// count of messages the counterpart sent, and the newest message in either
// direction. The owner is never its own counterpart.
func chatSummaries(ownerID uuid.UUID) ([]ChatSummary, error) {
	var sentTo []uuid.UUID
	if err := database.DB.Model(&models.Message{}).
		Where("sender_id = ?", ownerID).
		Distinct().Pluck("recipient_id", &sentTo).Error; err != nil {
		return nil, err
	}
	var receivedFrom []uuid.UUID
	if err := database.DB.Model(&models.Message{}).
		Where("recipient_id = ?", ownerID).
		Distinct().Pluck("sender_id", &receivedFrom).Error; err != nil {
		return nil, err
	}

	counterparts := make(map[uuid.UUID]bool)
	for _, id := range append(sentTo, receivedFrom...) {
		if id != ownerID {
			counterparts[id] = true
		}
	}

	summaries := make([]ChatSummary, 0, len(counterparts))
	for counterpartID := range counterparts {
		var user models.User
		if err := database.DB.First(&user, "id = ?", counterpartID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}

		var unread int64
		if err := database.DB.Model(&models.Message{}).
			Where("sender_id = ? AND recipient_id = ? AND read = ?", counterpartID, ownerID, false).
			Count(&unread).Error; err != nil {
			return nil, err
		}

		var last models.Message
		err := database.DB.
			Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
				ownerID, counterpartID, counterpartID, ownerID).
			Order("created_at desc").
			First(&last).Error
		if err != nil {
			return nil, err
		}
		lastTime := last.CreatedAt

		summaries = append(summaries, ChatSummary{
			UserID:          user.ID,
			Name:            user.FullName(),
			Email:           user.Email,
			Role:            user.Role,
			UnreadCount:     unread,
			LastMessage:     last.Content,
			LastMessageTime: &lastTime,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessageTime.After(*summaries[j].LastMessageTime)
	})
	return summaries, nil
}
