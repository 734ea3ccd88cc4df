package handlers

import (
	"net/http"
	"testing"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func sendChatMessage(t *testing.T, app *fiber.App, from models.User, recipientID, content string) {
	t.Helper()
	body := map[string]interface{}{"content": content}
	if recipientID != "" {
		body["recipient_id"] = recipientID
	}
	resp := httpDo(t, app, "POST", "/api/v1/messages", body, sessionCookie(t, from))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCustomerMessagesRoutedToSupportInbox(t *testing.T) {
	app := setupApp(t)
	admin := createTestUser(t, "Wanjiku", "admin@example.com", "admin")
	customer := createTestUser(t, "Amina", "amina@example.com", "customer")

	sendChatMessage(t, app, customer, "", "Hello, I need help with my booking")

	var message models.Message
	require.NoError(t, database.DB.First(&message, "sender_id = ?", customer.ID).Error)
	require.Equal(t, admin.ID, message.RecipientID)
	require.False(t, message.Read)
}

func TestAdminChatListUnreadCounts(t *testing.T) {
	app := setupApp(t)
	admin := createTestUser(t, "Wanjiku", "admin@example.com", "admin")
	customer := createTestUser(t, "Amina", "amina@example.com", "customer")

	for _, content := range []string{"First", "Second", "Third"} {
		sendChatMessage(t, app, customer, "", content)
	}

	resp := httpDo(t, app, "GET", "/api/v1/messages/users", nil, sessionCookie(t, admin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chats []ChatSummary
	decodeBody(t, resp, &chats)
	require.Len(t, chats, 1)
	require.Equal(t, customer.ID, chats[0].UserID)
	require.Equal(t, int64(3), chats[0].UnreadCount)
	require.Equal(t, "Third", chats[0].LastMessage)
	require.NotNil(t, chats[0].LastMessageTime)

	// Marking the thread read drops the unread count to zero, and doing it
	// again leaves it at zero.
	for i := 0; i < 2; i++ {
		resp = httpDo(t, app, "POST", "/api/v1/messages/read?userId="+customer.ID.String(), nil, sessionCookie(t, admin))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = httpDo(t, app, "GET", "/api/v1/messages/users", nil, sessionCookie(t, admin))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &chats)
		require.Len(t, chats, 1)
		require.Equal(t, int64(0), chats[0].UnreadCount)
	}
}

func TestUserChatListExcludesSelf(t *testing.T) {
	app := setupApp(t)
	admin := createTestUser(t, "Wanjiku", "admin@example.com", "admin")
	customer := createTestUser(t, "Amina", "amina@example.com", "customer")

	sendChatMessage(t, app, customer, "", "Hi there")
	sendChatMessage(t, app, admin, customer.ID.String(), "Hello, how can we help?")
	sendChatMessage(t, app, admin, customer.ID.String(), "Are you still there?")

	resp := httpDo(t, app, "GET", "/api/v1/messages/users", nil, sessionCookie(t, customer))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chats []ChatSummary
	decodeBody(t, resp, &chats)
	require.Len(t, chats, 1)
	require.Equal(t, admin.ID, chats[0].UserID)
	require.NotEqual(t, customer.ID, chats[0].UserID)
	require.Equal(t, int64(2), chats[0].UnreadCount)
	require.Equal(t, "Are you still there?", chats[0].LastMessage)
}

func TestThreadAscendingAndEnriched(t *testing.T) {
	app := setupApp(t)
	admin := createTestUser(t, "Wanjiku", "admin@example.com", "admin")
	customer := createTestUser(t, "Amina", "amina@example.com", "customer")

	sendChatMessage(t, app, customer, "", "Question about safaris")
	sendChatMessage(t, app, admin, customer.ID.String(), "Which safari are you interested in?")
	sendChatMessage(t, app, customer, "", "The Mara one")

	resp := httpDo(t, app, "GET", "/api/v1/messages?userId="+customer.ID.String(), nil, sessionCookie(t, admin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var thread []MessageResponse
	decodeBody(t, resp, &thread)
	require.Len(t, thread, 3)
	require.Equal(t, "Question about safaris", thread[0].Content)
	require.Equal(t, "The Mara one", thread[2].Content)
	require.Equal(t, "Amina Tester", thread[0].SenderName)
	require.Equal(t, "customer", thread[0].SenderRole)
	require.Equal(t, "admin", thread[1].SenderRole)
	for i := 1; i < len(thread); i++ {
		require.False(t, thread[i].CreatedAt.Before(thread[i-1].CreatedAt))
	}
}

func TestMarkReadOnlyTouchesOwnDirection(t *testing.T) {
	app := setupApp(t)
	admin := createTestUser(t, "Wanjiku", "admin@example.com", "admin")
	customer := createTestUser(t, "Amina", "amina@example.com", "customer")

	sendChatMessage(t, app, customer, "", "Unread from customer")
	sendChatMessage(t, app, admin, customer.ID.String(), "Unread from admin")

	// Customer marks the admin's messages read; their own message to the
	// admin must stay unread.
	resp := httpDo(t, app, "POST", "/api/v1/messages/read", nil, sessionCookie(t, customer))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var unreadToAdmin int64
	require.NoError(t, database.DB.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read = ?", customer.ID, admin.ID, false).
		Count(&unreadToAdmin).Error)
	require.Equal(t, int64(1), unreadToAdmin)

	var unreadToCustomer int64
	require.NoError(t, database.DB.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read = ?", admin.ID, customer.ID, false).
		Count(&unreadToCustomer).Error)
	require.Equal(t, int64(0), unreadToCustomer)
}
