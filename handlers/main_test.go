package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	config "github.com/cybruGhost/keattractions-sub001/configs"
	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupTestDB wires a per-test in-memory database so tests cannot interfere
// with each other.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Attraction{},
		&models.Safari{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.Message{},
	))
	database.DB = db
	return db
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	setupTestDB(t)

	app := fiber.New()
	api := app.Group("/api/v1")

	api.Get("/attractions", ListAttractions)
	api.Get("/reviews", ListReviews)
	api.Post("/reviews", middleware.Protected(), SubmitReview)

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("", ListBookings)
	bookings.Post("", CreateBooking)
	bookings.Put("", UpdateBooking)
	bookings.Delete("", middleware.AdminRequired(), DeleteBooking)

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("", RecordPayment)
	payments.Get("", ListPayments)

	messages := api.Group("/messages", middleware.Protected())
	messages.Get("", ListThread)
	messages.Post("", SendMessage)
	messages.Post("/read", MarkThreadRead)
	messages.Get("/users", ListChats)

	auth := api.Group("/auth")
	auth.Post("/register", RegisterUser)
	auth.Post("/login", LoginUser)
	auth.Get("/me", middleware.Protected(), GetCurrentUser)

	return app
}

func createTestUser(t *testing.T, firstName, email, role string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     email,
		Phone:     "+254700000000",
		Password:  string(hashed),
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestAttraction(t *testing.T, name string) models.Attraction {
	t.Helper()
	attraction := models.Attraction{Name: name, Location: "Nairobi", PriceUSD: 50, PriceKES: 6500}
	require.NoError(t, database.DB.Create(&attraction).Error)
	return attraction
}

func sessionCookie(t *testing.T, user models.User) *http.Cookie {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: signed}
}

func httpDo(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req, _ = http.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
