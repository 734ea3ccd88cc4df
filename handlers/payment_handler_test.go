package handlers

import (
	"net/http"
	"testing"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/stretchr/testify/require"
)

func createTestBooking(t *testing.T, user models.User, reference string) models.Booking {
	t.Helper()
	attraction := createTestAttraction(t, "Attraction for "+reference)
	booking := models.Booking{
		Reference:     reference,
		UserID:        user.ID,
		BookingType:   models.BookingTypeAttraction,
		ItemID:        attraction.ID,
		TotalPriceUSD: 200,
		DepositAmount: 50,
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	require.NoError(t, database.DB.Create(&booking).Error)
	return booking
}

func TestRecordDepositPayment(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t, "Amina", "amina@example.com", "customer")
	booking := createTestBooking(t, user, "KE-DEP00001")

	body := map[string]interface{}{
		"booking_id":     booking.ID.String(),
		"amount":         50,
		"payment_type":   "deposit",
		"payment_method": "mpesa",
	}
	resp := httpDo(t, app, "POST", "/api/v1/payments", body, sessionCookie(t, user))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Success   bool   `json:"success"`
		PaymentID string `json:"paymentId"`
	}
	decodeBody(t, resp, &result)
	require.True(t, result.Success)

	var payment models.Payment
	require.NoError(t, database.DB.First(&payment, "id = ?", result.PaymentID).Error)
	require.Equal(t, "completed", payment.Status)
	require.Equal(t, models.PaymentTypeDeposit, payment.PaymentType)

	var updated models.Booking
	require.NoError(t, database.DB.First(&updated, "id = ?", booking.ID).Error)
	require.True(t, updated.DepositPaid)
	require.Equal(t, models.PaymentStatusPartiallyPaid, updated.PaymentStatus)
}

func TestRecordFinalPayment(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t, "Amina", "amina@example.com", "customer")
	booking := createTestBooking(t, user, "KE-FIN00001")

	body := map[string]interface{}{
		"booking_id":     booking.ID.String(),
		"amount":         150,
		"payment_type":   "final",
		"payment_method": "card",
	}
	resp := httpDo(t, app, "POST", "/api/v1/payments", body, sessionCookie(t, user))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var updated models.Booking
	require.NoError(t, database.DB.First(&updated, "id = ?", booking.ID).Error)
	require.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
}

func TestRecordPaymentForeignBookingRejected(t *testing.T) {
	app := setupApp(t)
	owner := createTestUser(t, "Amina", "amina@example.com", "customer")
	intruder := createTestUser(t, "Brian", "brian@example.com", "customer")
	booking := createTestBooking(t, owner, "KE-OWN00001")

	body := map[string]interface{}{
		"booking_id":     booking.ID.String(),
		"amount":         50,
		"payment_type":   "deposit",
		"payment_method": "mpesa",
	}
	resp := httpDo(t, app, "POST", "/api/v1/payments", body, sessionCookie(t, intruder))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// No ledger row may exist after the rejected attempt.
	var count int64
	require.NoError(t, database.DB.Model(&models.Payment{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestRecordPaymentInvalidTypeRejected(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t, "Amina", "amina@example.com", "customer")
	booking := createTestBooking(t, user, "KE-TYP00001")

	body := map[string]interface{}{
		"booking_id":     booking.ID.String(),
		"amount":         50,
		"payment_type":   "installment",
		"payment_method": "mpesa",
	}
	resp := httpDo(t, app, "POST", "/api/v1/payments", body, sessionCookie(t, user))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, database.DB.Model(&models.Payment{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestListPaymentsScopedToCaller(t *testing.T) {
	app := setupApp(t)
	owner := createTestUser(t, "Amina", "amina@example.com", "customer")
	other := createTestUser(t, "Brian", "brian@example.com", "customer")
	booking := createTestBooking(t, owner, "KE-LST00001")

	payment := models.Payment{
		BookingID:     booking.ID,
		UserID:        owner.ID,
		Amount:        50,
		PaymentType:   models.PaymentTypeDeposit,
		PaymentMethod: "mpesa",
		Status:        "completed",
	}
	require.NoError(t, database.DB.Create(&payment).Error)

	resp := httpDo(t, app, "GET", "/api/v1/payments?bookingId="+booking.ID.String(), nil, sessionCookie(t, owner))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payments []models.Payment
	decodeBody(t, resp, &payments)
	require.Len(t, payments, 1)

	resp = httpDo(t, app, "GET", "/api/v1/payments?bookingId="+booking.ID.String(), nil, sessionCookie(t, other))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &payments)
	require.Len(t, payments, 0)
}
