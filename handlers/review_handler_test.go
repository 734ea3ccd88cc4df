package handlers

import (
	"net/http"
	"testing"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewRecomputesAggregates(t *testing.T) {
	app := setupApp(t)
	amina := createTestUser(t, "Amina", "amina@example.com", "customer")
	brian := createTestUser(t, "Brian", "brian@example.com", "customer")
	attraction := createTestAttraction(t, "Lake Nakuru")

	body := map[string]interface{}{
		"attraction_id": attraction.ID.String(),
		"rating":        4,
		"comment":       "Flamingos everywhere",
	}
	resp := httpDo(t, app, "POST", "/api/v1/reviews", body, sessionCookie(t, amina))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body["rating"] = 2
	resp = httpDo(t, app, "POST", "/api/v1/reviews", body, sessionCookie(t, brian))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var updated models.Attraction
	require.NoError(t, database.DB.First(&updated, "id = ?", attraction.ID).Error)
	require.Equal(t, int64(2), updated.Reviews)
	require.InDelta(t, 3.0, updated.Rating, 0.0001)
}

func TestResubmitReviewUpdatesInPlace(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t, "Amina", "amina@example.com", "customer")
	attraction := createTestAttraction(t, "Hell's Gate")

	body := map[string]interface{}{
		"attraction_id": attraction.ID.String(),
		"rating":        4,
		"comment":       "Great cycling",
	}
	resp := httpDo(t, app, "POST", "/api/v1/reviews", body, sessionCookie(t, user))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body["rating"] = 2
	body["comment"] = "Too crowded this time"
	resp = httpDo(t, app, "POST", "/api/v1/reviews", body, sessionCookie(t, user))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Still one row per (user, attraction); aggregate reflects the latest value.
	var count int64
	require.NoError(t, database.DB.Model(&models.Review{}).
		Where("user_id = ? AND attraction_id = ?", user.ID, attraction.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count)

	var updated models.Attraction
	require.NoError(t, database.DB.First(&updated, "id = ?", attraction.ID).Error)
	require.Equal(t, int64(1), updated.Reviews)
	require.InDelta(t, 2.0, updated.Rating, 0.0001)

	var review models.Review
	require.NoError(t, database.DB.First(&review, "user_id = ? AND attraction_id = ?", user.ID, attraction.ID).Error)
	require.Equal(t, "Too crowded this time", review.Comment)
}

func TestSubmitReviewMissingRating(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t, "Amina", "amina@example.com", "customer")
	attraction := createTestAttraction(t, "Amboseli")

	body := map[string]interface{}{
		"attraction_id": attraction.ID.String(),
		"comment":       "No rating given",
	}
	resp := httpDo(t, app, "POST", "/api/v1/reviews", body, sessionCookie(t, user))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitReviewUnknownAttraction(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t, "Amina", "amina@example.com", "customer")

	body := map[string]interface{}{
		"attraction_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"rating":        5,
	}
	resp := httpDo(t, app, "POST", "/api/v1/reviews", body, sessionCookie(t, user))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListReviewsEnrichedAndOrdered(t *testing.T) {
	app := setupApp(t)
	amina := createTestUser(t, "Amina", "amina@example.com", "customer")
	brian := createTestUser(t, "Brian", "brian@example.com", "customer")
	attraction := createTestAttraction(t, "Tsavo East")

	for _, u := range []models.User{amina, brian} {
		body := map[string]interface{}{
			"attraction_id": attraction.ID.String(),
			"rating":        5,
			"comment":       "By " + u.FirstName,
		}
		resp := httpDo(t, app, "POST", "/api/v1/reviews", body, sessionCookie(t, u))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := httpDo(t, app, "GET", "/api/v1/reviews?attractionId="+attraction.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []ReviewResponse
	decodeBody(t, resp, &reviews)
	require.Len(t, reviews, 2)
	for _, r := range reviews {
		require.NotEmpty(t, r.ReviewerName)
	}
}
