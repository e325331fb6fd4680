package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitflow/fitness-app/internal/ai"
	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository/memory"
	"fitflow/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "api-test-secret"

// fakeFileStorage satisfies storage.FileStorage without talking to S3.
type fakeFileStorage struct{}

func (fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://bucket.test/" + objectKey + "?sig=abc", nil
}

func (fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://bucket.test/" + objectKey, nil
}

func (fakeFileStorage) DeleteObject(context.Context, string) error { return nil }

// newTestRouter wires the full route table against the memory store and a
// stubbed completion endpoint.
func newTestRouter(t *testing.T, completionContent string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": completionContent}},
			},
		})
	}))
	t.Cleanup(ts.Close)

	store := memory.NewStore()
	aiClient := &ai.Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}

	router := gin.New()
	SetupRoutes(router,
		service.NewAuthService(store, testJWTSecret, time.Hour),
		service.NewProfileService(store, fakeFileStorage{}),
		service.NewWorkoutService(store),
		service.NewDietService(store, aiClient),
		service.NewChatService(store, aiClient),
		service.NewTrackingService(store),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "tester",
		"email":    email,
		"password": "longenoughpw",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "longenoughpw",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("login returned empty token")
	}
	return resp.Token
}

func TestCatalogIsPublicButUserRoutesAreNot(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, "")

	rec := doJSON(t, router, http.MethodGet, "/api/workouts", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("public catalog returned %d", rec.Code)
	}
	var workouts []domain.Workout
	if err := json.Unmarshal(rec.Body.Bytes(), &workouts); err != nil {
		t.Fatalf("decode workouts: %v", err)
	}
	if len(workouts) != 6 {
		t.Fatalf("expected 6 catalog workouts, got %d", len(workouts))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/workouts/"+workouts[0].ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get workout returned %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/workouts/not-a-real-id", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown workout returned %d", rec.Code)
	}

	for _, path := range []string{"/api/workouts/history", "/api/goals", "/api/chat/history", "/api/auth/user"} {
		rec = doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token returned %d", path, rec.Code)
		}
	}
}

func TestWorkoutLogAndStatsRoundtrip(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, "")
	token := registerAndLogin(t, router, "log@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/workouts/log", token, gin.H{
		"workoutId":      "w1",
		"duration":       30,
		"caloriesBurned": 300,
		"mood":           "energetic",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("log workout returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/workouts/history", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history returned %d", rec.Code)
	}
	var history []domain.UserWorkout
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 || history[0].CaloriesBurned != 300 {
		t.Fatalf("unexpected history: %+v", history)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/workouts/stats", token, nil)
	var stats domain.WorkoutStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalWorkouts != 1 || stats.TotalCalories != 300 || stats.AvgCaloriesPerWorkout != 300 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/workouts/log", token, gin.H{
		"workoutId": "w1",
		"mood":      "exhausted", // not a known mood
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid mood returned %d", rec.Code)
	}
}

func TestGoalLifecycleOverHTTP(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, "")
	owner := registerAndLogin(t, router, "owner@example.com")
	intruder := registerAndLogin(t, router, "intruder@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/goals", owner, gin.H{
		"type":         "workout_count",
		"title":        "Ten workouts",
		"targetValue":  10,
		"currentValue": 9, // must be ignored
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create goal returned %d: %s", rec.Code, rec.Body.String())
	}
	var goal domain.Goal
	if err := json.Unmarshal(rec.Body.Bytes(), &goal); err != nil {
		t.Fatalf("decode goal: %v", err)
	}
	if goal.CurrentValue != 0 || goal.IsCompleted {
		t.Fatalf("goal starting state not forced: %+v", goal)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/goals/"+goal.ID, intruder, gin.H{"currentValue": 3})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign goal update returned %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/goals/missing", owner, gin.H{"currentValue": 3})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing goal update returned %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/goals/"+goal.ID, owner, gin.H{"currentValue": 10, "isCompleted": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("goal update returned %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &goal); err != nil {
		t.Fatalf("decode goal: %v", err)
	}
	if goal.CurrentValue != 10 || !goal.IsCompleted {
		t.Fatalf("goal update not applied: %+v", goal)
	}
}

func TestChatRoundtrip(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, "Keep it up! 💪")
	token := registerAndLogin(t, router, "chat@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/chat", token, gin.H{"message": "How often should I train?"})
	if rec.Code != http.StatusOK {
		t.Fatalf("chat returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp SendMessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	if resp.Response != "Keep it up! 💪" || resp.MessageID == "" {
		t.Fatalf("unexpected chat response: %+v", resp)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/chat/history", token, nil)
	var history []domain.ChatMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 || history[0].Message != "How often should I train?" {
		t.Fatalf("unexpected history: %+v", history)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/chat/history?limit=abc", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit returned %d", rec.Code)
	}
}

func TestDietGenerationPersistsPlan(t *testing.T) {
	t.Parallel()
	planJSON := `{"dailyCalories":2100,"proteinGoal":140,"carbGoal":200,"fatGoal":65,"meals":[{"day":"Monday","breakfast":"Eggs","lunch":"Bowl","dinner":"Fish","snacks":["Nuts"]}]}`
	router := newTestRouter(t, planJSON)
	token := registerAndLogin(t, router, "diet@example.com")

	// No plans yet: active returns a null body.
	rec := doJSON(t, router, http.MethodGet, "/api/diet/active", token, nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "null" {
		t.Fatalf("expected null active plan, got %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/diet/generate", token, gin.H{
		"age":         28,
		"weight":      74.5,
		"fitnessGoal": "weight_loss",
		"allergies":   "gluten",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate returned %d: %s", rec.Code, rec.Body.String())
	}
	var plan domain.DietPlan
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.DailyCalories != 2100 || !plan.IsActive || plan.WeekNumber != 1 {
		t.Fatalf("unexpected plan: %+v", plan)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/diet/active", token, nil)
	var active domain.DietPlan
	if err := json.Unmarshal(rec.Body.Bytes(), &active); err != nil {
		t.Fatalf("decode active plan: %v", err)
	}
	if active.ID != plan.ID {
		t.Fatalf("active plan mismatch: %s != %s", active.ID, plan.ID)
	}
}

func TestDietGenerationRejectsUnusableCompletion(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, "I cannot produce JSON today")
	token := registerAndLogin(t, router, "diet2@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/diet/generate", token, gin.H{
		"age":         28,
		"weight":      74.5,
		"fitnessGoal": "weight_loss",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for unusable completion, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProfileUpdateAndAvatarURL(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, "")
	token := registerAndLogin(t, router, "profile@example.com")

	rec := doJSON(t, router, http.MethodPatch, "/api/auth/user", token, gin.H{
		"age":         35,
		"fitnessGoal": "maintenance",
		"weight":      "70",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update returned %d: %s", rec.Code, rec.Body.String())
	}
	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Age == nil || *user.Age != 35 || user.FitnessGoal != domain.GoalMaintenance {
		t.Fatalf("profile update not applied: %+v", user)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/auth/user", token, gin.H{"fitnessGoal": "get_swole"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid goal enum returned %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/user/avatar-url", token, gin.H{"contentType": "image/png"})
	if rec.Code != http.StatusOK {
		t.Fatalf("avatar url returned %d: %s", rec.Code, rec.Body.String())
	}
	var avatar service.AvatarUploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &avatar); err != nil {
		t.Fatalf("decode avatar response: %v", err)
	}
	if avatar.UploadURL == "" || avatar.ObjectKey == "" {
		t.Fatalf("unexpected avatar response: %+v", avatar)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/user/avatar-url", token, gin.H{"contentType": "application/zip"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-image content type returned %d", rec.Code)
	}

	// No photo stored yet: the download endpoint has nothing to presign.
	rec = doJSON(t, router, http.MethodGet, "/api/auth/user/avatar-url", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("download url without photo returned %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/auth/user", token, gin.H{"profileImageUrl": avatar.ObjectKey})
	if rec.Code != http.StatusOK {
		t.Fatalf("photo key update returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/auth/user/avatar-url", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("download url returned %d: %s", rec.Code, rec.Body.String())
	}
	var download struct {
		DownloadURL string `json:"downloadUrl"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &download); err != nil {
		t.Fatalf("decode download response: %v", err)
	}
	if download.DownloadURL == "" {
		t.Fatalf("expected a presigned download URL")
	}
}

func TestProgressEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, "")
	token := registerAndLogin(t, router, "progress@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/progress", token, gin.H{
		"weight":      80.2,
		"waterIntake": 2.5,
		"energyLevel": 8,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("log progress returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/progress?days=7", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("progress returned %d", rec.Code)
	}
	var entries []domain.UserProgress
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if len(entries) != 1 || entries[0].Weight != 80.2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/progress?days=-1", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative days returned %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/progress", token, gin.H{"energyLevel": 12})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range energy level returned %d", rec.Code)
	}
}
