package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	httpH "github.com/mindbridge/assessment-backend/internal/http/handlers"
	"github.com/mindbridge/assessment-backend/internal/http/response"
	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/services"
	"github.com/mindbridge/assessment-backend/internal/types"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.AssessmentDataset{},
		&types.AssessmentModel{},
		&types.EmotionRecognition{},
		&types.EmotionFusionEngine{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	datasetRepo := repos.NewAssessmentDatasetRepo(db, log)
	modelRepo := repos.NewAssessmentModelRepo(db, log)
	engineRepo := repos.NewEmotionFusionEngineRepo(db, log)

	router := NewRouter(RouterConfig{
		Log:            log,
		DatasetHandler: httpH.NewAssessmentDatasetHandler(services.NewAssessmentDatasetService(db, log, datasetRepo, modelRepo)),
		ModelHandler:   httpH.NewAssessmentModelHandler(services.NewAssessmentModelService(db, log, modelRepo)),
		EngineHandler:  httpH.NewFusionEngineHandler(services.NewFusionEngineService(db, log, engineRepo)),
		HealthHandler:  httpH.NewHealthHandler(),
	})
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope response.ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("error envelope unreadable: %v (body %s)", err, w.Body.String())
	}
	return envelope.Error.Code
}

func TestRouterErrorMapping(t *testing.T) {
	t.Run("healthcheck", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doJSON(t, router, http.MethodGet, "/healthcheck", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("unknown engine maps to 404", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doJSON(t, router, http.MethodPost, "/api/fusion-engines/"+uuid.New().String()+"/analyze", `{"signals":{"voice":0.9}}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404 (body %s)", w.Code, w.Body.String())
		}
		if code := errorCode(t, w); code != "not_found" {
			t.Errorf("code = %q, want not_found", code)
		}
	})

	t.Run("inactive engine maps to 400", func(t *testing.T) {
		router, db := newTestRouter(t)
		engine := &types.EmotionFusionEngine{ID: uuid.New(), EngineName: "e", FusionStrategy: types.FusionAverage, IsActive: false}
		if err := db.Create(engine).Error; err != nil {
			t.Fatalf("seed engine: %v", err)
		}
		w := doJSON(t, router, http.MethodPost, "/api/fusion-engines/"+engine.ID.String()+"/analyze", `{"signals":{"voice":0.9}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
		}
		if code := errorCode(t, w); code != "engine_inactive" {
			t.Errorf("code = %q, want engine_inactive", code)
		}
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doJSON(t, router, http.MethodPost, "/api/assessment-models/not-a-uuid/train", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("referenced dataset delete maps to 409", func(t *testing.T) {
		router, db := newTestRouter(t)
		dataset := &types.AssessmentDataset{ID: uuid.New(), DatasetName: "d", SampleCount: 10}
		if err := db.Create(dataset).Error; err != nil {
			t.Fatalf("seed dataset: %v", err)
		}
		model := &types.AssessmentModel{ID: uuid.New(), DatasetID: dataset.ID, ModelName: "m", Backbone: "cnn", TrainingStatus: types.TrainingPending}
		if err := db.Create(model).Error; err != nil {
			t.Fatalf("seed model: %v", err)
		}
		w := doJSON(t, router, http.MethodDelete, "/api/assessment-datasets/"+dataset.ID.String(), "")
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409 (body %s)", w.Code, w.Body.String())
		}
		if code := errorCode(t, w); code != "dataset_in_use" {
			t.Errorf("code = %q, want dataset_in_use", code)
		}
	})

	t.Run("train completes through the full stack", func(t *testing.T) {
		router, db := newTestRouter(t)
		dataset := &types.AssessmentDataset{ID: uuid.New(), DatasetName: "d", SampleCount: 5000}
		if err := db.Create(dataset).Error; err != nil {
			t.Fatalf("seed dataset: %v", err)
		}
		model := &types.AssessmentModel{ID: uuid.New(), DatasetID: dataset.ID, ModelName: "m", Backbone: "fusion-transformer", TrainingStatus: types.TrainingPending}
		if err := db.Create(model).Error; err != nil {
			t.Fatalf("seed model: %v", err)
		}
		w := doJSON(t, router, http.MethodPost, "/api/assessment-models/"+model.ID.String()+"/train", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
		}
		var payload struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("payload unreadable: %v", err)
		}
		if payload.Status != "completed" {
			t.Errorf("status field = %q, want completed", payload.Status)
		}
	})
}
