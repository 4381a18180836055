package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
)

var _ = Describe("TransformHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTransformService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTransformService{}
		h := handler.NewTransformHandler(svc)
		router.POST("/workspaces/:workspaceID/projects/:projectID/transforms", h.Enqueue)
		router.GET("/workspaces/:workspaceID/transforms", h.ListJobs)
		router.GET("/workspaces/:workspaceID/transforms/:jobID", h.GetJob)
	})

	It("returns 202 with the queued job", func() {
		svc.enqueueFn = func(_ context.Context, params service.TransformParams) (*model.TransformJob, error) {
			Expect(params.WorkspaceID).To(Equal(int64(1)))
			Expect(params.ProjectID).To(Equal(int64(2)))
			Expect(params.CaptureID).To(Equal(int64(40)))
			Expect(params.PresetID).To(Equal(int64(9)))
			return &model.TransformJob{ID: 77, WorkspaceID: 1, ProjectID: 2, CaptureID: 40, PresetID: 9, Status: model.TransformJobStatusQueued}, nil
		}

		body, _ := json.Marshal(map[string]interface{}{
			"capture_id": "40",
			"preset_id":  "9",
		})
		req := httptest.NewRequest(http.MethodPost, "/workspaces/1/projects/2/transforms", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusAccepted))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("77"))
		Expect(resp["status"]).To(Equal("queued"))
	})

	It("returns 422 when the preset has no published config", func() {
		svc.enqueueFn = func(_ context.Context, _ service.TransformParams) (*model.TransformJob, error) {
			return nil, service.ErrPresetUnpublished
		}

		body, _ := json.Marshal(map[string]interface{}{"capture_id": "40", "preset_id": "9"})
		req := httptest.NewRequest(http.MethodPost, "/workspaces/1/projects/2/transforms", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("returns 404 when the capture does not exist", func() {
		svc.enqueueFn = func(_ context.Context, _ service.TransformParams) (*model.TransformJob, error) {
			return nil, service.ErrCaptureNotFound
		}

		body, _ := json.Marshal(map[string]interface{}{"capture_id": "999", "preset_id": "9"})
		req := httptest.NewRequest(http.MethodPost, "/workspaces/1/projects/2/transforms", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("passes the limit through when listing jobs", func() {
		svc.listJobsFn = func(_ context.Context, workspaceID int64, limit int) ([]model.TransformJob, error) {
			Expect(workspaceID).To(Equal(int64(1)))
			Expect(limit).To(Equal(5))
			return []model.TransformJob{{ID: 77, Status: model.TransformJobStatusSucceeded}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/workspaces/1/transforms?limit=5", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string][]map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["jobs"]).To(HaveLen(1))
	})

	It("returns 404 for an unknown job", func() {
		svc.getJobFn = func(_ context.Context, _, _ int64) (*model.TransformJob, error) {
			return nil, service.ErrJobNotFound
		}

		req := httptest.NewRequest(http.MethodGet, "/workspaces/1/transforms/999", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
